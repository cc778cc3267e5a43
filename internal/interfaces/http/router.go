package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banca-api/internal/application/auth"
	"github.com/jhoicas/Banca-api/internal/application/usecase"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	RegistroUC *usecase.RegistroUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	CuentaUC   *usecase.CuentaUseCase
	EmbargoUC  *usecase.EmbargoUseCase
	JWTSecret  string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/token", authHandler.Token)

	// Registro de clientes (público: el cliente se autorregistra)
	registration := api.Group("/registration")
	registroHandler := NewRegistroHandler(deps.RegistroUC)
	registration.Post("/", registroHandler.Registrar)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido)
	users := protected.Group("/users")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	users.Get("/me", usuarioHandler.Me)
	// Gestión de personal: solo administradores.
	users.Post("/register-internal", RequireRole(entity.RolAdministrador), usuarioHandler.RegistrarInterno)
	users.Patch("/update/:codusu", RequireRole(entity.RolAdministrador), usuarioHandler.Actualizar)
	users.Get("/admins", RequireRole(entity.RolAdministrador), usuarioHandler.ListarAdmins)
	users.Get("/employees", RequireRole(entity.RolAdministrador), usuarioHandler.ListarEmpleados)

	// Accounts (protegido)
	account := protected.Group("/account")
	cuentaHandler := NewCuentaHandler(deps.CuentaUC)
	account.Post("/", cuentaHandler.Abrir)
	account.Get("/listarCuentas/:codusu", cuentaHandler.Listar)
	// El cambio de estado (bloqueo, anulación) queda reservado a administradores.
	account.Patch("/estado", RequireRole(entity.RolAdministrador), cuentaHandler.CambiarEstado)

	// Embargos: los registra personal interno; consulta y constancia con token.
	embargoHandler := NewEmbargoHandler(deps.EmbargoUC)
	account.Post("/registrarEmbargo", RequireRole(entity.RolAdministrador, entity.RolEmpleado), embargoHandler.Registrar)
	account.Get("/listarEmbargos/:nrocta", embargoHandler.Listar)
	account.Get("/embargos/:nrocta/constancia", embargoHandler.Constancia)
}
