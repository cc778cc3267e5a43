package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/application/usecase"
	"github.com/jhoicas/Banca-api/internal/domain"
)

// UsuarioHandler maneja alta interna, perfil, actualización y listados de usuarios.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler de usuarios.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// RegistrarInterno godoc
// @Summary      Registrar personal interno (rol A o E)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroInternoRequest  true  "Usuario, Password, Rol"
// @Success      201  {object}  dto.RegistroInternoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/users/register-internal [post]
func (h *UsuarioHandler) RegistrarInterno(c *fiber.Ctx) error {
	var in dto.RegistroInternoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Usuario == "" || in.Password == "" || in.Rol == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Usuario, Password y Rol son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Password debe tener al menos 8 caracteres"})
	}

	out, err := h.uc.RegistrarInterno(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Rol debe ser A o E"})
		}
		var spErr *domain.ErrorSP
		if errors.As(err, &spErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SP_ERROR", Message: spErr.Mensaje})
		}
		log.Error().Err(err).Msg("registro interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UsuarioPublic
// @Router       /api/v1/users/me [get]
func (h *UsuarioHandler) Me(c *fiber.Ctx) error {
	usuario := GetUsuario(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Me(c.Context(), usuario)
	if err != nil {
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no se pudieron validar las credenciales"})
		}
		log.Error().Err(err).Msg("perfil me")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualización parcial de un usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        codusu  path  string  true  "código de usuario"
// @Param        body    body  dto.UsuarioUpdate  true  "campos a cambiar"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/users/update/{codusu} [patch]
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	codUsu := c.Params("codusu")
	var in dto.UsuarioUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Usuario == nil && in.Password == nil && in.Rol == nil && in.Estado == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no hay campos para actualizar"})
	}

	if err := h.uc.Actualizar(c.Context(), codUsu, in); err != nil {
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el usuario no existe"})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de usuario ya está registrado"})
		}
		log.Error().Err(err).Str("codusu", codUsu).Msg("actualizar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(fiber.Map{"message": "Usuario actualizado correctamente"})
}

// ListarAdmins GET /api/v1/users/admins
func (h *UsuarioHandler) ListarAdmins(c *fiber.Ctx) error {
	lista, err := h.uc.ListarAdministradores(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("listar administradores")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(lista)
}

// ListarEmpleados GET /api/v1/users/employees
func (h *UsuarioHandler) ListarEmpleados(c *fiber.Ctx) error {
	lista, err := h.uc.ListarEmpleados(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("listar empleados")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(lista)
}
