// Package auth implementa el único flujo con estado propio de la API: el
// login con bloqueo por intentos fallidos. Todo lo demás delega en los
// procedimientos almacenados a través del gateway.
//
// Máquina de estados de bloqueo por usuario:
//
//	Limpio ──fallo──▶ Acumulando(n<máx) ──fallo n=máx──▶ Bloqueado(desde=t)
//	Bloqueado ──ventana vencida en el siguiente intento──▶ Limpio
//	cualquier estado ──password correcto──▶ Limpio
//
// No hay desbloqueo activo ni timer de fondo: el desbloqueo es un efecto del
// siguiente intento de autenticación una vez vencida la ventana.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
	"github.com/jhoicas/Banca-api/pkg/jwt"
)

// procValidarLogin devuelve el perfil completo del usuario (join con t_cliente).
const procValidarLogin = "sp_validateuserlogin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// BloqueoConfig política de bloqueo por intentos fallidos.
type BloqueoConfig struct {
	MaxIntentos int
	Ventana     time.Duration
}

// AuthUseCase orquesta el login: bloqueo, verificación contra el SP y emisión de JWT.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	gateway  repository.SPGateway
	jwtCfg   JWTConfig
	bloqueo  BloqueoConfig
	ahora    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, gateway repository.SPGateway, jwtCfg JWTConfig, bloqueo BloqueoConfig) *AuthUseCase {
	return &AuthUseCase{
		usuarios: usuarios,
		gateway:  gateway,
		jwtCfg:   jwtCfg,
		bloqueo:  bloqueo,
		ahora:    time.Now,
	}
}

// Login autentica usuario/password y devuelve el token con el perfil.
//
// Resultado cerrado vía errores de dominio:
//   - domain.ErrUsuarioNoEncontrado  → login desconocido (sin mutar estado)
//   - domain.ErrUsuarioInactivo      → empleado con estado distinto de activo
//   - *domain.ErrorBloqueo           → ventana de bloqueo vigente
//   - domain.ErrCredencialesInvalidas→ password incorrecto (incrementa contador)
//   - cualquier otro error           → fallo upstream, el handler responde 500 genérico
func (uc *AuthUseCase) Login(ctx context.Context, usuario, password string) (*dto.TokenResponse, error) {
	u, err := uc.usuarios.FindByUsuario(ctx, usuario)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}

	// Los empleados inactivos no entran; administradores y clientes pasan el
	// control al SP (comportamiento heredado del sistema original).
	if u.Rol == entity.RolEmpleado && u.Estado != entity.EstadoActivo {
		return nil, domain.ErrUsuarioInactivo
	}

	if u.IntentosFallidos >= uc.bloqueo.MaxIntentos && u.UltimoIntento != nil {
		transcurrido := uc.ahora().Sub(*u.UltimoIntento)
		if transcurrido < uc.bloqueo.Ventana {
			return nil, &domain.ErrorBloqueo{Restante: uc.bloqueo.Ventana - transcurrido}
		}
		// Ventana vencida: contador y marca se limpian juntos antes de evaluar el password.
		if err := uc.usuarios.ReiniciarIntentos(ctx, u.CodUsu, false); err != nil {
			return nil, fmt.Errorf("reiniciar intentos: %w", err)
		}
	}

	filas, err := uc.gateway.Consultar(ctx, procValidarLogin, usuario)
	if err != nil {
		var spErr *domain.ErrorSP
		if errors.As(err, &spErr) {
			if domain.MencionaNoExiste(spErr.Mensaje) {
				return nil, domain.ErrUsuarioNoEncontrado
			}
			log.Warn().Str("usuario", usuario).Str("mensaje", spErr.Mensaje).Msg("sentinela de negocio en validación de login")
			return nil, spErr
		}
		return nil, fmt.Errorf("validar login: %w", err)
	}
	if len(filas) == 0 {
		return nil, domain.ErrUsuarioNoEncontrado
	}

	hash := repository.Cadena(filas[0], "hashedpassword")
	if hash == "" {
		hash = u.HashedPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		if _, err := uc.usuarios.RegistrarIntentoFallido(ctx, u.CodUsu); err != nil {
			return nil, fmt.Errorf("registrar intento fallido: %w", err)
		}
		return nil, domain.ErrCredencialesInvalidas
	}

	if err := uc.usuarios.ReiniciarIntentos(ctx, u.CodUsu, true); err != nil {
		return nil, fmt.Errorf("reiniciar intentos: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.CodUsu, u.Usuario, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Result:      aPerfiles(filas),
	}, nil
}

// aPerfiles mapea las filas del SP al DTO de perfil (sin exponer el hash).
func aPerfiles(filas []map[string]any) []dto.PerfilLogin {
	perfiles := make([]dto.PerfilLogin, 0, len(filas))
	for _, f := range filas {
		perfiles = append(perfiles, dto.PerfilLogin{
			CodUsu:         repository.Cadena(f, "codusu"),
			Usuario:        repository.Cadena(f, "usuario"),
			Rol:            repository.Cadena(f, "rol"),
			Estado:         repository.Cadena(f, "estado"),
			Email:          repository.Cadena(f, "email"),
			CodCliente:     repository.Cadena(f, "codcliente"),
			NombreCompleto: repository.Cadena(f, "nombre_completo"),
		})
	}
	return perfiles
}
