package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Banca-api/internal/application/auth"
	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "nombre de login"
// @Param        password  formData  string  true  "contraseña"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}

	out, err := h.uc.Login(c.Context(), in.Username, in.Password)
	if err != nil {
		// El motivo exacto de un 401 no se distingue hacia afuera: un login
		// desconocido y un password incorrecto responden lo mismo.
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) || errors.Is(err, domain.ErrCredencialesInvalidas) {
			c.Set("WWW-Authenticate", "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Nombre de usuario o contraseña incorrectos"})
		}
		var bloqueo *domain.ErrorBloqueo
		if errors.As(err, &bloqueo) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "LOCKED",
				Message: fmt.Sprintf("Usuario bloqueado por intentos fallidos; intente en %d minuto(s)", bloqueo.MinutosRestantes()),
			})
		}
		if errors.Is(err, domain.ErrUsuarioInactivo) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: "Usuario inactivo"})
		}
		log.Error().Err(err).Str("usuario", in.Username).Msg("fallo inesperado en login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(out)
}
