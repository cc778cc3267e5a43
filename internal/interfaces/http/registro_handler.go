package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/application/usecase"
	"github.com/jhoicas/Banca-api/internal/domain"
)

// RegistroHandler registro público de clientes con su usuario de acceso.
type RegistroHandler struct {
	uc *usecase.RegistroUseCase
}

// NewRegistroHandler construye el handler de registro.
func NewRegistroHandler(uc *usecase.RegistroUseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar cliente y usuario de acceso
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FullClientRegistration  true  "user_data + client_data"
// @Success      201  {object}  dto.RegistrationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/registration/ [post]
func (h *RegistroHandler) Registrar(c *fiber.Ctx) error {
	var in dto.FullClientRegistration
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserData.Usuario == "" || in.UserData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Usuario y Password son requeridos"})
	}
	if len(in.UserData.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Password debe tener al menos 8 caracteres"})
	}
	if in.ClientData.Nombres == "" || in.ClientData.Apellidos == "" || len(in.ClientData.DNI) != 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Nombres, Apellidos y DNI (8 dígitos) son requeridos"})
	}

	out, err := h.uc.RegistrarClienteCompleto(c.Context(), in)
	if err != nil {
		// Los fallos de negocio del SP (DNI o usuario duplicado) responden 409.
		var spErr *domain.ErrorSP
		if errors.As(err, &spErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SP_ERROR", Message: spErr.Mensaje})
		}
		log.Error().Err(err).Msg("registro de cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
