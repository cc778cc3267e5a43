package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/application/usecase"
	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
)

// CuentaHandler apertura, listado y cambio de estado de cuentas.
type CuentaHandler struct {
	uc *usecase.CuentaUseCase
}

// NewCuentaHandler construye el handler de cuentas.
func NewCuentaHandler(uc *usecase.CuentaUseCase) *CuentaHandler {
	return &CuentaHandler{uc: uc}
}

// Abrir godoc
// @Summary      Abrir una cuenta nueva
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CuentaCreate  true  "datos de la cuenta"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/account/ [post]
func (h *CuentaHandler) Abrir(c *fiber.Ctx) error {
	var in dto.CuentaCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CodUsu == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "CodUsu es requerido"})
	}
	switch in.TipoCta {
	case entity.TipoCuentaAhorro, entity.TipoCuentaCorriente, entity.TipoCuentaPlazoFijo:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "TipoCta debe ser AC, CC o PF"})
	}
	if in.Moneda != entity.MonedaSoles && in.Moneda != entity.MonedaDolares {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Moneda debe ser SO o DO"})
	}

	out, err := h.uc.Abrir(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "SaldoInicial debe ser mayor que cero"})
		}
		var spErr *domain.ErrorSP
		if errors.As(err, &spErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SP_ERROR", Message: spErr.Mensaje})
		}
		log.Error().Err(err).Str("codusu", in.CodUsu).Msg("apertura de cuenta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Cuentas asociadas a un usuario
// @Tags         accounts
// @Produce      json
// @Param        codusu  path  string  true  "código de usuario"
// @Success      200  {array}  map[string]interface{}
// @Router       /api/v1/account/listarCuentas/{codusu} [get]
func (h *CuentaHandler) Listar(c *fiber.Ctx) error {
	codUsu := c.Params("codusu")
	filas, err := h.uc.ListarPorUsuario(c.Context(), codUsu)
	if err != nil {
		log.Error().Err(err).Str("codusu", codUsu).Msg("listar cuentas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(filas)
}

// CambiarEstado godoc
// @Summary      Cambiar el estado de una cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CuentaEstadoUpdate  true  "cuenta y estado nuevo"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/account/estado [patch]
func (h *CuentaHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CuentaEstadoUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NroCta == "" || in.NuevoEstado == "" || in.CodUsuModifica == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nro_cta, nuevo_estado y cod_usu_modifica son requeridos"})
	}
	switch in.NuevoEstado {
	case entity.EstadoActivo, entity.EstadoInactivo, entity.EstadoBloqueado, entity.EstadoAnulado:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nuevo_estado debe ser A, I, B o N"})
	}

	out, err := h.uc.CambiarEstado(c.Context(), in)
	if err != nil {
		var spErr *domain.ErrorSP
		if errors.As(err, &spErr) {
			if domain.MencionaNoExiste(spErr.Mensaje) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: spErr.Mensaje})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SP_ERROR", Message: spErr.Mensaje})
		}
		log.Error().Err(err).Str("nrocta", in.NroCta).Msg("cambiar estado de cuenta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(out)
}
