package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/application/usecase"
	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
)

// EmbargoHandler registro, consulta y constancia de embargos.
type EmbargoHandler struct {
	uc *usecase.EmbargoUseCase
}

// NewEmbargoHandler construye el handler de embargos.
func NewEmbargoHandler(uc *usecase.EmbargoUseCase) *EmbargoHandler {
	return &EmbargoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar un embargo sobre una cuenta
// @Tags         embargoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmbargoCreate  true  "datos del embargo"
// @Success      201  {object}  dto.EmbargoRegistrado
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/account/registrarEmbargo [post]
func (h *EmbargoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.EmbargoCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NroCta == "" || in.CodUsu == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "NroCta y CodUsu son requeridos"})
	}
	if in.TipoEmbargo != entity.EmbargoTotal && in.TipoEmbargo != entity.EmbargoParcial {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "TipoEmbargo debe ser T o P"})
	}

	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "MontoEmbargado debe ser mayor que cero"})
		}
		var spErr *domain.ErrorSP
		if errors.As(err, &spErr) {
			// "La cuenta no existe" responde 404; cualquier otro rechazo del SP
			// (cuenta inactiva, monto mayor al saldo) responde 400.
			if domain.MencionaNoExiste(spErr.Mensaje) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: spErr.Mensaje})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SP_ERROR", Message: spErr.Mensaje})
		}
		log.Error().Err(err).Str("nrocta", in.NroCta).Msg("registrar embargo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Embargos asociados a una cuenta
// @Tags         embargoes
// @Produce      json
// @Param        nrocta  path  string  true  "número de cuenta"
// @Success      200  {array}  dto.EmbargoDetalle
// @Router       /api/v1/account/listarEmbargos/{nrocta} [get]
func (h *EmbargoHandler) Listar(c *fiber.Ctx) error {
	nroCta := c.Params("nrocta")
	lista, err := h.uc.ListarPorCuenta(c.Context(), nroCta)
	if err != nil {
		log.Error().Err(err).Str("nrocta", nroCta).Msg("listar embargos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	return c.JSON(aDetalles(lista))
}

// aDetalles mapea los embargos de dominio al DTO de salida.
func aDetalles(embargos []entity.Embargo) []dto.EmbargoDetalle {
	detalles := make([]dto.EmbargoDetalle, 0, len(embargos))
	for _, e := range embargos {
		detalles = append(detalles, dto.EmbargoDetalle{
			IdEmbargo:      e.IdEmbargo,
			NroCta:         e.NroCta,
			TipoEmbargo:    e.TipoEmbargo,
			MontoEmbargado: e.MontoEmbargado,
			Observaciones:  e.Observaciones,
			FechaRegistro:  e.FechaRegistro,
			Estado:         e.Estado,
			UsrRegistro:    e.UsrRegistro,
		})
	}
	return detalles
}

// Constancia godoc
// @Summary      Constancia PDF de los embargos de una cuenta
// @Tags         embargoes
// @Produce      application/pdf
// @Param        nrocta  path  string  true  "número de cuenta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/account/embargos/{nrocta}/constancia [get]
func (h *EmbargoHandler) Constancia(c *fiber.Ctx) error {
	nroCta := c.Params("nrocta")
	pdfBytes, err := h.uc.Constancia(c.Context(), nroCta)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no tiene embargos registrados"})
		}
		log.Error().Err(err).Str("nrocta", nroCta).Msg("constancia de embargos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="constancia_embargos_%s.pdf"`, nroCta))
	return c.Send(pdfBytes)
}
