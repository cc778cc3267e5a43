package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmbargoCreate cuerpo para registrar un embargo (T = total, P = parcial).
type EmbargoCreate struct {
	NroCta         string          `json:"NroCta" validate:"required,max=20"`
	TipoEmbargo    string          `json:"TipoEmbargo" validate:"required,oneof=T P"`
	MontoEmbargado decimal.Decimal `json:"MontoEmbargado" validate:"required"`
	Observaciones  string          `json:"Observaciones,omitempty"`
	CodUsu         string          `json:"CodUsu" validate:"required,max=10"`
}

// EmbargoRegistrado valores OUT de sp_registrarembargo.
type EmbargoRegistrado struct {
	IdEmbargo int64  `json:"IdEmbargo"`
	MensajeSP string `json:"MensajeSP"`
}

// EmbargoDetalle fila de sp_listarembargosporcuenta.
type EmbargoDetalle struct {
	IdEmbargo      int64           `json:"IdEmbargo"`
	NroCta         string          `json:"NroCta"`
	TipoEmbargo    string          `json:"TipoEmbargo"`
	MontoEmbargado decimal.Decimal `json:"MontoEmbargado"`
	Observaciones  string          `json:"Observaciones,omitempty"`
	FechaRegistro  time.Time       `json:"FechaRegistro"`
	Estado         string          `json:"Estado"`
	UsrRegistro    string          `json:"UsrRegistro"`
}
