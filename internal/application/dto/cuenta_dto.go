package dto

import "github.com/shopspring/decimal"

// CuentaCreate datos para abrir una cuenta vía sp_insertarnuevacuenta.
type CuentaCreate struct {
	TipoCta      string          `json:"TipoCta" validate:"required,oneof=AC CC PF"`
	Moneda       string          `json:"Moneda" validate:"required,oneof=SO DO"`
	SaldoInicial decimal.Decimal `json:"SaldoInicial" validate:"required"`
	CodUsu       string          `json:"CodUsu" validate:"required,max=10"`
}

// CuentaEstadoUpdate cambio de estado de una cuenta.
// Estados válidos: A (activa), I (inactiva), B (bloqueada), N (anulada).
type CuentaEstadoUpdate struct {
	NroCta         string `json:"nro_cta" validate:"required,max=20"`
	NuevoEstado    string `json:"nuevo_estado" validate:"required,oneof=A I B N"`
	CodUsuModifica string `json:"cod_usu_modifica" validate:"required,max=10"`
}
