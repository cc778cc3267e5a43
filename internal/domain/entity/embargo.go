package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de embargo.
const (
	EmbargoTotal   = "T"
	EmbargoParcial = "P"
)

// Embargo representa una retención judicial sobre una cuenta (fila de t_embargos).
type Embargo struct {
	IdEmbargo      int64
	NroCta         string
	TipoEmbargo    string // T = total, P = parcial
	MontoEmbargado decimal.Decimal
	Observaciones  string
	FechaRegistro  time.Time
	Estado         string
	UsrRegistro    string
}
