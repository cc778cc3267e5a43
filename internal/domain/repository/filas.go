package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lectores para las filas columna->valor que entrega el SPGateway.
// PostgreSQL devuelve las columnas en minúsculas; los tipos dependen del
// codec registrado en el pool (NUMERIC llega como decimal.Decimal).

// Cadena lee una columna de texto; devuelve "" si falta o no es texto.
func Cadena(fila map[string]any, col string) string {
	switch v := fila[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Entero lee una columna entera; devuelve 0 si falta.
func Entero(fila map[string]any, col string) int64 {
	switch v := fila[col].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

// Monto lee una columna monetaria; devuelve cero si falta o no parsea.
func Monto(fila map[string]any, col string) decimal.Decimal {
	switch v := fila[col].(type) {
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return decimal.Zero
	}
}

// Fecha lee una columna de fecha; devuelve el cero de time.Time si falta.
func Fecha(fila map[string]any, col string) time.Time {
	if v, ok := fila[col].(time.Time); ok {
		return v
	}
	return time.Time{}
}
