package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Banca-api/internal/domain"
)

// esViolacionUnicidad verifica si un error es una violación de constraint único (23505).
func esViolacionUnicidad(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// traducirErrorSP detecta el sentinela "Error:" en un RAISE EXCEPTION de un SP
// y lo convierte en *domain.ErrorSP; cualquier otro error pasa sin tocar.
func traducirErrorSP(proc string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && domain.EsSentinela(pgErr.Message) {
		return domain.NewErrorSP(proc, pgErr.Message)
	}
	return err
}
