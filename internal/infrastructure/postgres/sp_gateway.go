package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Banca-api/internal/domain/repository"
)

var _ repository.SPGateway = (*SPGateway)(nil)

// SPGateway adaptador del puerto SPGateway sobre PostgreSQL.
// Los procedimientos portados son funciones set-returning; los mutadores
// devuelven sus valores OUT como columnas de una única fila.
type SPGateway struct {
	pool *pgxpool.Pool
}

// NewSPGateway construye el gateway con el pool.
func NewSPGateway(pool *pgxpool.Pool) *SPGateway {
	return &SPGateway{pool: pool}
}

// Consultar invoca un procedimiento de solo lectura fuera de transacción.
func (g *SPGateway) Consultar(ctx context.Context, proc string, args ...any) ([]map[string]any, error) {
	rows, err := g.pool.Query(ctx, sentencia(proc, len(args)), args...)
	if err != nil {
		return nil, traducirErrorSP(proc, fmt.Errorf("%s: %w", proc, err))
	}
	filas, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, traducirErrorSP(proc, fmt.Errorf("%s: %w", proc, err))
	}
	return filas, nil
}

// Ejecutar invoca un procedimiento mutador dentro de una transacción explícita.
// Los valores OUT solo se devuelven al caller después del Commit; ante
// cualquier error la transacción se revierte para no dejar escrituras parciales.
func (g *SPGateway) Ejecutar(ctx context.Context, proc string, args ...any) ([]map[string]any, error) {
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, sentencia(proc, len(args)), args...)
	if err != nil {
		return nil, traducirErrorSP(proc, fmt.Errorf("%s: %w", proc, err))
	}
	filas, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, traducirErrorSP(proc, fmt.Errorf("%s: %w", proc, err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit %s: %w", proc, err)
	}
	return filas, nil
}

// sentencia arma "SELECT * FROM proc($1, $2, ...)" con parámetros posicionales.
func sentencia(proc string, n int) string {
	marcadores := make([]string, n)
	for i := range marcadores {
		marcadores[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("SELECT * FROM %s(%s)", proc, strings.Join(marcadores, ", "))
}
