package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// Son lecturas y escrituras puntuales sobre t_usuario; la lógica de negocio
// queda en los SP y en el flujo de autenticación.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// FindByUsuario obtiene un usuario por nombre de login. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `
		SELECT codusu, usuario, rol, estado, hashedpassword, intentosfallidos, ultimointento
		FROM t_usuario WHERE usuario = $1`
	return r.buscar(ctx, query, usuario)
}

// FindByCodUsu obtiene un usuario por código. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByCodUsu(ctx context.Context, codUsu string) (*entity.Usuario, error) {
	query := `
		SELECT codusu, usuario, rol, estado, hashedpassword, intentosfallidos, ultimointento
		FROM t_usuario WHERE codusu = $1`
	return r.buscar(ctx, query, codUsu)
}

func (r *UsuarioRepo) buscar(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.CodUsu, &u.Usuario, &u.Rol, &u.Estado, &u.HashedPassword,
		&u.IntentosFallidos, &u.UltimoIntento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// RegistrarIntentoFallido incrementa el contador y marca el intento en un
// único UPDATE; el RETURNING entrega el valor ya incrementado. Al ser un solo
// statement, dos intentos concurrentes no pueden pisarse el incremento.
func (r *UsuarioRepo) RegistrarIntentoFallido(ctx context.Context, codUsu string) (int, error) {
	query := `
		UPDATE t_usuario
		SET intentosfallidos = intentosfallidos + 1, ultimointento = now()
		WHERE codusu = $1
		RETURNING intentosfallidos`
	var intentos int
	if err := r.pool.QueryRow(ctx, query, codUsu).Scan(&intentos); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUsuarioNoEncontrado
		}
		return 0, fmt.Errorf("registrar intento fallido: %w", err)
	}
	return intentos, nil
}

// ReiniciarIntentos limpia el contador; con marcarAhora deja la marca de éxito.
func (r *UsuarioRepo) ReiniciarIntentos(ctx context.Context, codUsu string, marcarAhora bool) error {
	query := `UPDATE t_usuario SET intentosfallidos = 0, ultimointento = NULL WHERE codusu = $1`
	if marcarAhora {
		query = `UPDATE t_usuario SET intentosfallidos = 0, ultimointento = now() WHERE codusu = $1`
	}
	if _, err := r.pool.Exec(ctx, query, codUsu); err != nil {
		return fmt.Errorf("reiniciar intentos: %w", err)
	}
	return nil
}

// Actualizar aplica un cambio parcial; los campos nil conservan su valor.
func (r *UsuarioRepo) Actualizar(ctx context.Context, codUsu string, cambios repository.CambiosUsuario) error {
	query := `
		UPDATE t_usuario SET
			usuario = COALESCE($2, usuario),
			rol = COALESCE($3, rol),
			estado = COALESCE($4, estado),
			hashedpassword = COALESCE($5, hashedpassword)
		WHERE codusu = $1`
	tag, err := r.pool.Exec(ctx, query, codUsu,
		cambios.Usuario, cambios.Rol, cambios.Estado, cambios.HashedPassword)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}
