package repository

import (
	"context"

	"github.com/jhoicas/Banca-api/internal/domain/entity"
)

// CambiosUsuario campos actualizables de t_usuario; nil significa "no tocar".
type CambiosUsuario struct {
	Usuario        *string
	Rol            *string
	Estado         *string
	HashedPassword *string
}

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los contadores de bloqueo solo se tocan a través de RegistrarIntentoFallido
// y ReiniciarIntentos; el resto del sistema los trata como solo lectura.
type UsuarioRepository interface {
	// FindByUsuario busca por nombre de login. Devuelve (nil, nil) si no existe.
	FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error)
	// FindByCodUsu busca por código. Devuelve (nil, nil) si no existe.
	FindByCodUsu(ctx context.Context, codUsu string) (*entity.Usuario, error)
	// RegistrarIntentoFallido incrementa IntentosFallidos en 1 y marca
	// UltimoIntento=now() en un único UPDATE atómico; devuelve el contador
	// resultante. Dos intentos concurrentes nunca pierden un incremento.
	RegistrarIntentoFallido(ctx context.Context, codUsu string) (int, error)
	// ReiniciarIntentos pone IntentosFallidos=0. Con marcarAhora=true deja
	// UltimoIntento=now() (marca de éxito); con false lo deja en NULL
	// (ventana de bloqueo vencida).
	ReiniciarIntentos(ctx context.Context, codUsu string, marcarAhora bool) error
	// Actualizar aplica un cambio parcial sobre el usuario.
	Actualizar(ctx context.Context, codUsu string, cambios CambiosUsuario) error
}
