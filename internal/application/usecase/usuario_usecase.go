package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
)

const (
	procRegistrarInterno     = "sp_registerinternaluser"
	procListarUsuariosPorRol = "sp_listarusuariosporrol"
)

// UsuarioUseCase gestión de usuarios: alta interna, perfil, actualización y listados.
type UsuarioUseCase struct {
	usuarios repository.UsuarioRepository
	gateway  repository.SPGateway
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository, gateway repository.SPGateway) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios, gateway: gateway}
}

// RegistrarInterno da de alta personal interno (rol A o E) vía SP.
// El hash bcrypt siempre se calcula aquí, nunca en la base de datos.
func (uc *UsuarioUseCase) RegistrarInterno(ctx context.Context, in dto.RegistroInternoRequest) (*dto.RegistroInternoResponse, error) {
	if in.Rol != entity.RolAdministrador && in.Rol != entity.RolEmpleado {
		return nil, domain.ErrEntradaInvalida
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	filas, err := uc.gateway.Ejecutar(ctx, procRegistrarInterno, in.Usuario, string(hash), in.Rol)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("%s: sin fila de salida", procRegistrarInterno)
	}

	salida := filas[0]
	mensaje := repository.Cadena(salida, "mensajesp")
	if domain.EsSentinela(mensaje) {
		return nil, domain.NewErrorSP(procRegistrarInterno, mensaje)
	}

	return &dto.RegistroInternoResponse{
		CodUsu:    repository.Cadena(salida, "codusu"),
		Usuario:   in.Usuario,
		Rol:       in.Rol,
		MensajeSP: mensaje,
	}, nil
}

// Me devuelve los datos públicos del usuario del token.
func (uc *UsuarioUseCase) Me(ctx context.Context, usuario string) (*dto.UsuarioPublic, error) {
	u, err := uc.usuarios.FindByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return &dto.UsuarioPublic{
		CodUsu:  u.CodUsu,
		Usuario: u.Usuario,
		Rol:     u.Rol,
		Estado:  u.Estado,
	}, nil
}

// Actualizar aplica un cambio parcial sobre un usuario. Si viene password
// nuevo se hashea antes de persistir.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, codUsu string, in dto.UsuarioUpdate) error {
	existente, err := uc.usuarios.FindByCodUsu(ctx, codUsu)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrUsuarioNoEncontrado
	}

	cambios := repository.CambiosUsuario{
		Usuario: in.Usuario,
		Rol:     in.Rol,
		Estado:  in.Estado,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashear password: %w", err)
		}
		h := string(hash)
		cambios.HashedPassword = &h
	}
	return uc.usuarios.Actualizar(ctx, codUsu, cambios)
}

// ListarAdministradores lista usuarios con rol A vía SP.
func (uc *UsuarioUseCase) ListarAdministradores(ctx context.Context) ([]dto.UsuarioPublic, error) {
	return uc.listarPorRol(ctx, entity.RolAdministrador)
}

// ListarEmpleados lista usuarios con rol E vía SP.
func (uc *UsuarioUseCase) ListarEmpleados(ctx context.Context) ([]dto.UsuarioPublic, error) {
	return uc.listarPorRol(ctx, entity.RolEmpleado)
}

func (uc *UsuarioUseCase) listarPorRol(ctx context.Context, rol string) ([]dto.UsuarioPublic, error) {
	filas, err := uc.gateway.Consultar(ctx, procListarUsuariosPorRol, rol)
	if err != nil {
		return nil, err
	}
	lista := make([]dto.UsuarioPublic, 0, len(filas))
	for _, f := range filas {
		lista = append(lista, dto.UsuarioPublic{
			CodUsu:  repository.Cadena(f, "codusu"),
			Usuario: repository.Cadena(f, "usuario"),
			Rol:     repository.Cadena(f, "rol"),
			Estado:  repository.Cadena(f, "estado"),
		})
	}
	return lista, nil
}
