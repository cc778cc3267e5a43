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

const procRegistroCompleto = "sp_registerfullclientanduser"

// RegistroUseCase registro público de un cliente con su usuario de acceso.
// El SP crea ambas filas en una sola unidad de trabajo y devuelve los códigos
// generados; la uniqueness (Usuario, DNI) la valida la base de datos.
type RegistroUseCase struct {
	gateway repository.SPGateway
}

// NewRegistroUseCase construye el caso de uso de registro.
func NewRegistroUseCase(gateway repository.SPGateway) *RegistroUseCase {
	return &RegistroUseCase{gateway: gateway}
}

// RegistrarClienteCompleto hashea el password, invoca el SP y traduce el sentinela.
func (uc *RegistroUseCase) RegistrarClienteCompleto(ctx context.Context, in dto.FullClientRegistration) (*dto.RegistrationResponse, error) {
	rol := in.UserData.Rol
	if rol == "" {
		rol = entity.RolCliente
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	filas, err := uc.gateway.Ejecutar(ctx, procRegistroCompleto,
		in.UserData.Usuario, string(hash), rol,
		in.ClientData.Nombres, in.ClientData.Apellidos, in.ClientData.DNI,
		nulable(in.ClientData.Email), nulable(in.ClientData.FechaNac),
		nulable(in.ClientData.Direccion), nulable(in.ClientData.CodUbigeo),
		nulable(in.ClientData.Telefonos), nulable(in.ClientData.Movil),
	)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("%s: sin fila de salida", procRegistroCompleto)
	}

	salida := filas[0]
	mensaje := repository.Cadena(salida, "mensajesp")
	if mensaje != "OK" {
		return nil, domain.NewErrorSP(procRegistroCompleto, mensaje)
	}

	return &dto.RegistrationResponse{
		Message: "Cliente y usuario registrados con éxito",
		GeneratedIDs: dto.GeneratedIDs{
			CodUsu:     repository.Cadena(salida, "codusu"),
			CodCliente: repository.Cadena(salida, "codcliente"),
		},
	}, nil
}

// nulable convierte cadenas vacías en NULL para los parámetros opcionales del SP.
func nulable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
