package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
)

const (
	procInsertarCuenta = "sp_insertarnuevacuenta"
	procListarCuentas  = "sp_listarcuentas"
	procEstadoCuenta   = "sp_actualizarestadocuenta"
)

// CuentaUseCase apertura, listado y cambio de estado de cuentas.
type CuentaUseCase struct {
	gateway repository.SPGateway
}

// NewCuentaUseCase construye el caso de uso de cuentas.
func NewCuentaUseCase(gateway repository.SPGateway) *CuentaUseCase {
	return &CuentaUseCase{gateway: gateway}
}

// Abrir registra una cuenta nueva y devuelve el número generado por el SP.
func (uc *CuentaUseCase) Abrir(ctx context.Context, in dto.CuentaCreate) (*dto.APIResponse, error) {
	if in.SaldoInicial.IsNegative() || in.SaldoInicial.IsZero() {
		return nil, domain.ErrEntradaInvalida
	}

	filas, err := uc.gateway.Ejecutar(ctx, procInsertarCuenta,
		in.TipoCta, in.Moneda, in.SaldoInicial, in.CodUsu)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("%s: sin fila de salida", procInsertarCuenta)
	}

	salida := filas[0]
	mensaje := repository.Cadena(salida, "mensajesp")
	if domain.EsSentinela(mensaje) {
		return nil, domain.NewErrorSP(procInsertarCuenta, mensaje)
	}

	return &dto.APIResponse{
		Mensaje: mensaje,
		Codigo:  repository.Cadena(salida, "nrocta"),
		Result:  []map[string]any{salida},
	}, nil
}

// ListarPorUsuario devuelve las cuentas asociadas a un usuario.
func (uc *CuentaUseCase) ListarPorUsuario(ctx context.Context, codUsu string) ([]map[string]any, error) {
	return uc.gateway.Consultar(ctx, procListarCuentas, codUsu)
}

// CambiarEstado actualiza el estado de una cuenta (A/I/B/N) vía SP.
func (uc *CuentaUseCase) CambiarEstado(ctx context.Context, in dto.CuentaEstadoUpdate) (*dto.APIResponse, error) {
	filas, err := uc.gateway.Ejecutar(ctx, procEstadoCuenta,
		in.NroCta, in.NuevoEstado, in.CodUsuModifica)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("%s: sin fila de salida", procEstadoCuenta)
	}

	mensaje := repository.Cadena(filas[0], "mensajesp")
	if domain.EsSentinela(mensaje) {
		return nil, domain.NewErrorSP(procEstadoCuenta, mensaje)
	}

	return &dto.APIResponse{
		Mensaje: mensaje,
		Codigo:  in.NroCta,
	}, nil
}
