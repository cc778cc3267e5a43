package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Banca-api/internal/application/dto"
	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
)

const (
	procRegistrarEmbargo = "sp_registrarembargo"
	procListarEmbargos   = "sp_listarembargosporcuenta"
)

// ConstanciaPDFGenerator genera la constancia imprimible de los embargos de una cuenta.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el use case a Maroto.
type ConstanciaPDFGenerator interface {
	GenerarConstancia(ctx context.Context, nroCta string, embargos []entity.Embargo) ([]byte, error)
}

// EmbargoUseCase registro y consulta de embargos sobre cuentas.
type EmbargoUseCase struct {
	gateway repository.SPGateway
	pdf     ConstanciaPDFGenerator
}

// NewEmbargoUseCase construye el caso de uso de embargos.
func NewEmbargoUseCase(gateway repository.SPGateway, pdf ConstanciaPDFGenerator) *EmbargoUseCase {
	return &EmbargoUseCase{gateway: gateway, pdf: pdf}
}

// Registrar invoca sp_registrarembargo y devuelve el id generado.
// El SP valida que la cuenta exista, esté activa y que el monto no exceda el saldo.
func (uc *EmbargoUseCase) Registrar(ctx context.Context, in dto.EmbargoCreate) (*dto.EmbargoRegistrado, error) {
	if in.MontoEmbargado.IsNegative() || in.MontoEmbargado.IsZero() {
		return nil, domain.ErrEntradaInvalida
	}

	filas, err := uc.gateway.Ejecutar(ctx, procRegistrarEmbargo,
		in.NroCta, in.TipoEmbargo, in.MontoEmbargado, in.Observaciones, in.CodUsu)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("%s: sin fila de salida", procRegistrarEmbargo)
	}

	salida := filas[0]
	mensaje := repository.Cadena(salida, "mensajesp")
	if domain.EsSentinela(mensaje) {
		return nil, domain.NewErrorSP(procRegistrarEmbargo, mensaje)
	}

	return &dto.EmbargoRegistrado{
		IdEmbargo: repository.Entero(salida, "idembargo"),
		MensajeSP: mensaje,
	}, nil
}

// ListarPorCuenta devuelve los embargos asociados a una cuenta.
func (uc *EmbargoUseCase) ListarPorCuenta(ctx context.Context, nroCta string) ([]entity.Embargo, error) {
	filas, err := uc.gateway.Consultar(ctx, procListarEmbargos, nroCta)
	if err != nil {
		return nil, err
	}
	lista := make([]entity.Embargo, 0, len(filas))
	for _, f := range filas {
		lista = append(lista, entity.Embargo{
			IdEmbargo:      repository.Entero(f, "idembargo"),
			NroCta:         repository.Cadena(f, "nrocta"),
			TipoEmbargo:    repository.Cadena(f, "tipoembargo"),
			MontoEmbargado: repository.Monto(f, "montoembargado"),
			Observaciones:  repository.Cadena(f, "observaciones"),
			FechaRegistro:  repository.Fecha(f, "fecharegistro"),
			Estado:         repository.Cadena(f, "estado"),
			UsrRegistro:    repository.Cadena(f, "usrregistro"),
		})
	}
	return lista, nil
}

// Constancia genera el PDF con los embargos vigentes de la cuenta.
func (uc *EmbargoUseCase) Constancia(ctx context.Context, nroCta string) ([]byte, error) {
	embargos, err := uc.ListarPorCuenta(ctx, nroCta)
	if err != nil {
		return nil, err
	}
	if len(embargos) == 0 {
		return nil, domain.ErrNoEncontrado
	}
	return uc.pdf.GenerarConstancia(ctx, nroCta, embargos)
}
