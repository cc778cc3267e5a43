// Package pdf implementa la generación de la constancia de embargos de una
// cuenta: documento imprimible con los embargos registrados, emitido a
// solicitud de juzgados y áreas de operaciones.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Banca-api/internal/application/usecase"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 51, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ConstanciaPDFGenerator = (*MarotoConstanciaGenerator)(nil)

// MarotoConstanciaGenerator implementa usecase.ConstanciaPDFGenerator usando Maroto v2.
type MarotoConstanciaGenerator struct {
	NombreEntidad string
}

// NewMarotoConstanciaGenerator construye el generador.
func NewMarotoConstanciaGenerator(nombreEntidad string) *MarotoConstanciaGenerator {
	if nombreEntidad == "" {
		nombreEntidad = "Sistema Bancario"
	}
	return &MarotoConstanciaGenerator{NombreEntidad: nombreEntidad}
}

// GenerarConstancia genera el PDF y devuelve sus bytes.
func (g *MarotoConstanciaGenerator) GenerarConstancia(_ context.Context, nroCta string, embargos []entity.Embargo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Constancia de Embargos", true).
		WithAuthor(g.NombreEntidad, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(nroCta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, e := range embargos {
		m.AddRows(detalleRow(e))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(embargos)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar constancia: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: entidad (izq) y número de cuenta + fecha de emisión (der).
func (g *MarotoConstanciaGenerator) headerRow(nroCta string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.NombreEntidad, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CONSTANCIA DE EMBARGOS", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Cuenta: "+nroCta, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Emitida: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de embargos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Tipo", 2, align.Center),
		h("Monto", 2, align.Right),
		h("Fecha", 2, align.Center),
		h("Estado", 1, align.Center),
		h("Registrado por", 2, align.Left),
		h("Observaciones", 2, align.Left),
	)
}

// detalleRow: una fila por embargo.
func detalleRow(e entity.Embargo) core.Row {
	tipo := "Parcial"
	if e.TipoEmbargo == entity.EmbargoTotal {
		tipo = "Total"
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", e.IdEmbargo), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(tipo, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(e.MontoEmbargado.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(e.FechaRegistro.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(e.Estado, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(e.UsrRegistro, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(noVacio(e.Observaciones, "—"), props.Text{Size: 7, Top: 1, Color: colorGray})),
	)
}

// footerRow: total de embargos y leyenda.
func footerRow(total int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de embargos registrados: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
			text.New("Documento generado automáticamente; no requiere firma.", props.Text{
				Size: 7, Top: 6, Color: colorGray,
			}),
		),
	)
}

func noVacio(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
