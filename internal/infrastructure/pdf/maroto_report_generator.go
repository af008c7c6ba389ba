// Package pdf renderiza el reporte consolidado de inventario valorizado como
// documento imprimible para los comités de obra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de corrida + run_id                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Proyecto | Grupo | Producto | Cant | P.Med | Valor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRAN TOTAL: cantidad total / valor total en COP            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/iserv/inventario-obras/internal/application/dto"
	"github.com/iserv/inventario-obras/internal/application/inventario"
	"github.com/iserv/inventario-obras/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventario.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventario.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateConsolidatedPDF genera el PDF del consolidado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateConsolidatedPDF(
	_ context.Context,
	report *dto.ConsolidatedReportDTO,
	title string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Inventario Consolidado Valorizado", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	for _, r := range report.Rows {
		if r.GrandTotal {
			m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
			m.AddRows(grandTotalRow(r))
			continue
		}
		m.AddRows(detailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.ConsolidatedReportDTO, title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Corrida: "+report.RunID.String(), props.Text{
				Size: 7, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(2, "Proyecto", align.Left),
		header(2, "Grupo", align.Left),
		header(4, "Producto", align.Left),
		header(1, "Cant.", align.Right),
		header(1, "P. Mediano", align.Right),
		header(2, "Valor", align.Right),
	)
}

func detailRow(r dto.ConsolidatedRowDTO) core.Row {
	name := "—"
	if r.ProjectName != nil {
		name = *r.ProjectName
	}
	group, product := "", ""
	if r.Group != nil {
		group = *r.Group
	}
	if r.Product != nil {
		product = *r.Product
	}
	price := "—"
	if r.MedianPrice != nil && r.MedianPrice.IsPositive() {
		price = format.COP(*r.MedianPrice)
	}

	cell := func(size int, value string, al align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 7, Align: al}))
	}
	return row.New(5).Add(
		cell(2, name, align.Left),
		cell(2, group, align.Left),
		cell(4, product, align.Left),
		cell(1, r.NetQuantity.StringFixed(0), align.Right),
		cell(1, price, align.Right),
		cell(2, format.COP(r.TotalValue), align.Right),
	)
}

func grandTotalRow(r dto.ConsolidatedRowDTO) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("TOTAL INVENTARIO", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		})),
		col.New(1).Add(text.New(r.NetQuantity.StringFixed(0), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
		col.New(3).Add(text.New(format.COP(r.TotalValue), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}
