// Package pdf genera el resumen de gastos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Gastos de <cliente>                                 │
//	│  Rango: "Gastos: 3 a 7" o "Fechas: 01-03-24 a 31-03-24"      │
//	│                                         Total: Rs. 1,234.50  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Item | Fecha | Descripción | Monto               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Pie: fecha de generación                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/gastos-admin/internal/application/export"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ export.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// Anchos de columna (suman 12): #, Item, Fecha, Descripción, Monto.
var columnSizes = []int{1, 3, 2, 4, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa export.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author se guarda en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateExpenseReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExpenseReport(ctx context.Context, report *export.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if report == nil || len(report.Rows) == 0 {
		return nil, fmt.Errorf("pdf: reporte sin filas")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRows: título, línea de rango (si la hay) y total alineado a la derecha.
func titleRows(report *export.Report) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if report.Subtitle != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(report.Subtitle, props.Text{Size: 9, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(report.TotalLabel, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Right: 1,
		}),
	)))
	return rows
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	aligns := []align.Type{align.Center, align.Left, align.Center, align.Left, align.Right}
	cols := make([]core.Col, 0, len(export.Columns))
	for i, label := range export.Columns {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: aligns[i],
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por gasto, con el número ya desplazado por el rango.
func tableRows(items []export.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		cell := func(s string, n int, a align.Type) core.Col {
			return col.New(columnSizes[n]).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		r := row.New(7).Add(
			cell(strconv.Itoa(it.Number), 0, align.Center),
			cell(it.Item, 1, align.Left),
			cell(it.Date, 2, align.Center),
			cell(it.Description, 3, align.Left),
			cell(it.Amount, 4, align.Right),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// footerRow: fecha de generación y cantidad de registros.
func footerRow(report *export.Report) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Generado el %s · %d registros",
			datefmt.FormatDateTime(report.GeneratedAt), len(report.Rows)),
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}
