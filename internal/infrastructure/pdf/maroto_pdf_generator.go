// Package pdf implementa el renderizado en PDF de los documentos exportables
// (lista de compras, reporte completo y flujo de caja) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GIROCHEF + Título   │  Subtítulo + Empresa + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: título opcional, cabecera y una fila por registro   │
//	│  (se repite por cada tabla del documento)                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: etiqueta / valor alineados a la derecha           │
//	│  FOOTER: leyenda de la plataforma                           │
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

	"github.com/girochef/girochef-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 212, Green: 175, Blue: 55} // dorado de la marca
	colorDark    = &props.Color{Red: 17, Green: 17, Blue: 17}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	brand      = "GIROCHEF"
	tagline    = "GIROCHEF PREMIUM SAAS • INTELIGÊNCIA EM CUSTOS"
	gridSize   = 12
	dateLayout = "02/01/2006 15:04:05"
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.Renderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Render genera el PDF del documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(ctx context.Context, doc export.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(brand+" - "+doc.Title, true).
		WithAuthor(nonEmpty(doc.Company, brand), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, t := range doc.Tables {
		m.AddRows(line.NewRow(3))
		if t.Title != "" {
			m.AddRows(tableTitleRow(t.Title))
		}
		m.AddRows(tableHeaderRow(t.Columns))
		if len(t.Rows) == 0 {
			m.AddRows(emptyRow())
		}
		for _, r := range tableDetailRows(t) {
			m.AddRows(r)
		}
	}

	if len(doc.Totals) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		for _, r := range totalsRows(doc.Totals) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(doc.Footer) {
		m.AddRows(r)
	}

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + título (izq) y subtítulo + empresa + fecha de generación (der).
func headerRow(doc export.Document) core.Row {
	return row.New(20).Add(
		col.New(6).Add(
			text.New(brand, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(doc.Subtitle, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Company, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("GERADO EM: "+doc.GeneratedAt.Format(dateLayout), props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(gridSize).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}),
	))
}

func columnAlign(c export.Column) align.Type {
	if c.Numeric {
		return align.Right
	}
	return align.Left
}

// tableHeaderRow: cabecera de la tabla con fondo oscuro.
func tableHeaderRow(cols []export.Column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.Width).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(c),
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorDark})
}

// tableDetailRows: una fila por registro.
func tableDetailRows(t export.Table) []core.Row {
	result := make([]core.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		cells := make([]core.Col, 0, len(t.Columns))
		for i, c := range t.Columns {
			v := ""
			if i < len(r) {
				v = r[i].Text
			}
			cells = append(cells, col.New(c.Width).Add(text.New(v, props.Text{
				Size: 8, Align: columnAlign(c), Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(7).Add(cells...))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(7).Add(col.New(gridSize).Add(
		text.New("Sem registros.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// totalsRows: bloque de totales alineado a la derecha; el destacado va en dorado.
func totalsRows(totals []export.Total) []core.Row {
	rows := make([]core.Row, 0, len(totals))
	for _, t := range totals {
		p := props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1}
		if t.Highlight {
			p = props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: 1}
		}
		label := p
		label.Style = fontstyle.Bold
		rows = append(rows, row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New(t.Label+":", label)),
			col.New(3).Add(text.New(t.Value, p)),
		))
	}
	return rows
}

// footerRows: leyenda de la plataforma y nota opcional del documento.
func footerRows(note string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(gridSize).Add(
			text.New(tagline, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)),
	}
	if note != "" {
		rows = append(rows, row.New(5).Add(col.New(gridSize).Add(
			text.New(note, props.Text{Size: 6.5, Align: align.Center, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
