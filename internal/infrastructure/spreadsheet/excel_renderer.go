// Package spreadsheet renderiza documentos exportables como planillas .xlsx con excelize.
package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/girochef/girochef-api/internal/application/export"
)

// SummarySheet nombre de la hoja de resumen, siempre la primera.
const SummarySheet = "Resumo"

const (
	maxSheetName = 31
	headerRow    = 1
	colWidth     = 22
)

// ExcelRenderer implementa export.Renderer generando un libro: una hoja de resumen
// (título, empresa, fecha y totales) y una hoja por tabla con cabecera en negrita.
type ExcelRenderer struct{}

// NewExcelRenderer construye el renderizador.
func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

// Render arma el libro y devuelve sus bytes.
func (r *ExcelRenderer) Render(ctx context.Context, doc export.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "D4AF37"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"111111"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	if err := writeSummary(f, doc, bold); err != nil {
		return nil, err
	}
	used := map[string]bool{SummarySheet: true}
	for i, t := range doc.Tables {
		name := sheetName(t.Title, i, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: hoja %q: %w", name, err)
		}
		if err := writeTable(f, name, t, header); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, doc export.Document, bold int) error {
	lines := [][2]string{
		{"GIROCHEF", doc.Title},
		{"Empresa", doc.Company},
		{"Período", doc.Subtitle},
		{"Gerado em", doc.GeneratedAt.Format("02/01/2006 15:04:05")},
	}
	for _, t := range doc.Totals {
		lines = append(lines, [2]string{t.Label, t.Value})
	}
	for i, l := range lines {
		row := i + 1
		if err := setRow(f, SummarySheet, row, []any{l[0], l[1]}); err != nil {
			return err
		}
		a, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStyle(SummarySheet, a, a, bold); err != nil {
			return fmt.Errorf("xlsx: estilo resumen: %w", err)
		}
	}
	return f.SetColWidth(SummarySheet, "A", "B", colWidth)
}

func writeTable(f *excelize.File, sheet string, t export.Table, header int) error {
	heads := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		heads = append(heads, c.Header)
	}
	if err := setRow(f, sheet, headerRow, heads); err != nil {
		return err
	}
	if len(t.Columns) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), headerRow)
		if err := f.SetCellStyle(sheet, first, last, header); err != nil {
			return fmt.Errorf("xlsx: estilo cabecera: %w", err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.Columns))
		if err := f.SetColWidth(sheet, "A", lastCol, colWidth); err != nil {
			return fmt.Errorf("xlsx: ancho de columnas: %w", err)
		}
	}
	for i, r := range t.Rows {
		vals := make([]any, 0, len(r))
		for _, c := range r {
			if c.Value != nil {
				vals = append(vals, c.Value)
				continue
			}
			vals = append(vals, c.Text)
		}
		if err := setRow(f, sheet, headerRow+1+i, vals); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("xlsx: valor %s: %w", cell, err)
		}
	}
	return nil
}

// sheetName deriva un nombre de hoja válido y único (máx. 31 caracteres, sin : \ / ? * [ ]).
func sheetName(title string, idx int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = fmt.Sprintf("Tabela %d", idx+1)
	}
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	for base, n := name, 2; used[name]; n++ {
		suffix := fmt.Sprintf(" %d", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetName {
			runes = runes[:maxSheetName-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[name] = true
	return name
}
