// Package export arma los documentos descargables (PDF, Excel, CSV, texto) y el
// enlace para compartir listas de compras. El formato binario lo resuelven los
// renderizadores de infraestructura a partir de un Document neutro.
package export

import (
	"context"
	"time"
)

// Document documento tabular independiente del formato de salida.
type Document struct {
	Title       string
	Subtitle    string
	Company     string
	GeneratedAt time.Time
	Tables      []Table
	Totals      []Total
	Footer      string
}

// Column columna de una tabla. Width es el ancho en la grilla de 12 columnas del PDF.
type Column struct {
	Header  string
	Width   int
	Numeric bool // alineada a la derecha
}

// Cell celda con el texto mostrado y, opcionalmente, el valor crudo para planillas.
type Cell struct {
	Text  string
	Value any // float64, int o nil (se usa Text)
}

// Table bloque tabular con título opcional.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]Cell
}

// Total línea del bloque de totales.
type Total struct {
	Label     string
	Value     string
	Highlight bool
}

// Renderer convierte un Document a bytes en un formato concreto.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// File archivo listo para descargar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Content types de los formatos soportados.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

func textCell(s string) Cell { return Cell{Text: s} }
