package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/girochef/girochef-api/internal/application/dto"
)

// Columnas esperadas en la planilla de insumos (exportación de Excel en pt-BR):
//
//	Insumo;Fornecedor;NF;Categoria;Unidade;Quantidade;Custo
//	Carne Bovina Moída;Friboi Alimentos;NF-99283;Proteínas;kg;25;45,90
const productColumns = 7

// readProducts decodifica la planilla. Excel en Windows la guarda en ISO-8859-1,
// por eso latin1=true es el caso normal. La primera línea es la cabecera.
func readProducts(r io.Reader, latin1 bool) ([]dto.ProductRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	out := make([]dto.ProductRequest, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < productColumns {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas, hay %d", line, productColumns, len(rec))
		}
		qty, err := brDecimal(rec[5])
		if err != nil {
			return nil, fmt.Errorf("línea %d: quantidade %q: %w", line, rec[5], err)
		}
		cost, err := brDecimal(rec[6])
		if err != nil {
			return nil, fmt.Errorf("línea %d: custo %q: %w", line, rec[6], err)
		}
		out = append(out, dto.ProductRequest{
			Name:          strings.TrimSpace(rec[0]),
			Supplier:      strings.TrimSpace(rec[1]),
			InvoiceNumber: strings.TrimSpace(rec[2]),
			Category:      strings.TrimSpace(rec[3]),
			Unit:          strings.TrimSpace(rec[4]),
			Quantity:      &qty,
			Cost:          &cost,
		})
	}
	return out, nil
}

// brDecimal interpreta "1.234,50" (separadores pt-BR) y también "1234.50".
func brDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
