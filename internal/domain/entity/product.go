package entity

import "github.com/shopspring/decimal"

// Product representa un insumo en stock. Quantity solo cambia por el formulario
// de edición o, de forma indirecta, por las salidas (ProductOutput) registradas.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"nf_number"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Cost          decimal.Decimal `json:"cost"` // costo unitario
	Date          string          `json:"date"` // fecha de adquisición
}

// ProductPrefill datos para precargar el formulario de alta de producto
// a partir de un ítem de lista de compras ("lanzar al stock").
type ProductPrefill struct {
	Name          string          `json:"name"`
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"nf_number"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Cost          decimal.Decimal `json:"cost"`
	Date          string          `json:"date"`
}

// PrefillCategory categoría con la que llegan los ítems lanzados desde una lista de compras.
const PrefillCategory = "Compras Manuais"
