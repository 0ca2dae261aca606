package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de los ítems libres (sin producto de origen).
const (
	CustomItemUnit     = UnitEach
	CustomItemSupplier = "undefined"
)

// ManualShoppingItem ítem de una lista de compras.
type ManualShoppingItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"` // costo unitario estimado
	Supplier      string          `json:"supplier"`
}

// Subtotal cantidad × costo estimado.
func (i ManualShoppingItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.EstimatedCost)
}

// ManualShoppingList lista de compras armada a mano.
type ManualShoppingList struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Date      time.Time            `json:"date"`
	TotalCost decimal.Decimal      `json:"total_cost"`
	Items     []ManualShoppingItem `json:"items"`
}

// Recalculate actualiza TotalCost como la suma de los subtotales de los ítems.
func (l *ManualShoppingList) Recalculate() {
	total := decimal.Zero
	for _, it := range l.Items {
		total = total.Add(it.Subtotal())
	}
	l.TotalCost = total
}
