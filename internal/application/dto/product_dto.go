package dto

import (
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

// ProductRequest alta o edición de un insumo. Name, Supplier, Cost y Quantity son obligatorios.
type ProductRequest struct {
	Name          string           `json:"name"`
	Supplier      string           `json:"supplier"`
	InvoiceNumber string           `json:"nf_number"`
	Category      string           `json:"category"`
	Unit          string           `json:"unit"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Cost          *decimal.Decimal `json:"cost"`
	Date          string           `json:"date"`
}

// ProductResponse insumo con su valor en stock y si está por debajo del umbral.
type ProductResponse struct {
	entity.Product
	StockValue decimal.Decimal `json:"stock_value"`
	LowStock   bool            `json:"low_stock"`
}

// OutputRequest alta o edición de una salida de stock.
type OutputRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Date      string          `json:"date"`
}

// OutputResult resultado de un comando de salida. Applied=false cuando el comando
// no tuvo efecto (producto inexistente, cantidad no positiva o salida inexistente).
type OutputResult struct {
	Applied bool                  `json:"applied"`
	Output  *entity.ProductOutput `json:"output,omitempty"`
}

// SupplierRequest alta o edición de un proveedor. Name, Contact y Category son obligatorios.
type SupplierRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Rating   *int   `json:"rating"`
}

// WasteByProduct costo de desperdicio acumulado de un insumo.
type WasteByProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
}

// ReplenishmentSuggestionDTO insumo sugerido para reposición.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Supplier           string          `json:"supplier"`
	Unit               string          `json:"unit"`
	CurrentStock       decimal.Decimal `json:"current_stock"`
	IdealStock         decimal.Decimal `json:"ideal_stock"`
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	ConsumedLast90Days decimal.Decimal `json:"consumed_last_90_days"`
	WastedLast90Days   decimal.Decimal `json:"wasted_last_90_days"`
	Priority           int             `json:"priority"`
}
