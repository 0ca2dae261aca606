package dto

import (
	"github.com/shopspring/decimal"
)

// ShoppingItemRequest ítem de lista de compras. Con ProductID se precarga desde el
// insumo (unidad, costo y proveedor); sin él es un ítem libre y Name es obligatorio.
// Al editar una lista, ID conserva el de un ítem existente; vacío o desconocido genera uno nuevo.
type ShoppingItemRequest struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Unit          string           `json:"unit"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
	Supplier      string           `json:"supplier"`
}

// ShoppingListRequest alta o edición de una lista. Name vacío usa el nombre por defecto con la fecha.
type ShoppingListRequest struct {
	Name  string                `json:"name"`
	Items []ShoppingItemRequest `json:"items"`
}

// ShareResponse enlace para compartir una lista por WhatsApp.
type ShareResponse struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}
