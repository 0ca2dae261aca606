package dto

import (
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

// IngredientRequest alta o edición de un ingrediente.
type IngredientRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Cost     decimal.Decimal `json:"cost"`
}

// MenuItemRequest alta o edición de un plato. Name y Price son obligatorios.
// Si Ingredients no está vacío, Cost se ignora y se usa la suma de los ingredientes.
type MenuItemRequest struct {
	Name        string              `json:"name"`
	Unit        string              `json:"unit"`
	Cost        decimal.Decimal     `json:"cost"`
	Price       *decimal.Decimal    `json:"price"`
	SalesVolume int64               `json:"sales_volume"`
	Ingredients []IngredientRequest `json:"ingredients"`
}

// MenuItemResponse plato con su clasificación vigente.
type MenuItemResponse struct {
	entity.MenuItem
	Quadrant      entity.Quadrant `json:"quadrant"`
	QuadrantLabel string          `json:"quadrant_label"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// MenuResponse menú completo con los promedios usados para clasificar.
type MenuResponse struct {
	Items     []MenuItemResponse `json:"items"`
	AvgMargin decimal.Decimal    `json:"avg_margin"`
	AvgVolume decimal.Decimal    `json:"avg_volume"`
}
