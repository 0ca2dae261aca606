package entity

import "github.com/shopspring/decimal"

// Motivos de salida de stock.
const (
	OutputReasonSale        = "sale"
	OutputReasonWaste       = "waste"
	OutputReasonInternalUse = "internal_use"
	OutputReasonExpiry      = "expiry"
	OutputReasonOther       = "other"
)

// ValidOutputReason valida el motivo de salida.
func ValidOutputReason(s string) bool {
	switch s {
	case OutputReasonSale, OutputReasonWaste, OutputReasonInternalUse, OutputReasonExpiry, OutputReasonOther:
		return true
	}
	return false
}

// ProductOutput salida de stock. ProductName y Unit son copia del producto al momento del registro;
// EstimatedCost = Quantity × costo unitario del producto.
type ProductOutput struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	Reason        string          `json:"reason"`
	Date          string          `json:"date"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}
