package dto

import "github.com/shopspring/decimal"

// TransactionRequest alta o edición de una transacción. Description, Amount y Category son obligatorios.
type TransactionRequest struct {
	Date        string           `json:"date"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Platform    string           `json:"platform"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

// TransactionFilter filtros del listado de caja.
type TransactionFilter struct {
	Search string `query:"search"`
	Type   string `query:"type"`
}
