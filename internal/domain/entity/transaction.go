package entity

import "github.com/shopspring/decimal"

// Tipos de transacción del flujo de caja.
const (
	TransactionInflow  = "inflow"  // entrada
	TransactionOutflow = "outflow" // salida
)

// Plataformas de venta conocidas. Una transacción sin plataforma es venta directa.
const (
	PlatformIFood  = "ifood"
	PlatformBrendi = "brendi"
	PlatformDirect = "direct"
)

// Transaction movimiento de caja. Date usa el formato DateLayout.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Platform    string          `json:"platform,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// IsInflow indica si la transacción es una entrada de caja.
func (t Transaction) IsInflow() bool { return t.Type == TransactionInflow }

// ValidTransactionType valida el tipo.
func ValidTransactionType(s string) bool {
	return s == TransactionInflow || s == TransactionOutflow
}

// ValidPlatform valida la plataforma; vacío es válido (venta directa).
func ValidPlatform(s string) bool {
	switch s {
	case "", PlatformIFood, PlatformBrendi:
		return true
	}
	return false
}
