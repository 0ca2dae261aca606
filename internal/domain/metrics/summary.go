// Package metrics agrega transacciones, salidas y platos en indicadores financieros.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary indicadores del panel principal.
type Summary struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	StockLoss decimal.Decimal `json:"stock_loss"`
	Profit    decimal.Decimal `json:"profit"`
	Margin    decimal.Decimal `json:"margin"` // porcentaje sobre ingresos
}

// Revenue suma las entradas.
func Revenue(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == entity.TransactionInflow {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Expenses suma las salidas de caja.
func Expenses(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == entity.TransactionOutflow {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// StockLoss suma el costo estimado de toda salida que no sea venta.
func StockLoss(outputs []entity.ProductOutput) decimal.Decimal {
	total := decimal.Zero
	for _, o := range outputs {
		if o.Reason != entity.OutputReasonSale {
			total = total.Add(o.EstimatedCost)
		}
	}
	return total
}

// Percent part/whole × 100; 0 cuando whole no es positivo.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Summarize calcula los indicadores del panel: profit = ingresos − gastos − pérdidas de stock.
func Summarize(txs []entity.Transaction, outputs []entity.ProductOutput) Summary {
	rev := Revenue(txs)
	exp := Expenses(txs)
	loss := StockLoss(outputs)
	profit := rev.Sub(exp).Sub(loss)
	return Summary{
		Revenue:   rev,
		Expenses:  exp,
		StockLoss: loss,
		Profit:    profit,
		Margin:    Percent(profit, rev),
	}
}
