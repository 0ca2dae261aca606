// Package currency formatea montos decimales según la moneda configurada (BRL por defecto).
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCode moneda usada cuando la configuración no define otra.
const DefaultCode = "BRL"

// Format devuelve el monto con símbolo y separadores de la moneda, ej: "R$114,75".
// Si el código no existe en el catálogo de go-money se usa DefaultCode.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		code = DefaultCode
		cur = money.GetCurrency(code)
	}
	// go-money trabaja en unidades menores (centavos): se escala y redondea.
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}

// Valid informa si el código de moneda es conocido.
func Valid(code string) bool {
	return money.GetCurrency(code) != nil
}
