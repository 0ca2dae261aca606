// Package inventory contiene la aritmética de stock de las salidas de producto.
// Son funciones puras: reciben cantidades y devuelven cantidades, sin estado.
package inventory

import "github.com/shopspring/decimal"

// Withdraw descuenta qty del stock. En el alta de una salida el stock nunca
// queda negativo: el exceso se absorbe en silencio.
func Withdraw(onHand, qty decimal.Decimal) decimal.Decimal {
	out := onHand.Sub(qty)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// Restore devuelve qty al stock (baja de salida). Sin tope superior.
func Restore(onHand, qty decimal.Decimal) decimal.Decimal {
	return onHand.Add(qty)
}

// Reconcile ajusta el stock cuando se edita una salida del mismo producto:
// suma la cantidad anterior y resta la nueva. No aplica piso en cero.
func Reconcile(onHand, oldQty, newQty decimal.Decimal) decimal.Decimal {
	return onHand.Add(oldQty).Sub(newQty)
}

// EstimatedCost costo de una salida: cantidad × costo unitario del producto.
func EstimatedCost(qty, unitCost decimal.Decimal) decimal.Decimal {
	return qty.Mul(unitCost)
}

// Delta variación de stock sobre un producto.
type Delta struct {
	ProductID string
	Amount    decimal.Decimal // positivo devuelve stock, negativo lo descuenta
	Kind      string
}

// Tipos de Delta producidos por EditDeltas.
const (
	DeltaReconcile = "reconcile"
	DeltaRestore   = "restore"
	DeltaApply     = "apply"
)

// EditDeltas calcula las variaciones de stock de editar una salida.
// Mismo producto: un único ajuste (old − new). Producto distinto: el anterior
// recupera old y el nuevo pierde new, cada uno por separado y sin piso en cero.
func EditDeltas(oldProductID string, oldQty decimal.Decimal, newProductID string, newQty decimal.Decimal) []Delta {
	if oldProductID == newProductID {
		return []Delta{{ProductID: oldProductID, Amount: oldQty.Sub(newQty), Kind: DeltaReconcile}}
	}
	return []Delta{
		{ProductID: oldProductID, Amount: oldQty, Kind: DeltaRestore},
		{ProductID: newProductID, Amount: newQty.Neg(), Kind: DeltaApply},
	}
}
