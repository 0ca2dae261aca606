package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento registrados en el diario de stock.
const (
	MovementRegister      = "register"       // alta de salida
	MovementEditRestore   = "edit_restore"   // edición con cambio de producto: devuelve al anterior
	MovementEditApply     = "edit_apply"     // edición con cambio de producto: descuenta del nuevo
	MovementEditReconcile = "edit_reconcile" // edición sobre el mismo producto
	MovementDeleteRestore = "delete_restore" // baja de salida
)

// StockMovement asiento del diario de stock: cada cambio de cantidad aplicado
// por una salida queda registrado con su delta y la cantidad resultante.
type StockMovement struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	ProductID     string          `json:"product_id"`
	OutputID      string          `json:"output_id"`
	Kind          string          `json:"kind"`
	Delta         decimal.Decimal `json:"delta"`
	QuantityAfter decimal.Decimal `json:"quantity_after"`
	CreatedAt     time.Time       `json:"created_at"`
}
