package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWithdraw_Descuenta(t *testing.T) {
	got := inventory.Withdraw(d("25"), d("2.5"))
	assert.True(t, got.Equal(d("22.5")), got.String())
}

func TestWithdraw_PisoEnCero(t *testing.T) {
	got := inventory.Withdraw(d("3"), d("10"))
	assert.True(t, got.IsZero(), got.String())
}

func TestEstimatedCost_Escenario(t *testing.T) {
	got := inventory.EstimatedCost(d("2.5"), d("45.90"))
	assert.True(t, got.Equal(d("114.75")), got.String())
}

func TestRestore_IdaYVuelta(t *testing.T) {
	before := d("25")
	after := inventory.Restore(inventory.Withdraw(before, d("7.25")), d("7.25"))
	assert.True(t, after.Equal(before))
}

func TestReconcile_SinPiso(t *testing.T) {
	got := inventory.Reconcile(d("1"), d("2"), d("10"))
	assert.True(t, got.Equal(d("-7")), got.String())
}

func TestEditDeltas_MismoProducto(t *testing.T) {
	deltas := inventory.EditDeltas("p1", d("2"), "p1", d("5"))
	require.Len(t, deltas, 1)
	assert.Equal(t, "p1", deltas[0].ProductID)
	assert.Equal(t, inventory.DeltaReconcile, deltas[0].Kind)
	assert.True(t, deltas[0].Amount.Equal(d("-3")))
}

func TestEditDeltas_CambioDeProducto(t *testing.T) {
	deltas := inventory.EditDeltas("p1", d("2"), "p2", d("5"))
	require.Len(t, deltas, 2)
	assert.Equal(t, "p1", deltas[0].ProductID)
	assert.Equal(t, inventory.DeltaRestore, deltas[0].Kind)
	assert.True(t, deltas[0].Amount.Equal(d("2")))
	assert.Equal(t, "p2", deltas[1].ProductID)
	assert.Equal(t, inventory.DeltaApply, deltas[1].Kind)
	assert.True(t, deltas[1].Amount.Equal(d("-5")))
}
