package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/inventory"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/infrastructure/memory"
	"github.com/girochef/girochef-api/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	store     *store.Store
	movements *memory.StockMovementRepo
	uc        *inventory.OutputUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := store.New(memory.NewKVStore(), logger.Nop(), store.Options{
		KeyPrefix: "girochef_",
		Now:       func() time.Time { return time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC) },
	})
	s.Load(context.Background())
	movs := memory.NewStockMovementRepository()
	return fixture{store: s, movements: movs, uc: inventory.NewOutputUseCase(s, movs, logger.Nop())}
}

func (f fixture) quantity(t *testing.T, productID string) decimal.Decimal {
	t.Helper()
	var q decimal.Decimal
	found := false
	f.store.View(func(st *store.State) {
		if i := st.ProductIndex("1", productID); i >= 0 {
			q = st.Products["1"][i].Quantity
			found = true
		}
	})
	require.True(t, found, "producto %s", productID)
	return q
}

// failingMovements diario que rechaza toda escritura.
type failingMovements struct{ *memory.StockMovementRepo }

func (failingMovements) Create(context.Context, *entity.StockMovement) error {
	return errors.New("diario no disponible")
}

// ─── Register ────────────────────────────────────────────────────────────────

func TestRegister_DescuentaYCalculaCosto(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p1", Quantity: d("2.5"), Reason: entity.OutputReasonWaste})
	require.NoError(t, err)

	require.True(t, res.Applied)
	assert.True(t, d("22.5").Equal(f.quantity(t, "p1")))
	assert.True(t, d("114.75").Equal(res.Output.EstimatedCost))
	assert.Equal(t, "Carne Bovina Moída", res.Output.ProductName)
	assert.Equal(t, entity.UnitKilogram, res.Output.Unit)
	assert.Equal(t, "2025-12-31", res.Output.Date)
	assert.Equal(t, res.Output.ID, f.uc.List("1", "")[0].ID, "la salida nueva va primero")
}

func TestRegister_PisoEnCero(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p1", Quantity: d("40")})
	require.NoError(t, err)

	require.True(t, res.Applied)
	assert.True(t, f.quantity(t, "p1").IsZero())
	assert.True(t, d("1836").Equal(res.Output.EstimatedCost))
}

func TestRegister_NoOp(t *testing.T) {
	cases := map[string]dto.OutputRequest{
		"producto inexistente": {ProductID: "nope", Quantity: d("1")},
		"cantidad cero":        {ProductID: "p1", Quantity: decimal.Zero},
		"cantidad negativa":    {ProductID: "p1", Quantity: d("-3")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			res, err := f.uc.Register(context.Background(), "1", in)
			require.NoError(t, err)
			assert.False(t, res.Applied)
			assert.True(t, d("25").Equal(f.quantity(t, "p1")))
			assert.Len(t, f.uc.List("1", ""), 2)
		})
	}
}

func TestRegister_MotivoInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p1", Quantity: d("1"), Reason: "furto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Edit / Delete ───────────────────────────────────────────────────────────

func TestRegisterDelete_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.uc.Register(ctx, "1", dto.OutputRequest{ProductID: "p2", Quantity: d("30"), Reason: entity.OutputReasonSale})
	require.NoError(t, err)
	assert.True(t, d("70").Equal(f.quantity(t, "p2")))

	del, err := f.uc.Delete(ctx, "1", res.Output.ID)
	require.NoError(t, err)
	assert.True(t, del.Applied)
	assert.True(t, d("100").Equal(f.quantity(t, "p2")))
	assert.Nil(t, f.uc.Get("1", res.Output.ID))
}

func TestEdit_MismoProductoAjustaDiferencia(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Edit(context.Background(), "1", "o1", dto.OutputRequest{ProductID: "p1", Quantity: d("4"), Reason: entity.OutputReasonWaste})
	require.NoError(t, err)

	require.True(t, res.Applied)
	assert.True(t, d("23.5").Equal(f.quantity(t, "p1")), "25 + 2.5 − 4")
	assert.True(t, d("183.6").Equal(res.Output.EstimatedCost))
}

func TestEdit_CambioDeProducto(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Edit(context.Background(), "1", "o1", dto.OutputRequest{ProductID: "p2", Quantity: d("10"), Reason: entity.OutputReasonInternalUse})
	require.NoError(t, err)

	require.True(t, res.Applied)
	assert.True(t, d("27.5").Equal(f.quantity(t, "p1")))
	assert.True(t, d("90").Equal(f.quantity(t, "p2")))
	assert.Equal(t, "Pão de Brioche", res.Output.ProductName)
	assert.Equal(t, entity.UnitEach, res.Output.Unit)
	assert.True(t, d("18.5").Equal(res.Output.EstimatedCost))

	movs, err := f.movements.ListByProduct(context.Background(), "1", "p1", 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementEditRestore, movs[0].Kind)
}

func TestEdit_SinPisoEnCero(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Edit(context.Background(), "1", "o1", dto.OutputRequest{ProductID: "p1", Quantity: d("30")})
	require.NoError(t, err)

	assert.True(t, d("-2.5").Equal(f.quantity(t, "p1")))
}

func TestEdit_SalidaInexistenteNoOp(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Edit(context.Background(), "1", "nope", dto.OutputRequest{ProductID: "p1", Quantity: d("1")})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.True(t, d("25").Equal(f.quantity(t, "p1")))
}

func TestDelete_InexistenteNoOp(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Delete(context.Background(), "1", "nope")
	require.NoError(t, err)
	assert.False(t, res.Applied)
}

// ─── Diario y notificaciones ─────────────────────────────────────────────────

func TestRegister_AnotaMovimiento(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p1", Quantity: d("5")})
	require.NoError(t, err)

	movs, err := f.movements.ListByProduct(context.Background(), "1", "p1", 10)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementRegister, movs[0].Kind)
	assert.True(t, d("-5").Equal(movs[0].Delta))
	assert.True(t, d("20").Equal(movs[0].QuantityAfter))
}

func TestRegister_FalloDelDiarioNoRevierte(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewOutputUseCase(f.store, failingMovements{memory.NewStockMovementRepository()}, logger.Nop())

	res, err := uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p1", Quantity: d("5")})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.True(t, d("20").Equal(f.quantity(t, "p1")))
}

func TestRegister_RegeneraAlertaDeStockBajo(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p1", Quantity: d("16"), Reason: entity.OutputReasonSale})
	require.NoError(t, err)

	var ids []string
	for _, n := range f.store.Notifications("1") {
		ids = append(ids, n.ID)
	}
	assert.Contains(t, ids, "low-stock-p1")
}

func TestWasteByProduct(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Register(context.Background(), "1", dto.OutputRequest{ProductID: "p2", Quantity: d("10"), Reason: entity.OutputReasonWaste})
	require.NoError(t, err)

	got := f.uc.WasteByProduct("1")

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ProductID)
	assert.True(t, d("114.75").Equal(got[0].Cost))
	assert.True(t, d("18.5").Equal(got[1].Cost))
}

// ─── Reposición ──────────────────────────────────────────────────────────────

func TestReplenishment_PriorizaConsumo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.uc.Register(ctx, "1", dto.OutputRequest{ProductID: "p1", Quantity: d("20"), Reason: entity.OutputReasonSale})
	require.NoError(t, err)
	_, err = f.uc.Register(ctx, "1", dto.OutputRequest{ProductID: "p2", Quantity: d("95"), Reason: entity.OutputReasonSale})
	require.NoError(t, err)

	got := inventory.NewReplenishmentUseCase(f.store).GenerateReplenishmentList("1")

	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ProductID, "107 consumidos contra 22.5")
	assert.Equal(t, 1, got[0].Priority)
	assert.True(t, d("10").Equal(got[0].SuggestedOrderQty), "ideal 15 − 5")
	assert.True(t, d("18.5").Equal(got[0].EstimatedOrderCost))
	assert.True(t, d("2.5").Equal(got[1].WastedLast90Days))
}
