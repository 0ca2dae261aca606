package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/application/analytics"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/metrics"
	"github.com/girochef/girochef-api/internal/infrastructure/memory"
	"github.com/girochef/girochef-api/pkg/logger"
)

func newUseCase(t *testing.T) *analytics.DashboardUseCase {
	t.Helper()
	s := store.New(memory.NewKVStore(), logger.Nop(), store.Options{
		KeyPrefix: "girochef_",
		Currency:  "BRL",
		Now:       func() time.Time { return time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC) },
	})
	s.Load(context.Background())
	return analytics.NewDashboardUseCase(s)
}

func TestGetSummary_Demostracion(t *testing.T) {
	uc := newUseCase(t)

	sum, err := uc.GetSummary("1")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("6000.5").Equal(sum.Stats.Revenue))
	assert.True(t, decimal.RequireFromString("114.75").Equal(sum.Stats.StockLoss), "la venta no cuenta como pérdida")
	assert.True(t, decimal.RequireFromString("5885.75").Equal(sum.Stats.Profit))
	assert.Equal(t, 1, sum.UnreadAlerts)
	assert.Empty(t, sum.LowStock)
	assert.Equal(t, 2, sum.ProductCount)
	assert.Equal(t, 2, sum.SupplierCount)
	assert.Equal(t, "Dezembro 2025", sum.DateLabel)
	assert.Contains(t, sum.FormattedStats["profit"], "5.885,75")

	require.Len(t, sum.TopItems, 2)
	assert.Equal(t, "m1", sum.TopItems[0].ID)
	assert.Equal(t, entity.QuadrantDog, sum.TopItems[1].Category, "se reclasifica sobre el menú actual")
}

func TestGetSummary_EmpresaSinDatos(t *testing.T) {
	uc := newUseCase(t)

	sum, err := uc.GetSummary("3")
	require.NoError(t, err)

	assert.True(t, sum.Stats.Revenue.IsZero())
	assert.True(t, sum.Stats.Margin.IsZero())
	assert.NotNil(t, sum.LowStock)
	assert.Empty(t, sum.TopItems)
}

func TestGetSummary_EmpresaInexistente(t *testing.T) {
	_, err := newUseCase(t).GetSummary("zz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetReport_Ventana30Dias(t *testing.T) {
	uc := newUseCase(t)

	rep, err := uc.GetReport("1", metrics.Range30d)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1500).Equal(rep.Revenue), "la transacción de 2024 queda fuera")
	require.Len(t, rep.Platforms, 1)
	assert.Equal(t, entity.PlatformBrendi, rep.Platforms[0].Platform)
	assert.Equal(t, "2025-12-31", rep.Reference)
}

func TestSnapshot(t *testing.T) {
	snap, err := newUseCase(t).Snapshot("1")
	require.NoError(t, err)

	assert.Equal(t, "Burger Lab", snap.Company.Name)
	assert.Len(t, snap.Menu, 2)
	assert.Len(t, snap.Outputs, 2)
}
