package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/metrics"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tx(id, date, typ, category, platform, amount string) entity.Transaction {
	return entity.Transaction{ID: id, Date: date, Type: typ, Category: category, Platform: platform, Amount: d(amount)}
}

var ref = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

// ─── Summarize ───────────────────────────────────────────────────────────────

func TestSummarize_DescuentaPerdidasDeStock(t *testing.T) {
	txs := []entity.Transaction{
		tx("t1", "2025-12-30", entity.TransactionInflow, "Vendas", "", "1000"),
		tx("t2", "2025-12-30", entity.TransactionOutflow, "Aluguel", "", "300"),
	}
	outputs := []entity.ProductOutput{
		{ID: "o1", Reason: entity.OutputReasonWaste, EstimatedCost: d("100")},
		{ID: "o2", Reason: entity.OutputReasonSale, EstimatedCost: d("999")},
	}

	s := metrics.Summarize(txs, outputs)

	assert.True(t, s.Revenue.Equal(d("1000")))
	assert.True(t, s.Expenses.Equal(d("300")))
	assert.True(t, s.StockLoss.Equal(d("100")))
	assert.True(t, s.Profit.Equal(d("600")))
	assert.True(t, s.Margin.Equal(d("60")), s.Margin.String())
}

func TestSummarize_SinIngresosMargenCero(t *testing.T) {
	s := metrics.Summarize([]entity.Transaction{tx("t", "2025-01-01", entity.TransactionOutflow, "X", "", "50")}, nil)
	assert.True(t, s.Margin.IsZero())
	assert.True(t, s.Profit.Equal(d("-50")))
}

// ─── Rangos ──────────────────────────────────────────────────────────────────

func TestParseTimeRange(t *testing.T) {
	r, err := metrics.ParseTimeRange("")
	require.NoError(t, err)
	assert.Equal(t, metrics.Range30d, r)

	_, err = metrics.ParseTimeRange("2w")
	assert.Error(t, err)
}

func TestFilterByRange(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "2025-12-24", entity.TransactionInflow, "V", "", "1"), // 7 días
		tx("b", "2025-12-23", entity.TransactionInflow, "V", "", "1"), // 8 días
		tx("c", "2025-01-02", entity.TransactionInflow, "V", "", "1"),
		tx("d", "2024-05-01", entity.TransactionInflow, "V", "", "1"),
		tx("e", "no-date", entity.TransactionInflow, "V", "", "1"),
	}

	ids := func(list []entity.Transaction) []string {
		out := []string{}
		for _, t := range list {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a"}, ids(metrics.FilterByRange(txs, metrics.Range7d, ref)))
	assert.Equal(t, []string{"a", "b"}, ids(metrics.FilterByRange(txs, metrics.Range15d, ref)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(metrics.FilterByRange(txs, metrics.RangeYear, ref)))
}

// ─── Desgloses ───────────────────────────────────────────────────────────────

func TestPlatformPerformance(t *testing.T) {
	txs := []entity.Transaction{
		tx("t0", "2025-12-30", entity.TransactionInflow, "VENDAS", entity.PlatformBrendi, "1500"),
		tx("t1", "2025-12-30", entity.TransactionInflow, "Vendas", entity.PlatformIFood, "4500"),
		tx("t2", "2025-12-30", entity.TransactionInflow, "Vendas", "", "1000"),
		tx("t3", "2025-12-30", entity.TransactionInflow, "Vendas", entity.PlatformIFood, "1000"),
		tx("t4", "2025-12-30", entity.TransactionOutflow, "Insumos", "", "9999"),
	}

	stats := metrics.PlatformPerformance(txs)

	require.Len(t, stats, 3)
	assert.Equal(t, entity.PlatformIFood, stats[0].Platform)
	assert.Equal(t, 2, stats[0].Volume)
	assert.True(t, stats[0].Share.Equal(d("68.75")), stats[0].Share.String())
	assert.Equal(t, metrics.HealthExcellent, stats[0].Health)
	assert.Equal(t, entity.PlatformBrendi, stats[1].Platform)
	assert.Equal(t, metrics.HealthNormal, stats[1].Health)
	assert.Equal(t, entity.PlatformDirect, stats[2].Platform)
	assert.Equal(t, "Venda Direta", stats[2].Name)
}

func TestExpensesByCategory(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "2025-12-30", entity.TransactionOutflow, "Insumos", "", "100"),
		tx("b", "2025-12-30", entity.TransactionOutflow, "Aluguel", "", "300"),
		tx("c", "2025-12-30", entity.TransactionOutflow, "Insumos", "", "250"),
		tx("d", "2025-12-30", entity.TransactionInflow, "Vendas", "", "5000"),
	}

	got := metrics.ExpensesByCategory(txs)

	require.Len(t, got, 2)
	assert.Equal(t, "Insumos", got[0].Category)
	assert.True(t, got[0].Total.Equal(d("350")))
	assert.Equal(t, "Aluguel", got[1].Category)
}

func TestItemPerformance_TopCinco(t *testing.T) {
	var items []entity.MenuItem
	for i := int64(1); i <= 7; i++ {
		items = append(items, entity.MenuItem{ID: string(rune('a' + i)), Cost: d("1"), Price: d("13"), SalesVolume: i * 12})
	}

	got := metrics.ItemPerformance(items, metrics.TopItemsLimit)

	require.Len(t, got, 5)
	assert.True(t, got[0].MonthlyProfit.Equal(d("84")), got[0].MonthlyProfit.String())
	assert.EqualValues(t, 84, got[0].SalesVolume)
}

func TestBuildReport_ProfitSinPerdidas(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "2025-12-30", entity.TransactionInflow, "Vendas", "", "1000"),
		tx("b", "2025-12-29", entity.TransactionOutflow, "Insumos", "", "400"),
		tx("c", "2024-05-01", entity.TransactionInflow, "Vendas", "", "4500.5"),
	}

	rep := metrics.BuildReport(txs, nil, metrics.Range30d, ref)

	assert.True(t, rep.Revenue.Equal(d("1000")))
	assert.True(t, rep.Profit.Equal(d("600")))
	assert.True(t, rep.Margin.Equal(d("60")))
	assert.Equal(t, "2025-12-31", rep.Reference)
	assert.Equal(t, "Últimos 30 dias", rep.RangeLabel)
}
