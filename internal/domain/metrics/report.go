package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

// TimeRange ventana de los reportes.
type TimeRange string

const (
	Range7d   TimeRange = "7d"
	Range15d  TimeRange = "15d"
	Range30d  TimeRange = "30d"
	Range90d  TimeRange = "90d"
	RangeYear TimeRange = "year"
)

// ParseTimeRange valida la ventana; vacío equivale a 30d.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case "":
		return Range30d, nil
	case Range7d, Range15d, Range30d, Range90d, RangeYear:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("rango inválido: %q", s)
}

// Label nombre mostrado del rango.
func (r TimeRange) Label(ref time.Time) string {
	switch r {
	case Range7d:
		return "Últimos 7 dias"
	case Range15d:
		return "Últimos 15 dias"
	case Range30d:
		return "Últimos 30 dias"
	case Range90d:
		return "Últimos 90 dias"
	case RangeYear:
		return fmt.Sprintf("Este Ano (%d)", ref.Year())
	}
	return string(r)
}

func (r TimeRange) days() int {
	switch r {
	case Range7d:
		return 7
	case Range15d:
		return 15
	case Range90d:
		return 90
	default:
		return 30
	}
}

// Contains indica si la fecha cae en la ventana respecto de ref. La distancia en días
// es |ref − date| redondeada hacia arriba, así que fechas futuras cercanas también cuentan.
func (r TimeRange) Contains(ref, date time.Time) bool {
	if r == RangeYear {
		return date.Year() == ref.Year()
	}
	diff := ref.Sub(date)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	return days <= r.days()
}

// FilterByRange filtra transacciones por ventana. Fechas ilegibles quedan fuera.
func FilterByRange(txs []entity.Transaction, r TimeRange, ref time.Time) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txs))
	for _, t := range txs {
		date, err := time.Parse(entity.DateLayout, t.Date)
		if err != nil {
			continue
		}
		if r.Contains(ref, date) {
			out = append(out, t)
		}
	}
	return out
}

// CategoryTotal total de gastos de una categoría.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpensesByCategory agrupa las salidas de caja por categoría, de mayor a menor.
func ExpensesByCategory(txs []entity.Transaction) []CategoryTotal {
	idx := map[string]int{}
	var out []CategoryTotal
	for _, t := range txs {
		if t.Type != entity.TransactionOutflow {
			continue
		}
		i, ok := idx[t.Category]
		if !ok {
			i = len(out)
			idx[t.Category] = i
			out = append(out, CategoryTotal{Category: t.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(t.Amount)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Total.GreaterThan(out[b].Total) })
	return out
}

// Salud de un canal de venta según su participación.
const (
	HealthExcellent = "excellent"
	HealthNormal    = "normal"
)

var excellentShare = decimal.NewFromInt(40)

// PlatformStat desempeño de un canal de venta.
type PlatformStat struct {
	Platform string          `json:"platform"`
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
	Volume   int             `json:"volume"`
	Share    decimal.Decimal `json:"share"` // porcentaje sobre el ingreso total
	Health   string          `json:"health"`
}

// PlatformName nombre mostrado del canal.
func PlatformName(platform string) string {
	switch platform {
	case entity.PlatformIFood:
		return "iFood Marketplace"
	case entity.PlatformBrendi:
		return "brendi (App Próprio)"
	default:
		return "Venda Direta"
	}
}

// PlatformPerformance agrupa las entradas por canal (sin canal = venta directa),
// ordenado por ingreso descendente.
func PlatformPerformance(txs []entity.Transaction) []PlatformStat {
	total := Revenue(txs)
	idx := map[string]int{}
	var out []PlatformStat
	for _, t := range txs {
		if t.Type != entity.TransactionInflow {
			continue
		}
		key := t.Platform
		if key == "" {
			key = entity.PlatformDirect
		}
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, PlatformStat{Platform: key, Name: PlatformName(key), Revenue: decimal.Zero})
		}
		out[i].Revenue = out[i].Revenue.Add(t.Amount)
		out[i].Volume++
	}
	for i := range out {
		out[i].Share = Percent(out[i].Revenue, total)
		out[i].Health = HealthNormal
		if out[i].Share.GreaterThan(excellentShare) {
			out[i].Health = HealthExcellent
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Revenue.GreaterThan(out[b].Revenue) })
	return out
}

// ItemStat desempeño mensual estimado de un plato.
type ItemStat struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	SalesVolume   int64           `json:"sales_volume"`
	Revenue       decimal.Decimal `json:"revenue"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"` // margen × volumen / 12
	Category      entity.Quadrant `json:"category"`
}

var months = decimal.NewFromInt(12)

// ItemPerformance devuelve los limit platos con mayor ganancia mensual estimada.
// limit <= 0 devuelve todos.
func ItemPerformance(items []entity.MenuItem, limit int) []ItemStat {
	out := make([]ItemStat, 0, len(items))
	for _, it := range items {
		vol := decimal.NewFromInt(it.SalesVolume)
		out = append(out, ItemStat{
			ID:            it.ID,
			Name:          it.Name,
			Margin:        it.Margin(),
			MarginPercent: it.MarginPercent(),
			SalesVolume:   it.SalesVolume,
			Revenue:       it.Price.Mul(vol),
			MonthlyProfit: it.Margin().Mul(vol).Div(months),
			Category:      it.Category,
		})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].MonthlyProfit.GreaterThan(out[b].MonthlyProfit) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Report resultado de un reporte por ventana. Profit no descuenta pérdidas de stock.
type Report struct {
	Range      TimeRange       `json:"range"`
	RangeLabel string          `json:"range_label"`
	Reference  string          `json:"reference_date"`
	Revenue    decimal.Decimal `json:"revenue"`
	Expenses   decimal.Decimal `json:"expenses"`
	Profit     decimal.Decimal `json:"profit"`
	Margin     decimal.Decimal `json:"margin"`
	ByCategory []CategoryTotal `json:"expenses_by_category"`
	Platforms  []PlatformStat  `json:"platforms"`
	TopItems   []ItemStat      `json:"top_items"`
}

// TopItemsLimit cantidad de platos en el ranking del reporte.
const TopItemsLimit = 5

// BuildReport arma el reporte de la ventana r respecto de ref.
func BuildReport(txs []entity.Transaction, items []entity.MenuItem, r TimeRange, ref time.Time) Report {
	filtered := FilterByRange(txs, r, ref)
	rev := Revenue(filtered)
	exp := Expenses(filtered)
	profit := rev.Sub(exp)
	return Report{
		Range:      r,
		RangeLabel: r.Label(ref),
		Reference:  ref.Format(entity.DateLayout),
		Revenue:    rev,
		Expenses:   exp,
		Profit:     profit,
		Margin:     Percent(profit, rev),
		ByCategory: ExpensesByCategory(filtered),
		Platforms:  PlatformPerformance(filtered),
		TopItems:   ItemPerformance(items, TopItemsLimit),
	}
}
