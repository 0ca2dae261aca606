// Package analytics contiene los casos de uso del panel principal, los reportes
// por ventana de tiempo y la foto del estado que consume el asesor IA.
package analytics

import (
	"fmt"
	"time"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/menu"
	"github.com/girochef/girochef-api/internal/domain/metrics"
	"github.com/girochef/girochef-api/internal/domain/notification"
	"github.com/girochef/girochef-api/pkg/currency"
)

const (
	dashboardTopItems      = 5 // platos en el widget del panel
	dashboardRecentOutputs = 5 // últimas salidas en el panel
)

// DashboardUseCase genera el resumen de la empresa a partir del almacén.
type DashboardUseCase struct {
	store *store.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(s *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: s}
}

// companyData copia de las colecciones de una empresa tomada bajo un único View.
type companyData struct {
	company   entity.Company
	txs       []entity.Transaction
	items     []entity.MenuItem
	products  []entity.Product
	outputs   []entity.ProductOutput
	suppliers int
}

func (uc *DashboardUseCase) load(companyID string) (companyData, error) {
	var (
		d  companyData
		ok bool
	)
	uc.store.View(func(st *store.State) {
		d.company, ok = st.Company(companyID)
		if !ok {
			return
		}
		d.txs = append(d.txs, st.Transactions[companyID]...)
		d.items = append(d.items, st.MenuItems[companyID]...)
		d.products = append(d.products, st.Products[companyID]...)
		d.outputs = append(d.outputs, st.Outputs[companyID]...)
		d.suppliers = len(st.Suppliers[companyID])
	})
	if !ok {
		return d, fmt.Errorf("dashboard: empresa %s: %w", companyID, domain.ErrNotFound)
	}
	return d, nil
}

// GetSummary construye el DashboardSummaryDTO: ingresos, gastos, pérdidas de stock,
// lucro y margen sobre todo el historial, más los widgets de stock bajo, últimas
// salidas y platos con mayor ganancia.
func (uc *DashboardUseCase) GetSummary(companyID string) (*dto.DashboardSummaryDTO, error) {
	d, err := uc.load(companyID)
	if err != nil {
		return nil, err
	}
	th := uc.store.Thresholds()
	code := uc.store.Currency()

	stats := metrics.Summarize(d.txs, d.outputs)

	lowStock := make([]entity.Product, 0)
	for _, p := range d.products {
		if th.IsLowStock(p) {
			lowStock = append(lowStock, p)
		}
	}
	recent := d.outputs
	if len(recent) > dashboardRecentOutputs {
		recent = recent[:dashboardRecentOutputs]
	}

	// Las etiquetas guardadas pueden estar desactualizadas: se reclasifica el menú completo.
	classified, _ := menu.ClassifyAll(d.items)
	items := make([]entity.MenuItem, 0, len(classified))
	for _, c := range classified {
		it := c.Item
		it.Category = c.Quadrant
		items = append(items, it)
	}

	return &dto.DashboardSummaryDTO{
		Company:       d.company,
		Stats:         stats,
		LowStock:      lowStock,
		RecentOutputs: append([]entity.ProductOutput{}, recent...),
		TopItems:      metrics.ItemPerformance(items, dashboardTopItems),
		UnreadAlerts:  notification.UnreadCount(uc.store.Notifications(companyID)),
		ProductCount:  len(d.products),
		MenuItemCount: len(d.items),
		SupplierCount: d.suppliers,
		FormattedStats: map[string]string{
			"revenue":    currency.Format(stats.Revenue, code),
			"expenses":   currency.Format(stats.Expenses, code),
			"stock_loss": currency.Format(stats.StockLoss, code),
			"profit":     currency.Format(stats.Profit, code),
			"margin":     stats.Margin.StringFixed(1) + "%",
		},
		DateLabel: monthLabel(uc.store.Now()),
	}, nil
}

// GetReport arma el reporte de la ventana r (7d, 15d, 30d, 90d o year) con la
// fecha actual como referencia.
func (uc *DashboardUseCase) GetReport(companyID string, r metrics.TimeRange) (*dto.ReportDTO, error) {
	d, err := uc.load(companyID)
	if err != nil {
		return nil, err
	}
	code := uc.store.Currency()
	rep := metrics.BuildReport(d.txs, d.items, r, uc.store.Now())
	return &dto.ReportDTO{
		Report: rep,
		Formatted: map[string]string{
			"revenue":  currency.Format(rep.Revenue, code),
			"expenses": currency.Format(rep.Expenses, code),
			"profit":   currency.Format(rep.Profit, code),
			"margin":   rep.Margin.StringFixed(1) + "%",
		},
	}, nil
}

// Snapshot devuelve la foto del estado de la empresa: empresa, indicadores, menú,
// insumos y salidas.
func (uc *DashboardUseCase) Snapshot(companyID string) (*dto.SnapshotDTO, error) {
	d, err := uc.load(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.SnapshotDTO{
		Company:  d.company,
		Stats:    metrics.Summarize(d.txs, d.outputs),
		Menu:     d.items,
		Products: d.products,
		Outputs:  d.outputs,
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Dezembro 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
