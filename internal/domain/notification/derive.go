// Package notification deriva las alertas de una empresa a partir de sus productos y salidas.
package notification

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/pkg/currency"
)

// IDs fijos de las notificaciones que no dependen de un producto.
const (
	HighWasteID    = "high-waste-alert"
	WelcomeID      = "welcome-msg"
	lowStockPrefix = "low-stock-"
)

// Thresholds umbrales de alerta.
type Thresholds struct {
	LowStock  decimal.Decimal // cantidad <= LowStock dispara la alerta
	HighWaste decimal.Decimal // desperdicio > HighWaste dispara la alerta
}

// DefaultThresholds umbrales de fábrica: 10 unidades y 100 de moneda.
func DefaultThresholds() Thresholds {
	return Thresholds{LowStock: decimal.NewFromInt(10), HighWaste: decimal.NewFromInt(100)}
}

// LowStockID id de la alerta de stock bajo de un producto.
func LowStockID(productID string) string { return lowStockPrefix + productID }

// IsLowStock indica si el producto está en o por debajo del umbral.
func (t Thresholds) IsLowStock(p entity.Product) bool {
	return p.Quantity.LessThanOrEqual(t.LowStock)
}

// WasteCost suma el costo estimado de las salidas por desperdicio.
func WasteCost(outputs []entity.ProductOutput) decimal.Decimal {
	total := decimal.Zero
	for _, o := range outputs {
		if o.Reason == entity.OutputReasonWaste {
			total = total.Add(o.EstimatedCost)
		}
	}
	return total
}

// Derive regenera la lista completa de notificaciones. Orden: stock bajo (en el
// orden de products), desperdicio elevado y bienvenida. La bienvenida sale leída.
// Con el mismo estado de entrada el resultado solo difiere en Timestamp.
func Derive(company entity.Company, products []entity.Product, outputs []entity.ProductOutput, th Thresholds, now time.Time, currencyCode string) []entity.Notification {
	list := make([]entity.Notification, 0, len(products)+2)
	for _, p := range products {
		if !th.IsLowStock(p) {
			continue
		}
		list = append(list, entity.Notification{
			ID:        LowStockID(p.ID),
			Type:      entity.NotificationWarning,
			Title:     "Alerta de Estoque Baixo",
			Message:   fmt.Sprintf("O insumo %q está com apenas %s %s em estoque. Considere reposição em breve.", p.Name, p.Quantity.String(), p.Unit),
			Timestamp: now,
		})
	}

	if waste := WasteCost(outputs); waste.GreaterThan(th.HighWaste) {
		list = append(list, entity.Notification{
			ID:        HighWasteID,
			Type:      entity.NotificationError,
			Title:     "Desperdício Elevado",
			Message:   fmt.Sprintf("Detectamos %s em quebras recentes. Analise os processos de produção.", currency.Format(waste, currencyCode)),
			Timestamp: now,
		})
	}

	list = append(list, entity.Notification{
		ID:        WelcomeID,
		Type:      entity.NotificationInfo,
		Title:     "GIROCHEF Ativo",
		Message:   fmt.Sprintf("Monitorando %s em tempo real. Novos insights de CMV disponíveis.", company.Name),
		Timestamp: now,
		Read:      true,
	})
	return list
}

// UnreadCount cuenta las notificaciones no leídas.
func UnreadCount(list []entity.Notification) int {
	n := 0
	for _, it := range list {
		if !it.Read {
			n++
		}
	}
	return n
}
