package dto

import (
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/metrics"
)

// DashboardSummaryDTO panel principal de la empresa activa.
type DashboardSummaryDTO struct {
	Company        entity.Company         `json:"company"`
	Stats          metrics.Summary        `json:"stats"`
	LowStock       []entity.Product       `json:"low_stock"`
	RecentOutputs  []entity.ProductOutput `json:"recent_outputs"`
	TopItems       []metrics.ItemStat     `json:"top_items"`
	UnreadAlerts   int                    `json:"unread_alerts"`
	ProductCount   int                    `json:"product_count"`
	MenuItemCount  int                    `json:"menu_item_count"`
	SupplierCount  int                    `json:"supplier_count"`
	FormattedStats map[string]string      `json:"formatted_stats"`
	DateLabel      string                 `json:"date_label"`
}

// NotificationListDTO notificaciones con el conteo de no leídas.
type NotificationListDTO struct {
	Items  []entity.Notification `json:"items"`
	Unread int                   `json:"unread"`
}

// ReportDTO reporte por ventana con los montos ya formateados en la moneda configurada.
type ReportDTO struct {
	metrics.Report
	Formatted map[string]string `json:"formatted"`
}

// SnapshotDTO estado de la empresa que se envía como contexto al asesor IA.
type SnapshotDTO struct {
	Company  entity.Company         `json:"company"`
	Stats    metrics.Summary        `json:"stats"`
	Menu     []entity.MenuItem      `json:"menu"`
	Products []entity.Product       `json:"products"`
	Outputs  []entity.ProductOutput `json:"outputs"`
}
