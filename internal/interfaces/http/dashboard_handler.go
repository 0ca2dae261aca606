package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/girochef/girochef-api/internal/application/analytics"
	"github.com/girochef/girochef-api/internal/application/export"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/metrics"
)

// DashboardHandler maneja el panel principal y los reportes por ventana.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	export *export.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, exp *export.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, export: exp}
}

// GetSummary devuelve el resumen de la empresa.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (stats de caja con pérdida de stock, insumos en stock
// bajo, últimas salidas, top 5 platos, alertas sin leer y date_label del mes actual).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

func parseRange(c *fiber.Ctx) (metrics.TimeRange, error) {
	r, err := metrics.ParseTimeRange(c.Query("range"))
	if err != nil {
		return "", domain.InvalidInput("%s", err.Error())
	}
	return r, nil
}

// GetReport godoc
// @Summary      Reporte por ventana de tiempo
// @Description  Ingresos, gastos, lucro y margen (sin pérdidas de stock), gastos por categoría,
//               desempeño por canal y ranking de platos.
// @Tags         reports
// @Produce      json
// @Param        range  query  string  false  "7d | 15d | 30d | 90d | year"  default(30d)
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	r, err := parseRange(c)
	if err != nil {
		return writeError(c, err)
	}
	rep, err := h.uc.GetReport(GetCompanyID(c), r)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rep)
}

// GetReportPDF GET /api/reports/pdf?range=
func (h *DashboardHandler) GetReportPDF(c *fiber.Ctx) error {
	r, err := parseRange(c)
	if err != nil {
		return writeError(c, err)
	}
	file, err := h.export.ReportPDF(c.UserContext(), GetCompanyID(c), r)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file.Name, file.ContentType, file.Data)
}
