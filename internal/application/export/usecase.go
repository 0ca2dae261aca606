package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/girochef/girochef-api/internal/application/analytics"
	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/application/usecase"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/metrics"
	"github.com/girochef/girochef-api/pkg/currency"
	"github.com/girochef/girochef-api/pkg/logger"
	"github.com/girochef/girochef-api/pkg/slug"
)

// Formatos de exportación del flujo de caja.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

const filePrefix = "GIROCHEF_"

// UseCase orquesta las exportaciones: toma los datos de los casos de uso de lectura,
// arma el Document y delega el formato binario en los renderizadores.
type UseCase struct {
	store        *store.Store
	transactions *usecase.TransactionUseCase
	shopping     *usecase.ShoppingUseCase
	dashboard    *analytics.DashboardUseCase
	pdf          Renderer
	xlsx         Renderer
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(
	s *store.Store,
	transactions *usecase.TransactionUseCase,
	shopping *usecase.ShoppingUseCase,
	dashboard *analytics.DashboardUseCase,
	pdf, xlsx Renderer,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		store:        s,
		transactions: transactions,
		shopping:     shopping,
		dashboard:    dashboard,
		pdf:          pdf,
		xlsx:         xlsx,
		log:          log.Named("export"),
	}
}

func (uc *UseCase) company(companyID string) (entity.Company, error) {
	var (
		c  entity.Company
		ok bool
	)
	uc.store.View(func(st *store.State) { c, ok = st.Company(companyID) })
	if !ok {
		return c, fmt.Errorf("empresa %s: %w", companyID, domain.ErrNotFound)
	}
	return c, nil
}

func (uc *UseCase) done(companyID string, f *File) *File {
	uc.log.Debug().Str("company_id", companyID).Str("file", f.Name).Int("bytes", len(f.Data)).Msg("exportação gerada")
	return f
}

// CashFlow exporta las transacciones filtradas en csv, xlsx o pdf.
func (uc *UseCase) CashFlow(ctx context.Context, companyID, format string, f dto.TransactionFilter) (*File, error) {
	c, err := uc.company(companyID)
	if err != nil {
		return nil, err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	txs := uc.transactions.List(companyID, f)
	base := filePrefix + "Fluxo_de_Caixa_" + slug.Make(c.Name)

	switch format {
	case FormatCSV:
		data, err := CashFlowCSV(txs)
		if err != nil {
			return nil, fmt.Errorf("export: csv: %w", err)
		}
		return uc.done(companyID, &File{Name: base + ".csv", ContentType: ContentTypeCSV, Data: data}), nil
	case FormatXLSX:
		data, err := uc.xlsx.Render(ctx, uc.cashFlowDocument(c, txs))
		if err != nil {
			return nil, fmt.Errorf("export: xlsx: %w", err)
		}
		return uc.done(companyID, &File{Name: base + ".xlsx", ContentType: ContentTypeXLSX, Data: data}), nil
	case FormatPDF:
		data, err := uc.pdf.Render(ctx, uc.cashFlowDocument(c, txs))
		if err != nil {
			return nil, fmt.Errorf("export: pdf: %w", err)
		}
		return uc.done(companyID, &File{Name: base + ".pdf", ContentType: ContentTypePDF, Data: data}), nil
	}
	return nil, domain.InvalidInput("formato de exportação inválido: %q (csv, xlsx ou pdf)", format)
}

// cashFlowHeader columnas del flujo de caja, compartidas por CSV y planilla.
var cashFlowHeader = []string{"Data", "Descrição", "Categoria", "Tipo", "Plataforma", "Valor"}

func typeLabel(t string) string {
	if t == entity.TransactionInflow {
		return "Entrada"
	}
	return "Saída"
}

func platformLabel(p string) string {
	if p == "" {
		return metrics.PlatformName(entity.PlatformDirect)
	}
	return metrics.PlatformName(p)
}

// CashFlowCSV serializa las transacciones con separador coma y montos con punto decimal.
func CashFlowCSV(txs []entity.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(cashFlowHeader); err != nil {
		return nil, err
	}
	for _, t := range txs {
		rec := []string{t.Date, t.Description, t.Category, typeLabel(t.Type), platformLabel(t.Platform), t.Amount.StringFixed(2)}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (uc *UseCase) cashFlowDocument(c entity.Company, txs []entity.Transaction) Document {
	code := uc.store.Currency()
	cols := []Column{
		{Header: cashFlowHeader[0], Width: 2},
		{Header: cashFlowHeader[1], Width: 3},
		{Header: cashFlowHeader[2], Width: 2},
		{Header: cashFlowHeader[3], Width: 1},
		{Header: cashFlowHeader[4], Width: 2},
		{Header: cashFlowHeader[5], Width: 2, Numeric: true},
	}
	rows := make([][]Cell, 0, len(txs))
	for _, t := range txs {
		amount, _ := t.Amount.Float64()
		rows = append(rows, []Cell{
			textCell(t.Date),
			textCell(t.Description),
			textCell(t.Category),
			textCell(typeLabel(t.Type)),
			textCell(platformLabel(t.Platform)),
			{Text: currency.Format(t.Amount, code), Value: amount},
		})
	}
	rev := metrics.Revenue(txs)
	exp := metrics.Expenses(txs)
	return Document{
		Title:       "Fluxo de Caixa",
		Subtitle:    fmt.Sprintf("%d lançamentos", len(txs)),
		Company:     c.Name,
		GeneratedAt: uc.store.Now(),
		Tables:      []Table{{Title: "Lançamentos", Columns: cols, Rows: rows}},
		Totals: []Total{
			{Label: "Entradas", Value: currency.Format(rev, code)},
			{Label: "Saídas", Value: currency.Format(exp, code)},
			{Label: "Saldo", Value: currency.Format(rev.Sub(exp), code), Highlight: true},
		},
	}
}

// ReportPDF exporta el reporte de la ventana r.
func (uc *UseCase) ReportPDF(ctx context.Context, companyID string, r metrics.TimeRange) (*File, error) {
	c, err := uc.company(companyID)
	if err != nil {
		return nil, err
	}
	rep, err := uc.dashboard.GetReport(companyID, r)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.Render(ctx, uc.reportDocument(c, rep))
	if err != nil {
		return nil, fmt.Errorf("export: relatório: %w", err)
	}
	name := filePrefix + "Relatorio_Completo_" + slug.Make(c.Name) + ".pdf"
	return uc.done(companyID, &File{Name: name, ContentType: ContentTypePDF, Data: data}), nil
}

func (uc *UseCase) reportDocument(c entity.Company, rep *dto.ReportDTO) Document {
	code := uc.store.Currency()
	cats := Table{
		Title:   "Gastos por Categoria",
		Columns: []Column{{Header: "Categoria", Width: 8}, {Header: "Total", Width: 4, Numeric: true}},
	}
	for _, ct := range rep.ByCategory {
		cats.Rows = append(cats.Rows, []Cell{textCell(ct.Category), textCell(currency.Format(ct.Total, code))})
	}
	plats := Table{
		Title: "Desempenho por Canal",
		Columns: []Column{
			{Header: "Canal", Width: 5},
			{Header: "Receita", Width: 3, Numeric: true},
			{Header: "Pedidos", Width: 2, Numeric: true},
			{Header: "Participação", Width: 2, Numeric: true},
		},
	}
	for _, p := range rep.Platforms {
		plats.Rows = append(plats.Rows, []Cell{
			textCell(p.Name),
			textCell(currency.Format(p.Revenue, code)),
			textCell(fmt.Sprintf("%d", p.Volume)),
			textCell(p.Share.StringFixed(1) + "%"),
		})
	}
	items := Table{
		Title: "Análise de Mix de Produtos",
		Columns: []Column{
			{Header: "Prato", Width: 4},
			{Header: "Margem", Width: 2, Numeric: true},
			{Header: "Margem %", Width: 2, Numeric: true},
			{Header: "Volume", Width: 2, Numeric: true},
			{Header: "Receita", Width: 2, Numeric: true},
		},
	}
	for _, it := range rep.TopItems {
		items.Rows = append(items.Rows, []Cell{
			textCell(it.Name),
			textCell(currency.Format(it.Margin, code)),
			textCell(it.MarginPercent.StringFixed(1) + "%"),
			textCell(fmt.Sprintf("%d", it.SalesVolume)),
			textCell(currency.Format(it.Revenue, code)),
		})
	}
	return Document{
		Title:       "Relatório Completo",
		Subtitle:    rep.RangeLabel,
		Company:     c.Name,
		GeneratedAt: uc.store.Now(),
		Tables:      []Table{cats, plats, items},
		Totals: []Total{
			{Label: "Receita", Value: rep.Formatted["revenue"]},
			{Label: "Despesas", Value: rep.Formatted["expenses"]},
			{Label: "Margem", Value: rep.Formatted["margin"]},
			{Label: "Lucro", Value: rep.Formatted["profit"], Highlight: true},
		},
	}
}

// ShoppingListPDF exporta una lista de compras.
func (uc *UseCase) ShoppingListPDF(ctx context.Context, companyID, listID string) (*File, error) {
	c, err := uc.company(companyID)
	if err != nil {
		return nil, err
	}
	l := uc.shopping.Get(companyID, listID)
	if l == nil {
		return nil, fmt.Errorf("lista %s: %w", listID, domain.ErrNotFound)
	}
	data, err := uc.pdf.Render(ctx, uc.shoppingDocument(c, *l))
	if err != nil {
		return nil, fmt.Errorf("export: lista de compras: %w", err)
	}
	return uc.done(companyID, &File{Name: ShoppingListFilename(*l), ContentType: ContentTypePDF, Data: data}), nil
}

// ShoppingListFilename nombre del PDF de una lista, ej: "GIROCHEF_Lista_feira_de_sabado.pdf".
func ShoppingListFilename(l entity.ManualShoppingList) string {
	return filePrefix + "Lista_" + slug.Make(l.Name) + ".pdf"
}

func (uc *UseCase) shoppingDocument(c entity.Company, l entity.ManualShoppingList) Document {
	code := uc.store.Currency()
	t := Table{
		Columns: []Column{
			{Header: "Item / Insumo", Width: 4},
			{Header: "Fornecedor", Width: 3},
			{Header: "Quantidade", Width: 1, Numeric: true},
			{Header: "Custo Unit.", Width: 2, Numeric: true},
			{Header: "Total", Width: 2, Numeric: true},
		},
	}
	for _, it := range l.Items {
		t.Rows = append(t.Rows, []Cell{
			textCell(it.Name),
			textCell(it.Supplier),
			textCell(it.Quantity.String() + " " + strings.ToUpper(it.Unit)),
			textCell(currency.Format(it.EstimatedCost, code)),
			textCell(currency.Format(it.Subtotal(), code)),
		})
	}
	return Document{
		Title:       "Lista de Compras Diária",
		Subtitle:    strings.ToUpper(l.Name),
		Company:     c.Name,
		GeneratedAt: uc.store.Now(),
		Tables:      []Table{t},
		Totals:      []Total{{Label: "Investimento Total Estimado", Value: currency.Format(l.TotalCost, code), Highlight: true}},
		Footer:      "Este documento é um planejamento de suprimentos gerado automaticamente pela plataforma.",
	}
}

// Share arma el texto y el enlace de WhatsApp de una lista de compras.
func (uc *UseCase) Share(companyID, listID string) (*dto.ShareResponse, error) {
	if _, err := uc.company(companyID); err != nil {
		return nil, err
	}
	l := uc.shopping.Get(companyID, listID)
	if l == nil {
		return nil, fmt.Errorf("lista %s: %w", listID, domain.ErrNotFound)
	}
	text := ShareText(*l, uc.store.Currency())
	return &dto.ShareResponse{URL: ShareURL(text), Text: text}, nil
}
