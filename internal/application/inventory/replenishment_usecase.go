package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain/entity"
)

// ConsumptionWindowDays ventana de salidas usada para priorizar la reposición.
const ConsumptionWindowDays = 90

// ReplenishmentUseCase genera la lista de reposición de la empresa: insumos en o por
// debajo del umbral de stock bajo, con cantidad sugerida y prioridad por consumo.
type ReplenishmentUseCase struct {
	store *store.Store
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(s *store.Store) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{store: s}
}

// GenerateReplenishmentList devuelve los insumos a reponer. El stock ideal es 1,5 ×
// el umbral; la cantidad sugerida es lo que falta para llegar a él.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(companyID string) []dto.ReplenishmentSuggestionDTO {
	th := uc.store.Thresholds()
	since := uc.store.Now().AddDate(0, 0, -ConsumptionWindowDays)
	idealStock := th.LowStock.Mul(decimal.NewFromFloat(1.5))

	var (
		products []entity.Product
		outputs  []entity.ProductOutput
	)
	uc.store.View(func(st *store.State) {
		products = append(products, st.Products[companyID]...)
		outputs = append(outputs, st.Outputs[companyID]...)
	})

	consumed := map[string]decimal.Decimal{}
	wasted := map[string]decimal.Decimal{}
	for _, o := range outputs {
		d, err := time.Parse(entity.DateLayout, o.Date)
		if err != nil || d.Before(since) {
			continue
		}
		consumed[o.ProductID] = consumed[o.ProductID].Add(o.Quantity)
		if o.Reason == entity.OutputReasonWaste {
			wasted[o.ProductID] = wasted[o.ProductID].Add(o.Quantity)
		}
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if !th.IsLowStock(p) {
			continue
		}
		suggestedQty := idealStock.Sub(p.Quantity)
		if suggestedQty.IsNegative() {
			suggestedQty = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Supplier:           p.Supplier,
			Unit:               p.Unit,
			CurrentStock:       p.Quantity,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggestedQty,
			UnitCost:           p.Cost,
			EstimatedOrderCost: suggestedQty.Mul(p.Cost),
			ConsumedLast90Days: consumed[p.ID],
			WastedLast90Days:   wasted[p.ID],
		})
	}

	// Primero mayor consumo reciente; a igualdad, menor stock actual.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if !a.ConsumedLast90Days.Equal(b.ConsumedLast90Days) {
			return a.ConsumedLast90Days.GreaterThan(b.ConsumedLast90Days)
		}
		return a.CurrentStock.LessThan(b.CurrentStock)
	})

	// 1 = más urgente
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
