// Package menu implementa la ingeniería de menú: clasificación BCG y costo por ingredientes.
package menu

import (
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

// Averages promedios del conjunto completo de platos de una empresa.
type Averages struct {
	Margin decimal.Decimal `json:"avg_margin"`
	Volume decimal.Decimal `json:"avg_volume"`
}

// ComputeAverages calcula margen y volumen promedio. Con lista vacía ambos son 0.
func ComputeAverages(items []entity.MenuItem) Averages {
	if len(items) == 0 {
		return Averages{Margin: decimal.Zero, Volume: decimal.Zero}
	}
	margin, volume := decimal.Zero, decimal.Zero
	for _, it := range items {
		margin = margin.Add(it.Margin())
		volume = volume.Add(decimal.NewFromInt(it.SalesVolume))
	}
	n := decimal.NewFromInt(int64(len(items)))
	return Averages{Margin: margin.Div(n), Volume: volume.Div(n)}
}

// Classify asigna el cuadrante de un plato respecto de los promedios.
// Precedencia: Star, Workhorse, Puzzle, Dog.
func Classify(item entity.MenuItem, avg Averages) entity.Quadrant {
	highMargin := item.Margin().GreaterThanOrEqual(avg.Margin)
	highVolume := decimal.NewFromInt(item.SalesVolume).GreaterThanOrEqual(avg.Volume)
	switch {
	case highMargin && highVolume:
		return entity.QuadrantStar
	case !highMargin && highVolume:
		return entity.QuadrantWorkhorse
	case highMargin && !highVolume:
		return entity.QuadrantPuzzle
	default:
		return entity.QuadrantDog
	}
}

// Classified plato con su cuadrante vigente.
type Classified struct {
	Item     entity.MenuItem
	Quadrant entity.Quadrant
}

// ClassifyAll recalcula desde cero la clasificación de todos los platos.
// El resultado depende solo del contenido actual de items, no del orden.
func ClassifyAll(items []entity.MenuItem) ([]Classified, Averages) {
	avg := ComputeAverages(items)
	out := make([]Classified, 0, len(items))
	for _, it := range items {
		out = append(out, Classified{Item: it, Quadrant: Classify(it, avg)})
	}
	return out, avg
}

// RollUpCost devuelve el costo del plato: suma de costos de ingredientes si hay
// alguno; con la lista vacía conserva el costo actual.
func RollUpCost(current decimal.Decimal, ingredients []entity.Ingredient) decimal.Decimal {
	if len(ingredients) == 0 {
		return current
	}
	total := decimal.Zero
	for _, ing := range ingredients {
		total = total.Add(ing.Cost)
	}
	return total
}
