package menu_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/menu"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(id, cost, price string, volume int64) entity.MenuItem {
	return entity.MenuItem{ID: id, Name: id, Unit: entity.UnitEach, Cost: d(cost), Price: d(price), SalesVolume: volume}
}

func TestClassifyAll_ClassicBurgerYCheeseFries(t *testing.T) {
	items := []entity.MenuItem{
		item("m1", "12.5", "34.9", 450),
		item("m2", "8", "18", 320),
	}

	got, avg := menu.ClassifyAll(items)

	assert.True(t, avg.Margin.Equal(d("16.2")), avg.Margin.String())
	assert.True(t, avg.Volume.Equal(d("385")), avg.Volume.String())
	require.Len(t, got, 2)
	assert.Equal(t, entity.QuadrantStar, got[0].Quadrant)
	assert.Equal(t, entity.QuadrantDog, got[1].Quadrant)
}

func TestClassify_Precedencia(t *testing.T) {
	avg := menu.Averages{Margin: d("10"), Volume: d("100")}
	cases := []struct {
		name string
		it   entity.MenuItem
		want entity.Quadrant
	}{
		{"en el promedio es estrella", item("a", "0", "10", 100), entity.QuadrantStar},
		{"margen bajo volumen alto", item("b", "5", "10", 150), entity.QuadrantWorkhorse},
		{"margen alto volumen bajo", item("c", "0", "30", 10), entity.QuadrantPuzzle},
		{"ambos bajos", item("d", "9", "10", 10), entity.QuadrantDog},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, menu.Classify(tc.it, avg))
		})
	}
}

func TestClassifyAll_VaciaPromediosCero(t *testing.T) {
	got, avg := menu.ClassifyAll(nil)
	assert.Empty(t, got)
	assert.True(t, avg.Margin.IsZero())
	assert.True(t, avg.Volume.IsZero())
}

func TestClassifyAll_IndependienteDelOrden(t *testing.T) {
	items := []entity.MenuItem{
		item("a", "3", "20", 50),
		item("b", "10", "12", 400),
		item("c", "1", "40", 10),
	}
	reversed := []entity.MenuItem{items[2], items[1], items[0]}

	first, _ := menu.ClassifyAll(items)
	second, _ := menu.ClassifyAll(reversed)

	byID := map[string]entity.Quadrant{}
	for _, c := range first {
		byID[c.Item.ID] = c.Quadrant
	}
	for _, c := range second {
		assert.Equal(t, byID[c.Item.ID], c.Quadrant, c.Item.ID)
	}
}

func TestClassifyAll_AltaDePlatoReclasificaOtros(t *testing.T) {
	items := []entity.MenuItem{item("a", "0", "10", 100), item("b", "0", "5", 50)}
	before, _ := menu.ClassifyAll(items)
	assert.Equal(t, entity.QuadrantStar, before[0].Quadrant)

	items = append(items, item("c", "0", "100", 1000))
	after, _ := menu.ClassifyAll(items)
	assert.Equal(t, entity.QuadrantDog, after[0].Quadrant)
}

func TestRollUpCost(t *testing.T) {
	ings := []entity.Ingredient{{ID: "i1", Cost: d("4.5")}, {ID: "i2", Cost: d("1.25")}}
	assert.True(t, menu.RollUpCost(d("99"), ings).Equal(d("5.75")))
	assert.True(t, menu.RollUpCost(d("5.75"), nil).Equal(d("5.75")), "lista vacía conserva el último costo")
}
