package entity

import "github.com/shopspring/decimal"

// Quadrant cuadrante de la matriz BCG de ingeniería de menú.
type Quadrant string

const (
	QuadrantStar      Quadrant = "star"      // Estrela
	QuadrantWorkhorse Quadrant = "workhorse" // Burro de Carga
	QuadrantPuzzle    Quadrant = "puzzle"    // Quebra-cabeça
	QuadrantDog       Quadrant = "dog"       // Cão
)

// Label nombre mostrado del cuadrante.
func (q Quadrant) Label() string {
	switch q {
	case QuadrantStar:
		return "Estrela"
	case QuadrantWorkhorse:
		return "Burro de Carga"
	case QuadrantPuzzle:
		return "Quebra-cabeça"
	case QuadrantDog:
		return "Cão"
	}
	return string(q)
}

// Ingredient componente de un plato; pertenece a un único MenuItem.
type Ingredient struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Cost     decimal.Decimal `json:"cost"`
}

// MenuItem plato del menú. Category guarda la última clasificación calculada al guardar;
// la clasificación vigente siempre se recalcula sobre el conjunto completo.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	SalesVolume int64           `json:"sales_volume"`
	Category    Quadrant        `json:"category"`
	Ingredients []Ingredient    `json:"ingredients,omitempty"`
}

// Margin contribución unitaria (precio − costo).
func (m MenuItem) Margin() decimal.Decimal {
	return m.Price.Sub(m.Cost)
}

// MarginPercent margen sobre el precio en porcentaje; 0 si el precio es 0.
func (m MenuItem) MarginPercent() decimal.Decimal {
	if m.Price.IsZero() {
		return decimal.Zero
	}
	return m.Margin().Div(m.Price).Mul(decimal.NewFromInt(100))
}
