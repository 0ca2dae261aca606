package entity

// DateLayout formato de fecha (día) usado en todos los registros.
const DateLayout = "2006-01-02"

// Unidades de medida soportadas.
const (
	UnitEach       = "un"
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
)

// ValidUnit indica si la unidad es una de las soportadas.
func ValidUnit(u string) bool {
	switch u {
	case UnitEach, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter:
		return true
	}
	return false
}
