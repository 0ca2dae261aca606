package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
)

func newID() string { return uuid.New().String() }

func invalid(format string, args ...any) error {
	return domain.InvalidInput(format, args...)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s es obligatorio", field)
	}
	return nil
}

func requireDecimal(field string, value *decimal.Decimal) error {
	if value == nil {
		return invalid("%s es obligatorio", field)
	}
	return nil
}

// normalizeDate valida una fecha YYYY-MM-DD; vacía usa el día de now.
func normalizeDate(field, value string, now time.Time) (string, error) {
	if strings.TrimSpace(value) == "" {
		return now.Format(entity.DateLayout), nil
	}
	if _, err := time.Parse(entity.DateLayout, value); err != nil {
		return "", invalid("%s debe tener formato AAAA-MM-DD", field)
	}
	return value, nil
}

func normalizeUnit(value, def string) (string, error) {
	if value == "" {
		return def, nil
	}
	if !entity.ValidUnit(value) {
		return "", invalid("unidad inválida: %q", value)
	}
	return value, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
