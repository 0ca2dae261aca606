package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/girochef/girochef-api/internal/domain"
)

const uniqueViolation = "23505"

// wrapExecError traduce el error de una escritura: clave repetida → domain.ErrDuplicate,
// cualquier otro se envuelve con la operación.
func wrapExecError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
