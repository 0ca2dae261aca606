package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/girochef/girochef-api/internal/domain"
)

func TestWrapExecError(t *testing.T) {
	err := wrapExecError("insert movement", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "insert movement")

	err = wrapExecError("insert movement", &pgconn.PgError{Code: "23503"})
	assert.NotErrorIs(t, err, domain.ErrDuplicate)

	timeout := errors.New("timeout")
	assert.ErrorIs(t, wrapExecError("set", timeout), timeout)
}
