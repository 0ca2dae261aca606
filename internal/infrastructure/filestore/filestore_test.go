package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/infrastructure/filestore"
)

func TestKVStore_EscribeUnArchivoPorClave(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := filestore.NewKVStore(dir)
	require.NoError(t, err)

	_, found, err := s.Get(ctx, "girochef_suppliers")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "girochef_suppliers", []byte(`{"1":[]}`)))
	require.NoError(t, s.Set(ctx, "girochef_suppliers", []byte(`{"2":[]}`)))

	got, found, err := s.Get(ctx, "girochef_suppliers")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"2":[]}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no deben quedar temporales")
	assert.Equal(t, "girochef_suppliers.json", entries[0].Name())
}

func TestKVStore_ClaveInvalida(t *testing.T) {
	s, err := filestore.NewKVStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, s.Set(context.Background(), "../escape", []byte("{}")))
}

func TestStockMovementRepo_AppendYLista(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	r, err := filestore.NewStockMovementRepository(dir)
	require.NoError(t, err)

	list, err := r.ListByProduct(ctx, "1", "p1", 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, kind := range []string{entity.MovementRegister, entity.MovementEditReconcile, entity.MovementDeleteRestore} {
		require.NoError(t, r.Create(ctx, &entity.StockMovement{
			CompanyID: "1", ProductID: "p1", OutputID: "o1", Kind: kind, Delta: decimal.NewFromInt(1),
		}))
	}
	require.NoError(t, r.Create(ctx, &entity.StockMovement{CompanyID: "1", ProductID: "p2", Kind: entity.MovementRegister}))

	list, err = r.ListByProduct(ctx, "1", "p1", 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, entity.MovementDeleteRestore, list[0].Kind)
	assert.NotEmpty(t, list[0].ID)

	_, err = os.Stat(filepath.Join(dir, "stock_movements.jsonl"))
	assert.NoError(t, err)
}
