package backend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/infrastructure/backend"
	"github.com/girochef/girochef-api/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	b, err := backend.Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}})
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.KV.Set(context.Background(), "k", []byte(`[]`)))
	v, ok, err := b.KV.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))
}

func TestOpen_FileCreaDirectorio(t *testing.T) {
	dir := t.TempDir() + "/data"
	b, err := backend.Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverFile, Dir: dir}})
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.KV.Set(context.Background(), "girochef_companies", []byte(`[]`)))
	_, ok, err := b.KV.Get(context.Background(), "girochef_companies")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := backend.Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "redis"}})
	assert.Error(t, err)
}
