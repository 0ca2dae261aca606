package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("AI_PROVIDER", "gemini")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "girochef_", cfg.Store.KeyPrefix)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "10", cfg.Alerts.LowStockThreshold)
	assert.Equal(t, "100", cfg.Alerts.HighWasteThreshold)
	assert.Equal(t, "BRL", cfg.App.Currency)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AI_TIMEOUT_SECONDS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, config.AIProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("AI_PROVIDER", "gemini")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "girochef", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/girochef?sslmode=disable", c.ConnectionString())
}
