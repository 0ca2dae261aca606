// Package backend abre el almacén clave-valor y el diario de movimientos según STORE_DRIVER.
package backend

import (
	"context"
	"fmt"

	"github.com/girochef/girochef-api/internal/domain/repository"
	"github.com/girochef/girochef-api/internal/infrastructure/filestore"
	"github.com/girochef/girochef-api/internal/infrastructure/memory"
	"github.com/girochef/girochef-api/internal/infrastructure/postgres"
	"github.com/girochef/girochef-api/pkg/config"
)

// Backend persistencia elegida. Close libera la conexión (no-op en file y memory).
type Backend struct {
	KV        repository.KVStore
	Movements repository.StockMovementRepository
	Close     func()
}

// Open construye el backend del driver configurado. Con postgres crea el esquema si falta.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("crear esquema: %w", err)
		}
		return &Backend{
			KV:        postgres.NewKVStore(pool),
			Movements: postgres.NewStockMovementRepository(pool),
			Close:     pool.Close,
		}, nil
	case config.StoreDriverFile:
		kv, err := filestore.NewKVStore(cfg.Store.Dir)
		if err != nil {
			return nil, fmt.Errorf("abrir almacén en %s: %w", cfg.Store.Dir, err)
		}
		movements, err := filestore.NewStockMovementRepository(cfg.Store.Dir)
		if err != nil {
			return nil, fmt.Errorf("abrir diario de movimientos en %s: %w", cfg.Store.Dir, err)
		}
		return &Backend{KV: kv, Movements: movements, Close: func() {}}, nil
	case config.StoreDriverMemory:
		return &Backend{KV: memory.NewKVStore(), Movements: memory.NewStockMovementRepository(), Close: func() {}}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}
