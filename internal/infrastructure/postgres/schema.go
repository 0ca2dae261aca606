package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stock_movements (
	id             UUID PRIMARY KEY,
	company_id     TEXT NOT NULL,
	product_id     TEXT NOT NULL,
	output_id      TEXT NOT NULL,
	kind           TEXT NOT NULL,
	delta          NUMERIC(18,4) NOT NULL,
	quantity_after NUMERIC(18,4) NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stock_movements_product
	ON stock_movements (company_id, product_id, created_at DESC);
`

// EnsureSchema crea las tablas si no existen. No hay migraciones: el esquema es fijo.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
