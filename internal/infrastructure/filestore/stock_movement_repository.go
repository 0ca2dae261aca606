package filestore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo diario de stock append-only en <dir>/stock_movements.jsonl.
type StockMovementRepo struct {
	path string
	mu   sync.Mutex
}

// NewStockMovementRepository construye el diario. El archivo se crea en la primera escritura.
func NewStockMovementRepository(dir string) (*StockMovementRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return &StockMovementRepo{path: filepath.Join(dir, "stock_movements.jsonl")}, nil
}

// Create agrega una línea JSON al diario.
func (r *StockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	line, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("serializar movimiento: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir diario: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("escribir diario: %w", err)
	}
	return nil
}

// ListByProduct recorre el diario y devuelve los movimientos del producto, más recientes primero.
// Las líneas ilegibles se ignoran.
func (r *StockMovementRepo) ListByProduct(_ context.Context, companyID, productID string, limit int) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir diario: %w", err)
	}
	defer f.Close()

	var all []*entity.StockMovement
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m entity.StockMovement
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			continue
		}
		if m.CompanyID == companyID && m.ProductID == productID {
			all = append(all, &m)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer diario: %w", err)
	}
	out := make([]*entity.StockMovement, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
