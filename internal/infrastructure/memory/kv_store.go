// Package memory implementa los puertos de persistencia en memoria (tests y ejecuciones efímeras).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/repository"
)

var (
	_ repository.KVStore                 = (*KVStore)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
)

// KVStore almacén clave-valor en un map protegido por mutex.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: map[string][]byte{}}
}

// Get devuelve una copia del valor guardado.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set guarda una copia del valor.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Keys lista las claves guardadas, ordenadas.
func (s *KVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StockMovementRepo diario de stock en memoria.
type StockMovementRepo struct {
	mu   sync.RWMutex
	list []entity.StockMovement
}

// NewStockMovementRepository construye un diario vacío.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{}
}

// Create agrega el movimiento al final del diario.
func (r *StockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, *m)
	return nil
}

// ListByProduct devuelve los movimientos del producto, del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(_ context.Context, companyID, productID string, limit int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.StockMovement
	for i := len(r.list) - 1; i >= 0; i-- {
		m := r.list[i]
		if m.CompanyID != companyID || m.ProductID != productID {
			continue
		}
		out = append(out, &m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
