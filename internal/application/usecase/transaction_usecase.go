package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
)

// TransactionUseCase casos de uso del flujo de caja.
type TransactionUseCase struct {
	store *store.Store
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(s *store.Store) *TransactionUseCase {
	return &TransactionUseCase{store: s}
}

// List devuelve las transacciones de la empresa filtradas por texto (descripción o
// categoría) y tipo, ordenadas por fecha descendente.
func (uc *TransactionUseCase) List(companyID string, f dto.TransactionFilter) []entity.Transaction {
	var out []entity.Transaction
	uc.store.View(func(st *store.State) {
		for _, t := range st.Transactions[companyID] {
			if f.Type != "" && t.Type != f.Type {
				continue
			}
			if f.Search != "" && !containsFold(t.Description, f.Search) && !containsFold(t.Category, f.Search) {
				continue
			}
			out = append(out, t)
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (uc *TransactionUseCase) build(in dto.TransactionRequest) (entity.Transaction, error) {
	if err := requireText("description", in.Description); err != nil {
		return entity.Transaction{}, err
	}
	if err := requireDecimal("amount", in.Amount); err != nil {
		return entity.Transaction{}, err
	}
	if err := requireText("category", in.Category); err != nil {
		return entity.Transaction{}, err
	}
	if in.Type == "" {
		in.Type = entity.TransactionOutflow
	}
	if !entity.ValidTransactionType(in.Type) {
		return entity.Transaction{}, invalid("type debe ser inflow u outflow")
	}
	platform := strings.ToLower(in.Platform)
	if !entity.ValidPlatform(platform) {
		return entity.Transaction{}, invalid("platform inválida: %q", in.Platform)
	}
	date, err := normalizeDate("date", in.Date, uc.store.Now())
	if err != nil {
		return entity.Transaction{}, err
	}
	return entity.Transaction{
		Date:        date,
		Type:        in.Type,
		Category:    strings.TrimSpace(in.Category),
		Platform:    platform,
		Amount:      *in.Amount,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

// Create registra una transacción al inicio de la lista.
func (uc *TransactionUseCase) Create(ctx context.Context, companyID string, in dto.TransactionRequest) (*entity.Transaction, error) {
	t, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	t.ID = newID()
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		tx.Transactions[companyID] = append([]entity.Transaction{t}, tx.Transactions[companyID]...)
		tx.Touch(companyID, store.KeyTransactions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update reemplaza una transacción conservando su ID. Devuelve nil, nil si no existe.
func (uc *TransactionUseCase) Update(ctx context.Context, companyID, id string, in dto.TransactionRequest) (*entity.Transaction, error) {
	t, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	t.ID = id
	var found bool
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		list := tx.Transactions[companyID]
		for i := range list {
			if list[i].ID == id {
				list[i] = t
				found = true
				tx.Touch(companyID, store.KeyTransactions)
				break
			}
		}
		return nil
	})
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

// Delete elimina una transacción.
func (uc *TransactionUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.store.Update(ctx, func(tx *store.Tx) error {
		list := tx.Transactions[companyID]
		for i := range list {
			if list[i].ID == id {
				tx.Transactions[companyID] = append(list[:i], list[i+1:]...)
				tx.Touch(companyID, store.KeyTransactions)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
