package usecase

import (
	"context"
	"strings"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	store *store.Store
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(s *store.Store) *SupplierUseCase {
	return &SupplierUseCase{store: s}
}

// List devuelve los proveedores de la empresa, filtrados por nombre o categoría.
func (uc *SupplierUseCase) List(companyID, search string) []entity.Supplier {
	var out []entity.Supplier
	uc.store.View(func(st *store.State) {
		for _, s := range st.Suppliers[companyID] {
			if search != "" && !containsFold(s.Name, search) && !containsFold(s.Category, search) {
				continue
			}
			out = append(out, s)
		}
	})
	return out
}

func buildSupplier(in dto.SupplierRequest) (entity.Supplier, error) {
	if err := requireText("name", in.Name); err != nil {
		return entity.Supplier{}, err
	}
	if err := requireText("contact", in.Contact); err != nil {
		return entity.Supplier{}, err
	}
	if err := requireText("category", in.Category); err != nil {
		return entity.Supplier{}, err
	}
	rating := entity.DefaultSupplierRating
	if in.Rating != nil {
		rating = *in.Rating
	}
	if rating < entity.MinSupplierRating || rating > entity.MaxSupplierRating {
		return entity.Supplier{}, invalid("rating debe estar entre %d y %d", entity.MinSupplierRating, entity.MaxSupplierRating)
	}
	return entity.Supplier{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Contact:  strings.TrimSpace(in.Contact),
		Email:    strings.TrimSpace(in.Email),
		Rating:   rating,
	}, nil
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, companyID string, in dto.SupplierRequest) (*entity.Supplier, error) {
	s, err := buildSupplier(in)
	if err != nil {
		return nil, err
	}
	s.ID = newID()
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		tx.Suppliers[companyID] = append(tx.Suppliers[companyID], s)
		tx.Touch(companyID, store.KeySuppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update reemplaza un proveedor. Devuelve nil, nil si no existe.
func (uc *SupplierUseCase) Update(ctx context.Context, companyID, id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	s, err := buildSupplier(in)
	if err != nil {
		return nil, err
	}
	s.ID = id
	var found bool
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		list := tx.Suppliers[companyID]
		for i := range list {
			if list[i].ID == id {
				list[i] = s
				found = true
				tx.Touch(companyID, store.KeySuppliers)
				break
			}
		}
		return nil
	})
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.store.Update(ctx, func(tx *store.Tx) error {
		list := tx.Suppliers[companyID]
		for i := range list {
			if list[i].ID == id {
				tx.Suppliers[companyID] = append(list[:i], list[i+1:]...)
				tx.Touch(companyID, store.KeySuppliers)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
