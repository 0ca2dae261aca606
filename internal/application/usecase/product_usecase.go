package usecase

import (
	"context"
	"strings"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/repository"
)

// ProductUseCase casos de uso de insumos. La cantidad solo se edita aquí de forma
// directa; las salidas la ajustan vía inventory.OutputUseCase.
type ProductUseCase struct {
	store     *store.Store
	movements repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso. movements puede ser nil (sin diario).
func NewProductUseCase(s *store.Store, movements repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{store: s, movements: movements}
}

// List devuelve los insumos de la empresa filtrados por nombre, proveedor o categoría.
func (uc *ProductUseCase) List(companyID, search string) []dto.ProductResponse {
	th := uc.store.Thresholds()
	var out []dto.ProductResponse
	uc.store.View(func(st *store.State) {
		for _, p := range st.Products[companyID] {
			if search != "" && !containsFold(p.Name, search) && !containsFold(p.Supplier, search) && !containsFold(p.Category, search) {
				continue
			}
			out = append(out, dto.ProductResponse{
				Product:    p,
				StockValue: p.Quantity.Mul(p.Cost),
				LowStock:   th.IsLowStock(p),
			})
		}
	})
	return out
}

// Get devuelve un insumo o nil si no existe.
func (uc *ProductUseCase) Get(companyID, id string) *entity.Product {
	var out *entity.Product
	uc.store.View(func(st *store.State) {
		if i := st.ProductIndex(companyID, id); i >= 0 {
			p := st.Products[companyID][i]
			out = &p
		}
	})
	return out
}

func (uc *ProductUseCase) build(in dto.ProductRequest) (entity.Product, error) {
	if err := requireText("name", in.Name); err != nil {
		return entity.Product{}, err
	}
	if err := requireText("supplier", in.Supplier); err != nil {
		return entity.Product{}, err
	}
	if err := requireDecimal("cost", in.Cost); err != nil {
		return entity.Product{}, err
	}
	if err := requireDecimal("quantity", in.Quantity); err != nil {
		return entity.Product{}, err
	}
	if in.Cost.IsNegative() || in.Quantity.IsNegative() {
		return entity.Product{}, invalid("cost y quantity no pueden ser negativos")
	}
	unit, err := normalizeUnit(in.Unit, entity.UnitKilogram)
	if err != nil {
		return entity.Product{}, err
	}
	date, err := normalizeDate("date", in.Date, uc.store.Now())
	if err != nil {
		return entity.Product{}, err
	}
	return entity.Product{
		Name:          strings.TrimSpace(in.Name),
		Supplier:      strings.TrimSpace(in.Supplier),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Category:      strings.TrimSpace(in.Category),
		Unit:          unit,
		Quantity:      *in.Quantity,
		Cost:          *in.Cost,
		Date:          date,
	}, nil
}

// Create registra un insumo.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.ProductRequest) (*entity.Product, error) {
	p, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	p.ID = newID()
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		tx.Products[companyID] = append(tx.Products[companyID], p)
		tx.Touch(companyID, store.KeyProducts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update reemplaza un insumo conservando su ID. Devuelve nil, nil si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.ProductRequest) (*entity.Product, error) {
	p, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	var found bool
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		if i := tx.ProductIndex(companyID, id); i >= 0 {
			tx.Products[companyID][i] = p
			found = true
			tx.Touch(companyID, store.KeyProducts)
		}
		return nil
	})
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// Delete elimina un insumo. Las salidas que lo referencian se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.store.Update(ctx, func(tx *store.Tx) error {
		i := tx.ProductIndex(companyID, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		list := tx.Products[companyID]
		tx.Products[companyID] = append(list[:i], list[i+1:]...)
		tx.Touch(companyID, store.KeyProducts)
		return nil
	})
}

// Movements devuelve el diario de stock del insumo (más recientes primero).
func (uc *ProductUseCase) Movements(ctx context.Context, companyID, id string, limit int) ([]*entity.StockMovement, error) {
	if uc.movements == nil {
		return nil, nil
	}
	return uc.movements.ListByProduct(ctx, companyID, id, limit)
}
