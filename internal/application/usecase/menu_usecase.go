package usecase

import (
	"context"
	"strings"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/menu"
)

// MenuUseCase ingeniería de menú: CRUD de platos e ingredientes y clasificación BCG.
type MenuUseCase struct {
	store *store.Store
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(s *store.Store) *MenuUseCase {
	return &MenuUseCase{store: s}
}

// List clasifica desde cero el menú completo de la empresa.
func (uc *MenuUseCase) List(companyID string) dto.MenuResponse {
	var items []entity.MenuItem
	uc.store.View(func(st *store.State) {
		items = append(items, st.MenuItems[companyID]...)
	})
	classified, avg := menu.ClassifyAll(items)
	out := dto.MenuResponse{Items: make([]dto.MenuItemResponse, 0, len(classified)), AvgMargin: avg.Margin, AvgVolume: avg.Volume}
	for _, c := range classified {
		out.Items = append(out.Items, toMenuItemResponse(c.Item, c.Quadrant))
	}
	return out
}

// Get devuelve un plato con su clasificación vigente o nil si no existe.
func (uc *MenuUseCase) Get(companyID, id string) *dto.MenuItemResponse {
	for _, it := range uc.List(companyID).Items {
		if it.ID == id {
			return &it
		}
	}
	return nil
}

func toMenuItemResponse(m entity.MenuItem, q entity.Quadrant) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		MenuItem:      m,
		Quadrant:      q,
		QuadrantLabel: q.Label(),
		Margin:        m.Margin(),
		MarginPercent: m.MarginPercent(),
	}
}

func buildIngredients(in []dto.IngredientRequest) ([]entity.Ingredient, error) {
	out := make([]entity.Ingredient, 0, len(in))
	for _, r := range in {
		ing, err := buildIngredient(r)
		if err != nil {
			return nil, err
		}
		ing.ID = newID()
		out = append(out, ing)
	}
	return out, nil
}

func buildIngredient(r dto.IngredientRequest) (entity.Ingredient, error) {
	unit, err := normalizeUnit(r.Unit, entity.UnitEach)
	if err != nil {
		return entity.Ingredient{}, err
	}
	if r.Cost.IsNegative() || r.Quantity.IsNegative() {
		return entity.Ingredient{}, invalid("cost y quantity del ingrediente no pueden ser negativos")
	}
	return entity.Ingredient{Name: strings.TrimSpace(r.Name), Quantity: r.Quantity, Unit: unit, Cost: r.Cost}, nil
}

func buildMenuItem(in dto.MenuItemRequest) (entity.MenuItem, error) {
	if err := requireText("name", in.Name); err != nil {
		return entity.MenuItem{}, err
	}
	if err := requireDecimal("price", in.Price); err != nil {
		return entity.MenuItem{}, err
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.SalesVolume < 0 {
		return entity.MenuItem{}, invalid("price, cost y sales_volume no pueden ser negativos")
	}
	unit, err := normalizeUnit(in.Unit, entity.UnitEach)
	if err != nil {
		return entity.MenuItem{}, err
	}
	ings, err := buildIngredients(in.Ingredients)
	if err != nil {
		return entity.MenuItem{}, err
	}
	m := entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Unit:        unit,
		Cost:        in.Cost,
		Price:       *in.Price,
		SalesVolume: in.SalesVolume,
	}
	if len(ings) > 0 {
		m.Ingredients = ings
	}
	m.Cost = menu.RollUpCost(m.Cost, m.Ingredients)
	return m, nil
}

// reclassify actualiza la etiqueta guardada de todos los platos de la empresa.
func reclassify(tx *store.Tx, companyID string) {
	items := tx.MenuItems[companyID]
	avg := menu.ComputeAverages(items)
	for i := range items {
		items[i].Category = menu.Classify(items[i], avg)
	}
	tx.Touch(companyID, store.KeyMenuItems)
}

// Create agrega un plato al final del menú.
func (uc *MenuUseCase) Create(ctx context.Context, companyID string, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	m, err := buildMenuItem(in)
	if err != nil {
		return nil, err
	}
	m.ID = newID()
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		tx.MenuItems[companyID] = append(tx.MenuItems[companyID], m)
		reclassify(tx, companyID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(companyID, m.ID), nil
}

// Update reemplaza un plato. Si la lista de ingredientes llega vacía se conservan
// los ingredientes actuales y el costo resultante. Devuelve nil, nil si no existe.
func (uc *MenuUseCase) Update(ctx context.Context, companyID, id string, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	m, err := buildMenuItem(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	var found bool
	err = uc.store.Update(ctx, func(tx *store.Tx) error {
		items := tx.MenuItems[companyID]
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if len(m.Ingredients) == 0 && len(items[i].Ingredients) > 0 {
				m.Ingredients = items[i].Ingredients
				m.Cost = menu.RollUpCost(m.Cost, m.Ingredients)
			}
			items[i] = m
			found = true
			reclassify(tx, companyID)
			break
		}
		return nil
	})
	if err != nil || !found {
		return nil, err
	}
	return uc.Get(companyID, id), nil
}

// Delete elimina un plato; el resto se reclasifica.
func (uc *MenuUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.store.Update(ctx, func(tx *store.Tx) error {
		items := tx.MenuItems[companyID]
		for i := range items {
			if items[i].ID == id {
				tx.MenuItems[companyID] = append(items[:i], items[i+1:]...)
				reclassify(tx, companyID)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// mutateItem aplica fn sobre el plato y recalcula su costo con los ingredientes resultantes.
func (uc *MenuUseCase) mutateItem(ctx context.Context, companyID, id string, fn func(m *entity.MenuItem) error) (*dto.MenuItemResponse, error) {
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		items := tx.MenuItems[companyID]
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return err
			}
			items[i].Cost = menu.RollUpCost(items[i].Cost, items[i].Ingredients)
			reclassify(tx, companyID)
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(companyID, id), nil
}

// AddIngredient agrega un ingrediente al plato.
func (uc *MenuUseCase) AddIngredient(ctx context.Context, companyID, itemID string, in dto.IngredientRequest) (*dto.MenuItemResponse, error) {
	ing, err := buildIngredient(in)
	if err != nil {
		return nil, err
	}
	ing.ID = newID()
	return uc.mutateItem(ctx, companyID, itemID, func(m *entity.MenuItem) error {
		m.Ingredients = append(m.Ingredients, ing)
		return nil
	})
}

// UpdateIngredient reemplaza un ingrediente del plato.
func (uc *MenuUseCase) UpdateIngredient(ctx context.Context, companyID, itemID, ingredientID string, in dto.IngredientRequest) (*dto.MenuItemResponse, error) {
	ing, err := buildIngredient(in)
	if err != nil {
		return nil, err
	}
	ing.ID = ingredientID
	return uc.mutateItem(ctx, companyID, itemID, func(m *entity.MenuItem) error {
		for i := range m.Ingredients {
			if m.Ingredients[i].ID == ingredientID {
				m.Ingredients[i] = ing
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// RemoveIngredient quita un ingrediente. Si era el último, el costo del plato no cambia.
func (uc *MenuUseCase) RemoveIngredient(ctx context.Context, companyID, itemID, ingredientID string) (*dto.MenuItemResponse, error) {
	return uc.mutateItem(ctx, companyID, itemID, func(m *entity.MenuItem) error {
		for i := range m.Ingredients {
			if m.Ingredients[i].ID == ingredientID {
				m.Ingredients = append(m.Ingredients[:i], m.Ingredients[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
