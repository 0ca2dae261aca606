package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
)

// ShoppingUseCase listas de compras manuales.
type ShoppingUseCase struct {
	store *store.Store
}

// NewShoppingUseCase construye el caso de uso.
func NewShoppingUseCase(s *store.Store) *ShoppingUseCase {
	return &ShoppingUseCase{store: s}
}

// DefaultListName nombre usado cuando la lista llega sin nombre.
func (uc *ShoppingUseCase) DefaultListName() string {
	return "Lista de Compras - " + uc.store.Now().Format("02/01/2006")
}

// List devuelve las listas de la empresa (más recientes primero) filtradas por nombre.
func (uc *ShoppingUseCase) List(companyID, search string) []entity.ManualShoppingList {
	var out []entity.ManualShoppingList
	uc.store.View(func(st *store.State) {
		for _, l := range st.ShoppingLists[companyID] {
			if search != "" && !containsFold(l.Name, search) {
				continue
			}
			l.Items = append([]entity.ManualShoppingItem(nil), l.Items...)
			out = append(out, l)
		}
	})
	return out
}

// Get devuelve una lista o nil si no existe.
func (uc *ShoppingUseCase) Get(companyID, id string) *entity.ManualShoppingList {
	var out *entity.ManualShoppingList
	uc.store.View(func(st *store.State) {
		for _, l := range st.ShoppingLists[companyID] {
			if l.ID == id {
				l.Items = append([]entity.ManualShoppingItem(nil), l.Items...)
				out = &l
				return
			}
		}
	})
	return out
}

// Suggested insumos en o por debajo del umbral de stock bajo, para reponer.
func (uc *ShoppingUseCase) Suggested(companyID string) []entity.Product {
	th := uc.store.Thresholds()
	var out []entity.Product
	uc.store.View(func(st *store.State) {
		for _, p := range st.Products[companyID] {
			if th.IsLowStock(p) {
				out = append(out, p)
			}
		}
	})
	return out
}

// buildItem arma un ítem. Con ProductID copia nombre, unidad, costo y proveedor del
// insumo; sin él es un ítem libre con unidad "un", costo 0 y proveedor "undefined".
// La cantidad por defecto es 1. Los campos explícitos del request tienen prioridad.
func buildItem(st *store.State, companyID string, in dto.ShoppingItemRequest) (entity.ManualShoppingItem, error) {
	it := entity.ManualShoppingItem{
		ID:            newID(),
		Quantity:      decimal.NewFromInt(1),
		Unit:          entity.CustomItemUnit,
		EstimatedCost: decimal.Zero,
		Supplier:      entity.CustomItemSupplier,
	}
	if in.ProductID != "" {
		i := st.ProductIndex(companyID, in.ProductID)
		if i < 0 {
			return it, domain.ErrNotFound
		}
		p := st.Products[companyID][i]
		it.Name, it.Unit, it.EstimatedCost, it.Supplier = p.Name, p.Unit, p.Cost, p.Supplier
	} else {
		if err := requireText("name", in.Name); err != nil {
			return it, err
		}
		it.Name = strings.TrimSpace(in.Name)
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.EstimatedCost != nil {
		it.EstimatedCost = *in.EstimatedCost
	}
	if in.Unit != "" {
		if !entity.ValidUnit(in.Unit) {
			return it, invalid("unidad inválida: %q", in.Unit)
		}
		it.Unit = in.Unit
	}
	if s := strings.TrimSpace(in.Supplier); s != "" {
		it.Supplier = s
	}
	if it.Quantity.IsNegative() || it.EstimatedCost.IsNegative() {
		return it, invalid("quantity y estimated_cost no pueden ser negativos")
	}
	return it, nil
}

func hasItemNamed(items []entity.ManualShoppingItem, name string) bool {
	for _, it := range items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// buildItems arma los ítems de una lista. Un insumo ya presente por nombre se omite.
// Un ID que coincide con un ítem de prev se conserva (una sola vez).
func buildItems(st *store.State, companyID string, reqs []dto.ShoppingItemRequest, prev []entity.ManualShoppingItem) ([]entity.ManualShoppingItem, error) {
	known := make(map[string]bool, len(prev))
	for _, it := range prev {
		known[it.ID] = true
	}
	items := make([]entity.ManualShoppingItem, 0, len(reqs))
	for _, r := range reqs {
		it, err := buildItem(st, companyID, r)
		if err != nil {
			return nil, err
		}
		if r.ProductID != "" && hasItemNamed(items, it.Name) {
			continue
		}
		if known[r.ID] {
			it.ID = r.ID
			delete(known, r.ID)
		}
		items = append(items, it)
	}
	return items, nil
}

// Create registra una lista al inicio de la colección.
func (uc *ShoppingUseCase) Create(ctx context.Context, companyID string, in dto.ShoppingListRequest) (*entity.ManualShoppingList, error) {
	var out entity.ManualShoppingList
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		items, err := buildItems(tx.State, companyID, in.Items, nil)
		if err != nil {
			return err
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = uc.DefaultListName()
		}
		out = entity.ManualShoppingList{ID: newID(), Name: name, Date: uc.store.Now(), Items: items}
		out.Recalculate()
		tx.ShoppingLists[companyID] = append([]entity.ManualShoppingList{out}, tx.ShoppingLists[companyID]...)
		tx.Touch(companyID, store.KeyShoppingLists)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza nombre e ítems de una lista conservando ID y fecha.
func (uc *ShoppingUseCase) Update(ctx context.Context, companyID, id string, in dto.ShoppingListRequest) (*entity.ManualShoppingList, error) {
	var out *entity.ManualShoppingList
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		lists := tx.ShoppingLists[companyID]
		for i := range lists {
			if lists[i].ID != id {
				continue
			}
			items, err := buildItems(tx.State, companyID, in.Items, lists[i].Items)
			if err != nil {
				return err
			}
			if name := strings.TrimSpace(in.Name); name != "" {
				lists[i].Name = name
			}
			lists[i].Items = items
			lists[i].Recalculate()
			cp := lists[i]
			out = &cp
			tx.Touch(companyID, store.KeyShoppingLists)
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una lista.
func (uc *ShoppingUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.store.Update(ctx, func(tx *store.Tx) error {
		lists := tx.ShoppingLists[companyID]
		for i := range lists {
			if lists[i].ID == id {
				tx.ShoppingLists[companyID] = append(lists[:i], lists[i+1:]...)
				tx.Touch(companyID, store.KeyShoppingLists)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// mutateList aplica fn sobre la lista y recalcula el total.
func (uc *ShoppingUseCase) mutateList(ctx context.Context, companyID, id string, fn func(st *store.State, l *entity.ManualShoppingList) error) (*entity.ManualShoppingList, error) {
	var out entity.ManualShoppingList
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		lists := tx.ShoppingLists[companyID]
		for i := range lists {
			if lists[i].ID != id {
				continue
			}
			if err := fn(tx.State, &lists[i]); err != nil {
				return err
			}
			lists[i].Recalculate()
			out = lists[i]
			tx.Touch(companyID, store.KeyShoppingLists)
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddItem agrega un ítem. Un insumo ya presente en la lista por nombre devuelve domain.ErrDuplicate.
func (uc *ShoppingUseCase) AddItem(ctx context.Context, companyID, listID string, in dto.ShoppingItemRequest) (*entity.ManualShoppingList, error) {
	return uc.mutateList(ctx, companyID, listID, func(st *store.State, l *entity.ManualShoppingList) error {
		it, err := buildItem(st, companyID, in)
		if err != nil {
			return err
		}
		if in.ProductID != "" && hasItemNamed(l.Items, it.Name) {
			return domain.ErrDuplicate
		}
		l.Items = append(l.Items, it)
		return nil
	})
}

// RemoveItem quita un ítem de la lista.
func (uc *ShoppingUseCase) RemoveItem(ctx context.Context, companyID, listID, itemID string) (*entity.ManualShoppingList, error) {
	return uc.mutateList(ctx, companyID, listID, func(_ *store.State, l *entity.ManualShoppingList) error {
		for i := range l.Items {
			if l.Items[i].ID == itemID {
				l.Items = append(l.Items[:i], l.Items[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Launch convierte un ítem en los datos iniciales de un alta de insumo. No modifica
// ningún estado: el alta real la hace ProductUseCase.Create con estos datos.
func (uc *ShoppingUseCase) Launch(companyID, listID, itemID string) (*entity.ProductPrefill, error) {
	l := uc.Get(companyID, listID)
	if l == nil {
		return nil, domain.ErrNotFound
	}
	for _, it := range l.Items {
		if it.ID != itemID {
			continue
		}
		return &entity.ProductPrefill{
			Name:          it.Name,
			Supplier:      it.Supplier,
			InvoiceNumber: "",
			Category:      entity.PrefillCategory,
			Unit:          it.Unit,
			Quantity:      it.Quantity,
			Cost:          it.EstimatedCost,
			Date:          uc.store.Now().Format(entity.DateLayout),
		}, nil
	}
	return nil, domain.ErrNotFound
}
