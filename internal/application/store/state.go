package store

import (
	"github.com/girochef/girochef-api/internal/domain/entity"
)

// Claves de colección (sin prefijo). Cada una se persiste como un valor JSON independiente.
const (
	KeyCompanies       = "availableCompanies"
	KeySelectedCompany = "selectedCompany"
	KeyTransactions    = "transactions"
	KeyMenuItems       = "menuItems"
	KeyProducts        = "products"
	KeyOutputs         = "productOutputs"
	KeySuppliers       = "suppliers"
	KeyShoppingLists   = "manualShoppingLists"
)

// AllKeys colecciones en orden de carga.
var AllKeys = []string{
	KeyCompanies, KeySelectedCompany, KeyTransactions, KeyMenuItems,
	KeyProducts, KeyOutputs, KeySuppliers, KeyShoppingLists,
}

// State estado completo de la aplicación. Todas las colecciones salvo Companies
// están particionadas por ID de empresa.
type State struct {
	Companies       []entity.Company
	ActiveCompanyID string
	Transactions    map[string][]entity.Transaction
	MenuItems       map[string][]entity.MenuItem
	Products        map[string][]entity.Product
	Outputs         map[string][]entity.ProductOutput
	Suppliers       map[string][]entity.Supplier
	ShoppingLists   map[string][]entity.ManualShoppingList
}

// NewState estado vacío con los mapas inicializados.
func NewState() *State {
	return &State{
		Transactions:  map[string][]entity.Transaction{},
		MenuItems:     map[string][]entity.MenuItem{},
		Products:      map[string][]entity.Product{},
		Outputs:       map[string][]entity.ProductOutput{},
		Suppliers:     map[string][]entity.Supplier{},
		ShoppingLists: map[string][]entity.ManualShoppingList{},
	}
}

// Company busca una empresa por ID.
func (s *State) Company(id string) (entity.Company, bool) {
	for _, c := range s.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Company{}, false
}

// ActiveCompany devuelve la empresa activa.
func (s *State) ActiveCompany() (entity.Company, bool) {
	return s.Company(s.ActiveCompanyID)
}

// ProductIndex posición del producto en la partición o -1.
func (s *State) ProductIndex(companyID, productID string) int {
	for i, p := range s.Products[companyID] {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

// Clone copia profunda del estado. Los comandos trabajan sobre un clon y el
// resultado solo reemplaza al estado vigente si el comando termina sin error.
func (s *State) Clone() *State {
	out := &State{
		Companies:       append([]entity.Company(nil), s.Companies...),
		ActiveCompanyID: s.ActiveCompanyID,
		Transactions:    cloneMap(s.Transactions, nil),
		Products:        cloneMap(s.Products, nil),
		Outputs:         cloneMap(s.Outputs, nil),
		Suppliers:       cloneMap(s.Suppliers, nil),
		MenuItems: cloneMap(s.MenuItems, func(m entity.MenuItem) entity.MenuItem {
			m.Ingredients = append([]entity.Ingredient(nil), m.Ingredients...)
			return m
		}),
		ShoppingLists: cloneMap(s.ShoppingLists, func(l entity.ManualShoppingList) entity.ManualShoppingList {
			l.Items = append([]entity.ManualShoppingItem(nil), l.Items...)
			return l
		}),
	}
	return out
}

func cloneMap[T any](in map[string][]T, deep func(T) T) map[string][]T {
	out := make(map[string][]T, len(in))
	for k, v := range in {
		cp := make([]T, len(v))
		for i, it := range v {
			if deep != nil {
				it = deep(it)
			}
			cp[i] = it
		}
		out[k] = cp
	}
	return out
}
