package store

import (
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedState conjunto de datos de demostración con el que arranca un almacén vacío.
func SeedState() *State {
	st := NewState()
	st.Companies = SeedCompanies()
	st.ActiveCompanyID = st.Companies[0].ID
	st.Transactions = SeedTransactions()
	st.MenuItems = SeedMenuItems()
	st.Products = SeedProducts()
	st.Outputs = SeedOutputs()
	st.Suppliers = SeedSuppliers()
	return st
}

// SeedCompanies empresas de demostración.
func SeedCompanies() []entity.Company {
	return []entity.Company{
		{ID: "1", Name: "Burger Lab", Category: "Hamburgueria", Logo: "https://picsum.photos/seed/burger/200"},
		{ID: "2", Name: "Sushi Zen", Category: "Japonesa", Logo: "https://picsum.photos/seed/sushi/200"},
		{ID: "3", Name: "Pizza Master", Category: "Pizzaria", Logo: "https://picsum.photos/seed/pizza/200"},
	}
}

// SeedTransactions movimientos de caja de demostración.
func SeedTransactions() map[string][]entity.Transaction {
	return map[string][]entity.Transaction{
		"1": {
			{ID: "t0", Date: "2025-12-30", Type: entity.TransactionInflow, Category: "VENDAS", Platform: entity.PlatformBrendi, Amount: dec("1500"), Description: "VENDAS BRENDI"},
			{ID: "t5", Date: "2024-05-01", Type: entity.TransactionInflow, Category: "Vendas", Platform: entity.PlatformIFood, Amount: dec("4500.5"), Description: "Repasse Semanal iFood"},
		},
		"2": {},
	}
}

// SeedMenuItems platos de demostración; Category es la última clasificación guardada.
func SeedMenuItems() map[string][]entity.MenuItem {
	return map[string][]entity.MenuItem{
		"1": {
			{ID: "m1", Name: "Classic Burger", Unit: entity.UnitEach, Cost: dec("12.5"), Price: dec("34.9"), SalesVolume: 450, Category: entity.QuadrantStar},
			{ID: "m2", Name: "Cheese Fries", Unit: entity.UnitEach, Cost: dec("8"), Price: dec("18"), SalesVolume: 320, Category: entity.QuadrantWorkhorse},
		},
		"2": {},
	}
}

// SeedProducts insumos de demostración.
func SeedProducts() map[string][]entity.Product {
	return map[string][]entity.Product{
		"1": {
			{ID: "p1", Name: "Carne Bovina Moída", Supplier: "Friboi Alimentos", InvoiceNumber: "NF-99283", Category: "Proteínas", Unit: entity.UnitKilogram, Quantity: dec("25"), Cost: dec("45.90"), Date: "2025-12-28"},
			{ID: "p2", Name: "Pão de Brioche", Supplier: "Padaria Artesanal", InvoiceNumber: "NF-88210", Category: "Padaria", Unit: entity.UnitEach, Quantity: dec("100"), Cost: dec("1.85"), Date: "2025-12-29"},
		},
		"2": {},
	}
}

// SeedOutputs salidas de demostración.
func SeedOutputs() map[string][]entity.ProductOutput {
	return map[string][]entity.ProductOutput{
		"1": {
			{ID: "o1", ProductID: "p1", ProductName: "Carne Bovina Moída", Quantity: dec("2.5"), Unit: entity.UnitKilogram, Reason: entity.OutputReasonWaste, Date: "2025-12-30", EstimatedCost: dec("114.75")},
			{ID: "o2", ProductID: "p2", ProductName: "Pão de Brioche", Quantity: dec("12"), Unit: entity.UnitEach, Reason: entity.OutputReasonSale, Date: "2025-12-31", EstimatedCost: dec("22.20")},
		},
		"2": {},
	}
}

// SeedSuppliers proveedores de demostración.
func SeedSuppliers() map[string][]entity.Supplier {
	return map[string][]entity.Supplier{
		"1": {
			{ID: "s1", Name: "Friboi Alimentos", Contact: "(11) 98888-7777", Category: "Proteínas", Rating: 5},
			{ID: "s2", Name: "Padaria Artesanal", Contact: "(11) 97777-6666", Category: "Panificação", Rating: 4},
		},
		"2": {},
	}
}
