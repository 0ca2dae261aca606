package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/application/usecase"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/infrastructure/memory"
	"github.com/girochef/girochef-api/pkg/logger"
)

var fixedNow = time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(memory.NewKVStore(), logger.Nop(), store.Options{
		KeyPrefix: "girochef_",
		Now:       func() time.Time { return fixedNow },
	})
	s.Load(context.Background())
	return s
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ─── Empresas ────────────────────────────────────────────────────────────────

func TestCompany_CreateQuedaActiva(t *testing.T) {
	s := newStore(t)
	uc := usecase.NewCompanyUseCase(s)

	c, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Taco Loco", Category: "Mexicana"})
	require.NoError(t, err)

	assert.Equal(t, c.ID, uc.Active().ID)
	assert.Equal(t, "https://picsum.photos/seed/tacoloco/200", c.Logo)
	assert.Len(t, uc.List(), 4)
}

func TestCompany_CreateSinNombre(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newStore(t))

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Category: "Mexicana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompany_DeleteActivaPasaALaPrimera(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewCompanyUseCase(s)

	require.NoError(t, uc.Delete(ctx, "1"))

	assert.Equal(t, "2", uc.Active().ID)
	assert.Nil(t, uc.Get("1"))
	s.View(func(st *store.State) {
		assert.Len(t, st.Products["1"], 2, "la partición se conserva")
	})
}

func TestCompany_DeleteUltimaRechazada(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCompanyUseCase(newStore(t))
	require.NoError(t, uc.Delete(ctx, "2"))
	require.NoError(t, uc.Delete(ctx, "3"))

	err := uc.Delete(ctx, "1")

	assert.ErrorIs(t, err, domain.ErrLastCompany)
	require.Len(t, uc.List(), 1)
	assert.Equal(t, "1", uc.Active().ID)
}

func TestCompany_DeleteInexistente(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newStore(t))
	assert.ErrorIs(t, uc.Delete(context.Background(), "zz"), domain.ErrNotFound)
}

func TestCompany_SelectYResolve(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCompanyUseCase(newStore(t))

	c, err := uc.Select(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "3", uc.Active().ID)

	assert.Equal(t, "2", uc.Resolve("2").ID)
	assert.Equal(t, "3", uc.Resolve("").ID)
	assert.Equal(t, "3", uc.Resolve("fantasma").ID)

	c, err = uc.Select(ctx, "fantasma")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCompany_UpdateParcial(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newStore(t))
	name := "Burger Lab Centro"

	c, err := uc.Update(context.Background(), "1", dto.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, name, c.Name)
	assert.Equal(t, "Hamburgueria", c.Category)
}

// ─── Flujo de caja ───────────────────────────────────────────────────────────

func TestTransaction_CreateDefaultsYOrden(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewTransactionUseCase(newStore(t))

	tr, err := uc.Create(ctx, "1", dto.TransactionRequest{Category: "Aluguel", Amount: dec("3000"), Description: "Aluguel dezembro", Platform: "IFOOD"})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionOutflow, tr.Type)
	assert.Equal(t, "2025-12-31", tr.Date)
	assert.Equal(t, entity.PlatformIFood, tr.Platform)

	list := uc.List("1", dto.TransactionFilter{})
	require.Len(t, list, 3)
	assert.Equal(t, tr.ID, list[0].ID)
	assert.Equal(t, "t5", list[2].ID)
}

func TestTransaction_Filtros(t *testing.T) {
	uc := usecase.NewTransactionUseCase(newStore(t))

	assert.Len(t, uc.List("1", dto.TransactionFilter{Search: "ifood"}), 1)
	assert.Len(t, uc.List("1", dto.TransactionFilter{Search: "vendas"}), 2)
	assert.Empty(t, uc.List("1", dto.TransactionFilter{Type: entity.TransactionOutflow}))
}

func TestTransaction_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewTransactionUseCase(newStore(t))

	cases := map[string]dto.TransactionRequest{
		"sin monto":      {Category: "X", Description: "Y"},
		"tipo inválido":  {Category: "X", Description: "Y", Amount: dec("1"), Type: "loan"},
		"fecha inválida": {Category: "X", Description: "Y", Amount: dec("1"), Date: "31/12/2025"},
		"plataforma":     {Category: "X", Description: "Y", Amount: dec("1"), Platform: "rappi"},
	}
	for name, in := range cases {
		_, err := uc.Create(ctx, "1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestTransaction_UpdateInexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewTransactionUseCase(newStore(t))

	tr, err := uc.Update(context.Background(), "1", "zz", dto.TransactionRequest{Category: "X", Description: "Y", Amount: dec("1")})
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestTransaction_Delete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewTransactionUseCase(newStore(t))

	require.NoError(t, uc.Delete(ctx, "1", "t0"))
	assert.Len(t, uc.List("1", dto.TransactionFilter{}), 1)
	assert.ErrorIs(t, uc.Delete(ctx, "1", "t0"), domain.ErrNotFound)
}

// ─── Insumos y proveedores ───────────────────────────────────────────────────

func TestProduct_ListMarcaStockBajo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(newStore(t), nil)

	_, err := uc.Create(ctx, "1", dto.ProductRequest{Name: "Queijo Cheddar", Supplier: "Laticínios", Quantity: dec("4"), Cost: dec("38")})
	require.NoError(t, err)

	list := uc.List("1", "cheddar")
	require.Len(t, list, 1)
	assert.True(t, list[0].LowStock)
	assert.Equal(t, entity.UnitKilogram, list[0].Unit)
	assert.True(t, decimal.RequireFromString("152").Equal(list[0].StockValue))
}

func TestProduct_CantidadNegativaRechazada(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), nil)

	_, err := uc.Create(context.Background(), "1", dto.ProductRequest{Name: "X", Supplier: "Y", Quantity: dec("-1"), Cost: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplier_RatingPorDefectoYRango(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSupplierUseCase(newStore(t))

	sp, err := uc.Create(ctx, "1", dto.SupplierRequest{Name: "Hortifruti", Contact: "(11) 91111-2222", Category: "Vegetais"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSupplierRating, sp.Rating)

	bad := 6
	_, err = uc.Create(ctx, "1", dto.SupplierRequest{Name: "X", Contact: "Y", Category: "Z", Rating: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Len(t, uc.List("1", "horti"), 1)
}

// ─── Menú ────────────────────────────────────────────────────────────────────

func TestMenu_ListReclasificaDesdeCero(t *testing.T) {
	uc := usecase.NewMenuUseCase(newStore(t))

	res := uc.List("1")

	require.Len(t, res.Items, 2)
	assert.Equal(t, entity.QuadrantStar, res.Items[0].Quadrant)
	assert.Equal(t, entity.QuadrantDog, res.Items[1].Quadrant, "la etiqueta guardada se ignora")
	assert.Equal(t, "Cão", res.Items[1].QuadrantLabel)
	assert.True(t, decimal.RequireFromString("16.2").Equal(res.AvgMargin))
	assert.True(t, decimal.RequireFromString("385").Equal(res.AvgVolume))
}

func TestMenu_CreateConIngredientesSumaCosto(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewMenuUseCase(s)

	item, err := uc.Create(ctx, "1", dto.MenuItemRequest{
		Name:        "Smash Duplo",
		Price:       dec("42"),
		Cost:        decimal.NewFromInt(99),
		SalesVolume: 500,
		Ingredients: []dto.IngredientRequest{
			{Name: "Carne", Quantity: decimal.RequireFromString("0.2"), Unit: entity.UnitKilogram, Cost: decimal.RequireFromString("9.18")},
			{Name: "Pão", Quantity: decimal.NewFromInt(1), Cost: decimal.RequireFromString("1.85")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, decimal.RequireFromString("11.03").Equal(item.Cost))

	s.View(func(st *store.State) {
		for _, m := range st.MenuItems["1"] {
			if m.ID == "m2" {
				assert.Equal(t, entity.QuadrantDog, m.Category, "la etiqueta guardada se actualiza")
			}
		}
	})
}

func TestMenu_Ingredientes(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewMenuUseCase(newStore(t))

	item, err := uc.AddIngredient(ctx, "1", "m1", dto.IngredientRequest{Name: "Bacon", Quantity: decimal.NewFromInt(1), Cost: decimal.NewFromInt(4)})
	require.NoError(t, err)
	require.Len(t, item.Ingredients, 1)
	assert.True(t, decimal.NewFromInt(4).Equal(item.Cost))

	item, err = uc.RemoveIngredient(ctx, "1", "m1", item.Ingredients[0].ID)
	require.NoError(t, err)
	assert.Empty(t, item.Ingredients)
	assert.True(t, decimal.NewFromInt(4).Equal(item.Cost), "sin ingredientes el costo queda como estaba")

	_, err = uc.RemoveIngredient(ctx, "1", "m1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenu_PrecioObligatorio(t *testing.T) {
	uc := usecase.NewMenuUseCase(newStore(t))

	_, err := uc.Create(context.Background(), "1", dto.MenuItemRequest{Name: "Sem preço"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Listas de compras ───────────────────────────────────────────────────────

func TestShopping_TotalDeLaLista(t *testing.T) {
	uc := usecase.NewShoppingUseCase(newStore(t))

	l, err := uc.Create(context.Background(), "1", dto.ShoppingListRequest{
		Items: []dto.ShoppingItemRequest{{Name: "Tomate", Quantity: dec("3"), EstimatedCost: dec("12.50")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Lista de Compras - 31/12/2025", l.Name)
	require.Len(t, l.Items, 1)
	assert.Equal(t, entity.CustomItemUnit, l.Items[0].Unit)
	assert.Equal(t, entity.CustomItemSupplier, l.Items[0].Supplier)
	assert.True(t, decimal.RequireFromString("37.50").Equal(l.TotalCost))
}

func TestShopping_ItemDesdeInsumo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewShoppingUseCase(newStore(t))

	l, err := uc.Create(ctx, "1", dto.ShoppingListRequest{
		Name:  "Semana",
		Items: []dto.ShoppingItemRequest{{ProductID: "p1"}, {ProductID: "p1"}},
	})
	require.NoError(t, err)

	require.Len(t, l.Items, 1, "insumo repetido se omite")
	it := l.Items[0]
	assert.Equal(t, "Carne Bovina Moída", it.Name)
	assert.Equal(t, entity.UnitKilogram, it.Unit)
	assert.Equal(t, "Friboi Alimentos", it.Supplier)
	assert.True(t, decimal.NewFromInt(1).Equal(it.Quantity))
	assert.True(t, decimal.RequireFromString("45.90").Equal(l.TotalCost))

	_, err = uc.AddItem(ctx, "1", l.ID, dto.ShoppingItemRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.AddItem(ctx, "1", l.ID, dto.ShoppingItemRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShopping_RemoveItemRecalcula(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewShoppingUseCase(newStore(t))
	l, err := uc.Create(ctx, "1", dto.ShoppingListRequest{Items: []dto.ShoppingItemRequest{
		{Name: "Alface", Quantity: dec("2"), EstimatedCost: dec("3")},
		{Name: "Cebola", Quantity: dec("1"), EstimatedCost: dec("5")},
	}})
	require.NoError(t, err)

	l, err = uc.RemoveItem(ctx, "1", l.ID, l.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(l.TotalCost))
}

func TestShopping_LaunchPrecargaInsumo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewShoppingUseCase(newStore(t))
	l, err := uc.Create(ctx, "1", dto.ShoppingListRequest{Items: []dto.ShoppingItemRequest{
		{Name: "Tomate", Quantity: dec("3"), EstimatedCost: dec("12.50"), Supplier: "Ceasa"},
	}})
	require.NoError(t, err)

	pre, err := uc.Launch("1", l.ID, l.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomate", pre.Name)
	assert.Equal(t, "Ceasa", pre.Supplier)
	assert.Equal(t, entity.PrefillCategory, pre.Category)
	assert.Equal(t, "2025-12-31", pre.Date)
	assert.Empty(t, pre.InvoiceNumber)

	_, err = uc.Launch("1", l.ID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShopping_UpdateConservaIDDeItems(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewShoppingUseCase(newStore(t))
	l, err := uc.Create(ctx, "1", dto.ShoppingListRequest{Items: []dto.ShoppingItemRequest{
		{Name: "Tomate", Quantity: dec("3"), EstimatedCost: dec("2")},
	}})
	require.NoError(t, err)
	itemID := l.Items[0].ID

	l, err = uc.Update(ctx, "1", l.ID, dto.ShoppingListRequest{Items: []dto.ShoppingItemRequest{
		{ID: itemID, Name: "Tomate", Quantity: dec("4"), EstimatedCost: dec("2")},
		{ID: itemID, Name: "Tomate cereja", Quantity: dec("1")},
		{ID: "desconhecido", Name: "Cebola", Quantity: dec("1")},
	}})
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Len(t, l.Items, 3)
	assert.Equal(t, itemID, l.Items[0].ID)
	assert.NotEqual(t, itemID, l.Items[1].ID, "un ID repetido se usa una sola vez")
	assert.NotEqual(t, "desconhecido", l.Items[2].ID)

	pre, err := uc.Launch("1", l.ID, itemID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4).Equal(pre.Quantity))

	l, err = uc.RemoveItem(ctx, "1", l.ID, itemID)
	require.NoError(t, err)
	assert.Len(t, l.Items, 2)
}

func TestShopping_Sugeridos(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	products := usecase.NewProductUseCase(s, nil)
	_, err := products.Create(ctx, "1", dto.ProductRequest{Name: "Sal", Supplier: "X", Quantity: dec("10"), Cost: dec("2")})
	require.NoError(t, err)

	got := usecase.NewShoppingUseCase(s).Suggested("1")

	require.Len(t, got, 1, "el umbral es inclusivo")
	assert.Equal(t, "Sal", got[0].Name)
}

// ─── Notificaciones ──────────────────────────────────────────────────────────

func TestNotification_MarkAllRead(t *testing.T) {
	uc := usecase.NewNotificationUseCase(newStore(t))

	before := uc.List("1")
	require.NotEmpty(t, before.Items)
	assert.Equal(t, 1, before.Unread, "desperdicio 114,75 supera el umbral")

	after := uc.MarkAllRead("1")
	assert.Zero(t, after.Unread)
	assert.False(t, uc.MarkRead("1", "nope"))
}
