package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/advisor"
	appanalytics "github.com/girochef/girochef-api/internal/application/analytics"
	"github.com/girochef/girochef-api/internal/application/export"
	"github.com/girochef/girochef-api/internal/application/inventory"
	"github.com/girochef/girochef-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC      *usecase.CompanyUseCase
	TransactionUC  *usecase.TransactionUseCase
	ProductUC      *usecase.ProductUseCase
	MenuUC         *usecase.MenuUseCase
	SupplierUC     *usecase.SupplierUseCase
	ShoppingUC     *usecase.ShoppingUseCase
	NotificationUC *usecase.NotificationUseCase
	Outputs        *inventory.OutputUseCase
	Replenishment  *inventory.ReplenishmentUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	Advisor        *advisor.UseCase
	Export         *export.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies (sin empresa resuelta: operan sobre la lista global)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/active", companyHandler.Active)
	companies.Put("/active", companyHandler.Select)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Rutas por empresa (X-Company-ID o empresa activa)
	scoped := api.Group("/", CompanyMiddleware(deps.CompanyUC))

	transactions := scoped.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.Export)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/export", transactionHandler.Export)
	transactions.Post("/", transactionHandler.Create)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	products := scoped.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/movements", productHandler.Movements)

	inventoryHandler := NewInventoryHandler(deps.Outputs, deps.Replenishment)
	outputs := scoped.Group("/outputs")
	outputs.Get("/", inventoryHandler.ListOutputs)
	outputs.Get("/waste", inventoryHandler.WasteByProduct)
	outputs.Post("/", inventoryHandler.RegisterOutput)
	outputs.Put("/:id", inventoryHandler.EditOutput)
	outputs.Delete("/:id", inventoryHandler.DeleteOutput)
	scoped.Get("/inventory/replenishment", inventoryHandler.GetReplenishmentList)

	menu := scoped.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Get("/", menuHandler.List)
	menu.Post("/", menuHandler.Create)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", menuHandler.Delete)
	menu.Post("/:id/ingredients", menuHandler.AddIngredient)
	menu.Put("/:id/ingredients/:ingredientId", menuHandler.UpdateIngredient)
	menu.Delete("/:id/ingredients/:ingredientId", menuHandler.RemoveIngredient)

	suppliers := scoped.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	shopping := scoped.Group("/shopping-lists")
	shoppingHandler := NewShoppingHandler(deps.ShoppingUC, deps.Export)
	shopping.Get("/", shoppingHandler.List)
	shopping.Get("/suggested", shoppingHandler.Suggested)
	shopping.Post("/", shoppingHandler.Create)
	shopping.Get("/:id", shoppingHandler.GetByID)
	shopping.Put("/:id", shoppingHandler.Update)
	shopping.Delete("/:id", shoppingHandler.Delete)
	shopping.Post("/:id/items", shoppingHandler.AddItem)
	shopping.Delete("/:id/items/:itemId", shoppingHandler.RemoveItem)
	shopping.Post("/:id/items/:itemId/launch", shoppingHandler.Launch)
	shopping.Get("/:id/share", shoppingHandler.Share)
	shopping.Get("/:id/pdf", shoppingHandler.PDF)

	notifications := scoped.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Export)
	scoped.Get("/dashboard/summary", dashboardHandler.GetSummary)
	scoped.Get("/reports", dashboardHandler.GetReport)
	scoped.Get("/reports/pdf", dashboardHandler.GetReportPDF)

	advisorGroup := scoped.Group("/advisor")
	aiHandler := NewAIHandler(deps.Advisor)
	advisorGroup.Post("/insight", aiHandler.Insight)
	advisorGroup.Post("/ask", aiHandler.Ask)
	advisorGroup.Get("/history", aiHandler.History)
	advisorGroup.Delete("/history", aiHandler.Reset)
	advisorGroup.Get("/history/:index/export", aiHandler.Message)
	advisorGroup.Get("/transcript", aiHandler.Transcript)
}
