package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/application/advisor"
	appanalytics "github.com/girochef/girochef-api/internal/application/analytics"
	"github.com/girochef/girochef-api/internal/application/export"
	"github.com/girochef/girochef-api/internal/application/inventory"
	"github.com/girochef/girochef-api/internal/application/ports"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/application/usecase"
	"github.com/girochef/girochef-api/internal/domain/notification"
	infraai "github.com/girochef/girochef-api/internal/infrastructure/ai"
	"github.com/girochef/girochef-api/internal/infrastructure/backend"
	infrapdf "github.com/girochef/girochef-api/internal/infrastructure/pdf"
	"github.com/girochef/girochef-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/girochef/girochef-api/internal/interfaces/http"
	"github.com/girochef/girochef-api/pkg/config"
	"github.com/girochef/girochef-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	be, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia")
	}
	defer be.Close()

	s := store.New(be.KV, log, store.Options{
		KeyPrefix:  cfg.Store.KeyPrefix,
		Currency:   cfg.App.Currency,
		Thresholds: thresholds(cfg.Alerts, log),
	})
	s.Load(ctx)

	companyUC := usecase.NewCompanyUseCase(s)
	transactionUC := usecase.NewTransactionUseCase(s)
	productUC := usecase.NewProductUseCase(s, be.Movements)
	menuUC := usecase.NewMenuUseCase(s)
	supplierUC := usecase.NewSupplierUseCase(s)
	shoppingUC := usecase.NewShoppingUseCase(s)
	notificationUC := usecase.NewNotificationUseCase(s)
	outputUC := inventory.NewOutputUseCase(s, be.Movements, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(s)
	dashboardUC := appanalytics.NewDashboardUseCase(s)

	advisorUC := advisor.NewUseCase(llm(ctx, cfg.AI, log), dashboardUC, log, advisor.Options{Timeout: cfg.AI.Timeout})

	// PDF y XLSX comparten el mismo documento neutro
	exportUC := export.NewUseCase(s, transactionUC, shoppingUC, dashboardUC,
		infrapdf.NewMarotoPDFGenerator(), spreadsheet.NewExcelRenderer(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, " + httpRouter.HeaderCompanyID,
		ExposeHeaders: fiber.HeaderContentDisposition,
	}))
	if cfg.App.Env == "development" {
		app.Use(fiberlogger.New())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GIROCHEF API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		TransactionUC:  transactionUC,
		ProductUC:      productUC,
		MenuUC:         menuUC,
		SupplierUC:     supplierUC,
		ShoppingUC:     shoppingUC,
		NotificationUC: notificationUC,
		Outputs:        outputUC,
		Replenishment:  replenishmentUC,
		DashboardUC:    dashboardUC,
		Advisor:        advisorUC,
		Export:         exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// thresholds convierte los umbrales configurados; un valor inválido usa el de fábrica.
func thresholds(a config.AlertsConfig, log *logger.Logger) *notification.Thresholds {
	th := notification.DefaultThresholds()
	if v, err := decimal.NewFromString(a.LowStockThreshold); err == nil {
		th.LowStock = v
	} else {
		log.Warn().Str("value", a.LowStockThreshold).Msg("LOW_STOCK_THRESHOLD inválido, usando el de fábrica")
	}
	if v, err := decimal.NewFromString(a.HighWasteThreshold); err == nil {
		th.HighWaste = v
	} else {
		log.Warn().Str("value", a.HighWasteThreshold).Msg("HIGH_WASTE_THRESHOLD inválido, usando el de fábrica")
	}
	return &th
}

// llm elige el proveedor del asesor. Sin API key el asesor responde siempre con el texto de respaldo.
func llm(ctx context.Context, c config.AIConfig, log *logger.Logger) ports.LLMService {
	if c.Provider == config.AIProviderAnthropic {
		if c.AnthropicAPIKey == "" {
			log.Warn().Msg("ANTHROPIC_API_KEY vacío: el asesor usará respuestas de respaldo")
		}
		return infraai.NewAnthropicService(c.AnthropicAPIKey, c.AnthropicModel)
	}
	svc, err := infraai.NewGeminiService(ctx, c.GeminiAPIKey, c.GeminiModel)
	if err != nil {
		log.Warn().Err(err).Msg("cliente Gemini no disponible: el asesor usará respuestas de respaldo")
		svc, _ = infraai.NewGeminiService(ctx, "", c.GeminiModel)
	}
	return svc
}
