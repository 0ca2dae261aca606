// seed prepara el almacén configurado (STORE_DRIVER) con los datos de demostración
// y opcionalmente importa insumos desde una planilla CSV exportada de Excel.
//
// Uso: go run ./cmd/seed [ruta/insumos.csv] [id_empresa]
// Sin argumentos solo carga el almacén; las colecciones vacías reciben los datos de demostración.
// La planilla se lee en ISO-8859-1 salvo que CSV_UTF8=true.
package main

import (
	"context"
	"os"

	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/application/usecase"
	"github.com/girochef/girochef-api/internal/infrastructure/backend"
	"github.com/girochef/girochef-api/pkg/config"
	"github.com/girochef/girochef-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	ctx := context.Background()

	be, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia")
	}
	defer be.Close()

	s := store.New(be.KV, log, store.Options{KeyPrefix: cfg.Store.KeyPrefix, Currency: cfg.App.Currency})
	s.Load(ctx)
	log.Info().Str("store", cfg.Store.Driver).Msg("almacén inicializado")

	if len(os.Args) < 2 {
		return
	}
	companyID := ""
	if len(os.Args) > 2 {
		companyID = os.Args[2]
	}
	companies := usecase.NewCompanyUseCase(s)
	company := companies.Resolve(companyID)

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("abrir planilla")
	}
	defer f.Close()

	rows, err := readProducts(f, os.Getenv("CSV_UTF8") != "true")
	if err != nil {
		log.Fatal().Err(err).Msg("leer planilla")
	}

	products := usecase.NewProductUseCase(s, be.Movements)
	imported := 0
	for i, in := range rows {
		if _, err := products.Create(ctx, company.ID, in); err != nil {
			log.Warn().Err(err).Int("fila", i+2).Str("insumo", in.Name).Msg("insumo omitido")
			continue
		}
		imported++
	}
	log.Info().
		Str("empresa", company.Name).
		Int("importados", imported).
		Int("omitidos", len(rows)-imported).
		Msg("importación finalizada")
}
