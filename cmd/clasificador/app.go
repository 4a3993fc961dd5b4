package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clasificador/internal/application/auth"
	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/clasificador/internal/infrastructure/pdf"
	"github.com/jhoicas/clasificador/internal/infrastructure/postgres"
)

// services casos de uso conectados a la base; lo comparten la TUI y los subcomandos.
type services struct {
	pool     *pgxpool.Pool
	tables   *usecase.TableUseCase
	records  *usecase.RecordUseCase
	classes  *usecase.ClassificationUseCase
	products *usecase.ProductUseCase
	export   *usecase.ExportUseCase
}

func openServices(ctx context.Context) (*services, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB, postgres.ClientPool)
	if err != nil {
		return nil, err
	}
	catalog, err := postgres.LoadCatalog(cfg.Files.Queries)
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Debug().Strs("queries", catalog.Keys()).Msg("catálogo de consultas cargado")

	tableRepo := postgres.NewTableRepository(pool, catalog)
	classRepo := postgres.NewClassificationRepository(pool, catalog)
	txRunner := postgres.NewTxRunner(pool, catalog)

	classes := usecase.NewClassificationUseCase(classRepo, txRunner)
	products := usecase.NewProductUseCase(postgres.NewProductRepository(pool, catalog), txRunner)
	units := usecase.NewUnitUseCase(postgres.NewUnitRepository(pool, catalog))

	return &services{
		pool:     pool,
		tables:   usecase.NewTableUseCase(tableRepo),
		records:  usecase.NewRecordUseCase(classes, products, units),
		classes:  classes,
		products: products,
		export: usecase.NewExportUseCase(tableRepo, classRepo,
			export.NewCSVEncoder(), export.NewTreeXMLEncoder(), infrapdf.NewMarotoReportGenerator()),
	}, nil
}

func (s *services) Close() {
	s.pool.Close()
}

func newAuthUseCase() *auth.AuthUseCase {
	return auth.NewAuthUseCase(auth.Config{
		Secret:            cfg.Auth.JWTSecret,
		ExpMinutes:        cfg.Auth.JWTExpiration,
		Issuer:            cfg.Auth.JWTIssuer,
		AdminUser:         cfg.Auth.AdminUser,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
	})
}

// withServices abre la conexión, ejecuta fn y la cierra.
func withServices(ctx context.Context, fn func(*services) error) error {
	svc, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(svc)
}
