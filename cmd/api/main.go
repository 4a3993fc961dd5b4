package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/clasificador/internal/application/auth"
	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/clasificador/internal/infrastructure/pdf"
	"github.com/jhoicas/clasificador/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/clasificador/internal/interfaces/http"
	"github.com/jhoicas/clasificador/pkg/config"
	"github.com/jhoicas/clasificador/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	configPath := flag.String("config", "", "archivo ini (por defecto CONFIG_FILE o database.ini)")
	migrate := flag.Bool("migrate", false, "aplicar migraciones pendientes antes de arrancar")
	flag.Parse()

	cfg, err := config.Load(*configPath)
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
		Msg("iniciando aplicación")

	if *migrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, postgres.APIPool)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	catalog, err := postgres.LoadCatalog(cfg.Files.Queries)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Files.Queries).Msg("catálogo de consultas")
	}

	tableRepo := postgres.NewTableRepository(pool, catalog)
	classRepo := postgres.NewClassificationRepository(pool, catalog)
	productRepo := postgres.NewProductRepository(pool, catalog)
	unitRepo := postgres.NewUnitRepository(pool, catalog)
	txRunner := postgres.NewTxRunner(pool, catalog)

	tableUC := usecase.NewTableUseCase(tableRepo)
	classUC := usecase.NewClassificationUseCase(classRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	recordUC := usecase.NewRecordUseCase(classUC, productUC, unitUC)
	exportUC := usecase.NewExportUseCase(tableRepo, classRepo,
		export.NewCSVEncoder(), export.NewTreeXMLEncoder(), infrapdf.NewMarotoReportGenerator())

	authUC := auth.NewAuthUseCase(auth.Config{
		Secret:            cfg.Auth.JWTSecret,
		ExpMinutes:        cfg.Auth.JWTExpiration,
		Issuer:            cfg.Auth.JWTIssuer,
		AdminUser:         cfg.Auth.AdminUser,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
	})
	if cfg.Auth.JWTSecret == "" || cfg.Auth.AdminPasswordHash == "" {
		log.Warn().Msg("JWT_SECRET o ADMIN_PASSWORD_HASH sin definir: las escrituras quedan deshabilitadas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Clasificador API",
		}))
	} else if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", swaggerFile).Msg("sin documentación swagger")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TableUC:          tableUC,
		RecordUC:         recordUC,
		ClassificationUC: classUC,
		ProductUC:        productUC,
		ExportUC:         exportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.Auth.JWTSecret,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := waitForShutdown(quit, listenErr); err != nil {
		log.Error().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP finalizado")
		pool.Close()
		os.Exit(1)
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// waitForShutdown bloquea hasta una señal (nil) o hasta que Listen termine.
// Un Listen que vuelve antes de la señal siempre es un fallo, aunque no traiga error.
func waitForShutdown(quit <-chan os.Signal, listenErr <-chan error) error {
	select {
	case <-quit:
		return nil
	case err := <-listenErr:
		if err == nil {
			err = errors.New("el servidor HTTP terminó sin señal de apagado")
		}
		return err
	}
}
