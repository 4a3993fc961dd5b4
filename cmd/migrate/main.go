package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/clasificador/internal/infrastructure/postgres"
	"github.com/jhoicas/clasificador/pkg/config"
	"github.com/jhoicas/clasificador/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "archivo ini (por defecto CONFIG_FILE o database.ini)")
		dsn        = flag.String("dsn", "", "connection string; tiene prioridad sobre la configuración")
		up         = flag.Bool("up", false, "aplicar todas las migraciones pendientes")
		down       = flag.Bool("down", false, "revertir todas las migraciones")
		steps      = flag.Int("steps", 0, "cantidad de migraciones (positivo=up, negativo=down)")
		version    = flag.Bool("version", false, "mostrar la versión actual")
		force      = flag.Int("force", -1, "forzar la versión (usar con cuidado)")
	)
	flag.Parse()

	forceSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "force" {
			forceSet = true
		}
	})

	log := logger.New(logger.Config{Env: "development", Level: "info", Out: os.Stderr})

	if *dsn == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar configuración")
		}
		*dsn = cfg.DB.ConnectionString()
	}

	m, err := postgres.NewMigrator(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("obtener versión")
		}
		fmt.Printf("version: %d, dirty: %v\n", v, dirty)
	case forceSet:
		if err := m.Force(*force); err != nil {
			log.Fatal().Err(err).Msg("forzar versión")
		}
		log.Info().Int("version", *force).Msg("versión forzada")
	case *up:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migraciones up")
		}
		log.Info().Msg("migraciones aplicadas")
	case *down:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migraciones down")
		}
		log.Info().Msg("migraciones revertidas")
	case *steps != 0:
		if err := m.Steps(*steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migraciones por pasos")
		}
		log.Info().Int("steps", *steps).Msg("pasos aplicados")
	default:
		fmt.Println("uso: migrate [-config database.ini | -dsn <connection-string>] [-up|-down|-steps N|-version|-force N]")
		flag.PrintDefaults()
	}
}
