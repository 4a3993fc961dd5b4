package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/jhoicas/clasificador/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down|version",
	Short:     "Aplicar o revertir el esquema y los procedimientos almacenados",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "version"},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
		if err != nil {
			return err
		}
		defer m.Close()

		out := cmd.OutOrStdout()
		switch args[0] {
		case "up":
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migrate up: %w", err)
			}
			printSuccess(out, "Migraciones aplicadas")
		case "down":
			if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migrate down: %w", err)
			}
			printSuccess(out, "Migraciones revertidas")
		case "version":
			v, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				printMuted(out, "Sin migraciones aplicadas")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate version: %w", err)
			}
			fmt.Fprintf(out, "version: %d, dirty: %v\n", v, dirty)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
