package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
)

// migrations contiene el esquema y los procedimientos almacenados
// (find_children, cycle, create_class, create_product, create_unit).
//
//go:embed migrations/*.sql
var migrations embed.FS

// NewMigrator construye el migrador sobre las migraciones embebidas.
// El llamador debe cerrar el *migrate.Migrate devuelto.
func NewMigrator(dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("fuente de migraciones: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("crear migrador: %w", err)
	}
	return m, nil
}

// MigrateUp aplica todas las migraciones pendientes; sin cambios no es error.
func MigrateUp(dsn string) error {
	m, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
