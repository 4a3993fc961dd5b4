package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool    *pgxpool.Pool
	catalog *Catalog
}

// NewTxRunner construye el runner con el pool y el catálogo de consultas.
func NewTxRunner(pool *pgxpool.Pool, catalog *Catalog) *TxRunner {
	return &TxRunner{pool: pool, catalog: catalog}
}

// RunHierarchy inicia una transacción, ejecuta fn con el repositorio de jerarquía
// atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunHierarchy(ctx context.Context, fn func(repository.HierarchyRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewHierarchyRepository(tx, r.catalog)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapError(err))
	}
	return nil
}
