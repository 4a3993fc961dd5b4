package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// hierarchyLockKey identifica el advisory lock que serializa los cambios de jerarquía.
const hierarchyLockKey int64 = 0x636c6173 // "clas"

var _ repository.HierarchyRepository = (*HierarchyRepo)(nil)

// HierarchyRepo ejecuta las consultas de cambio de jerarquía; se crea atado a una tx.
type HierarchyRepo struct {
	q       Querier
	catalog *Catalog
}

// NewHierarchyRepository construye el repositorio sobre q (normalmente pgx.Tx).
func NewHierarchyRepository(q Querier, catalog *Catalog) *HierarchyRepo {
	return &HierarchyRepo{q: q, catalog: catalog}
}

// Lock toma pg_advisory_xact_lock; se libera con el commit o rollback.
func (r *HierarchyRepo) Lock(ctx context.Context) error {
	query, err := r.catalog.Get("classification.lock")
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, query, hierarchyLockKey); err != nil {
		return fmt.Errorf("lock jerarquía: %w", mapError(err))
	}
	return nil
}

func (r *HierarchyRepo) SubtreeSize(ctx context.Context, classID int64) (int, error) {
	query, err := r.catalog.Get("classification.subtree_size")
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.q.QueryRow(ctx, query, classID).Scan(&n); err != nil {
		return 0, fmt.Errorf("find_children: %w", mapError(err))
	}
	return int(n), nil
}

func (r *HierarchyRepo) HasCycle(ctx context.Context, childID, newParentID int64) (bool, error) {
	query, err := r.catalog.Get("classification.cycle")
	if err != nil {
		return false, err
	}
	var cycle bool
	if err := r.q.QueryRow(ctx, query, childID, newParentID).Scan(&cycle); err != nil {
		return false, fmt.Errorf("cycle: %w", mapError(err))
	}
	return cycle, nil
}

func (r *HierarchyRepo) SetParent(ctx context.Context, classID, parentID int64) error {
	return r.update(ctx, "classification.set_parent", classID, parentID)
}

func (r *HierarchyRepo) SetProductClass(ctx context.Context, productID, classID int64) error {
	return r.update(ctx, "product.set_class", productID, classID)
}

func (r *HierarchyRepo) update(ctx context.Context, key string, id, ref int64) error {
	query, err := r.catalog.Get(key)
	if err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, query, id, ref)
	if err != nil {
		return fmt.Errorf("%s: %w", key, mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return nil
}
