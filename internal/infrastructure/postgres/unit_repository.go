package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q       Querier
	catalog *Catalog
}

// NewUnitRepository construye el adaptador de persistencia para unidades.
func NewUnitRepository(q Querier, catalog *Catalog) *UnitRepo {
	return &UnitRepo{q: q, catalog: catalog}
}

// Create invoca create_unit.
func (r *UnitRepo) Create(ctx context.Context, unit *entity.Unit) (int64, error) {
	query, err := r.catalog.Get("unit.create")
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.q.QueryRow(ctx, query, unit.ShortName, unit.Name, unit.Code).Scan(&id); err != nil {
		return 0, fmt.Errorf("create_unit: %w", mapError(err))
	}
	unit.ID = id
	return id, nil
}
