package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

var _ repository.ClassificationRepository = (*ClassificationRepo)(nil)

// ClassificationRepo implementación del puerto ClassificationRepository sobre PostgreSQL.
type ClassificationRepo struct {
	q       Querier
	catalog *Catalog
}

// NewClassificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClassificationRepository(q Querier, catalog *Catalog) *ClassificationRepo {
	return &ClassificationRepo{q: q, catalog: catalog}
}

// Create invoca create_class; id_main_class NULL crea una clase raíz.
func (r *ClassificationRepo) Create(ctx context.Context, class *entity.Classification) (int64, error) {
	query, err := r.catalog.Get("classification.create")
	if err != nil {
		return 0, err
	}
	var id int64
	err = r.q.QueryRow(ctx, query, class.ShortName, class.Name, class.UnitID, class.ParentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create_class: %w", mapError(err))
	}
	class.ID = id
	return id, nil
}

// List devuelve todas las clases ordenadas por id.
func (r *ClassificationRepo) List(ctx context.Context) ([]*entity.Classification, error) {
	query, err := r.catalog.Get("classification.list")
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classification: %w", mapError(err))
	}
	defer rows.Close()
	var list []*entity.Classification
	for rows.Next() {
		var c entity.Classification
		if err := rows.Scan(&c.ID, &c.ShortName, &c.Name, &c.UnitID, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// FindChildren devuelve (id_class, short_name) de find_children(classID).
func (r *ClassificationRepo) FindChildren(ctx context.Context, classID int64) ([]entity.ClassRef, error) {
	query, err := r.catalog.Get("classification.children")
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("find_children: %w", mapError(err))
	}
	defer rows.Close()
	var list []entity.ClassRef
	for rows.Next() {
		var ref entity.ClassRef
		if err := rows.Scan(&ref.ID, &ref.ShortName); err != nil {
			return nil, fmt.Errorf("scan find_children: %w", err)
		}
		list = append(list, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find_children: %w", mapError(err))
	}
	return list, nil
}
