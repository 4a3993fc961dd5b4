package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q       Querier
	catalog *Catalog
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier, catalog *Catalog) *ProductRepo {
	return &ProductRepo{q: q, catalog: catalog}
}

// Create invoca create_product; el procedimiento rechaza clases no terminales.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query, err := r.catalog.Get("product.create")
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.q.QueryRow(ctx, query, product.ShortName, product.Name, product.ClassID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create_product: %w", mapError(err))
	}
	product.ID = id
	return id, nil
}

// ListByClass lista los productos asignados directamente a la clase.
func (r *ProductRepo) ListByClass(ctx context.Context, classID int64) ([]*entity.Product, error) {
	query, err := r.catalog.Get("product.by_class")
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("list products by class: %w", mapError(err))
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ShortName, &p.Name, &p.ClassID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
