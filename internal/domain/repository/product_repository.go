package repository

import (
	"context"

	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create invoca create_product y devuelve el id asignado.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	ListByClass(ctx context.Context, classID int64) ([]*entity.Product, error)
}
