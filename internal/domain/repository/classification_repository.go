package repository

import (
	"context"

	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// ClassificationRepository define el puerto de persistencia para Classification (DIP).
type ClassificationRepository interface {
	// Create invoca create_class y devuelve el id asignado.
	Create(ctx context.Context, class *entity.Classification) (int64, error)
	List(ctx context.Context) ([]*entity.Classification, error)
	// FindChildren devuelve lo que devuelve find_children: la clase y todos sus descendientes.
	FindChildren(ctx context.Context, classID int64) ([]entity.ClassRef, error)
}
