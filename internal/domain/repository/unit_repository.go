package repository

import (
	"context"

	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit (DIP).
type UnitRepository interface {
	// Create invoca create_unit y devuelve el id asignado.
	Create(ctx context.Context, unit *entity.Unit) (int64, error)
}
