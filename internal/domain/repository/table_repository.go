package repository

import (
	"context"

	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// TableRepository lee el contenido completo de una tabla administrable.
type TableRepository interface {
	ListAll(ctx context.Context, table string) (*entity.TableData, error)
}
