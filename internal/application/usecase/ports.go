package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio
// de jerarquía atado a esa tx. Lo implementa postgres.TxRunner.
type TxRunner interface {
	RunHierarchy(ctx context.Context, fn func(repo repository.HierarchyRepository) error) error
}

// TableEncoder serializa una tabla (CSV) en el juego de caracteres pedido.
type TableEncoder interface {
	EncodeTable(w io.Writer, data *entity.TableData, charset string) error
}

// TreeEncoder serializa la jerarquía completa de clases.
type TreeEncoder interface {
	EncodeTree(w io.Writer, classes []*entity.Classification) error
}

// TableReportGenerator genera el informe imprimible de una tabla.
type TableReportGenerator interface {
	GenerateTableReport(ctx context.Context, title string, data *entity.TableData) ([]byte, error)
}
