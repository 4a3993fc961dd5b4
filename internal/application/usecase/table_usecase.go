package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// TableUseCase listado de las tablas administrables.
type TableUseCase struct {
	repo repository.TableRepository
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(repo repository.TableRepository) *TableUseCase {
	return &TableUseCase{repo: repo}
}

// Tables devuelve las tablas en el orden de la vista; la primera es la inicial.
func (uc *TableUseCase) Tables() []dto.TableInfo {
	out := make([]dto.TableInfo, 0, len(entity.Tables))
	for _, t := range entity.Tables {
		out = append(out, toTableInfo(t))
	}
	return out
}

// List devuelve todas las filas de la tabla con sus columnas.
func (uc *TableUseCase) List(ctx context.Context, table string) (*dto.TableDataResponse, error) {
	def, ok := entity.LookupTable(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	data, err := uc.repo.ListAll(ctx, table)
	if err != nil {
		return nil, err
	}
	if data.Rows == nil {
		data.Rows = [][]any{}
	}
	return &dto.TableDataResponse{
		Table:   def.Name,
		Title:   def.Title,
		Columns: data.Columns,
		Rows:    data.Rows,
		Count:   len(data.Rows),
	}, nil
}

func toTableInfo(t entity.TableDef) dto.TableInfo {
	return dto.TableInfo{Name: t.Name, Title: t.Title, Key: t.Key, Fields: t.Fields}
}
