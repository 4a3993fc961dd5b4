package tui

import (
	"context"

	"github.com/jhoicas/clasificador/internal/application/dto"
)

// Contratos mínimos que usa la interfaz; los implementan los casos de uso.

type tableService interface {
	Tables() []dto.TableInfo
	List(ctx context.Context, table string) (*dto.TableDataResponse, error)
}

type recordService interface {
	Fields(table string) ([]string, error)
	Add(ctx context.Context, table string, fields map[string]string) (*dto.CreatedRecordResponse, error)
}

type classificationService interface {
	Children(ctx context.Context, classID int64) ([]dto.ClassChildResponse, error)
	ChangeParent(ctx context.Context, classID, parentID int64) error
}

type productService interface {
	ByClass(ctx context.Context, classID int64) ([]dto.ProductResponse, error)
	ChangeClass(ctx context.Context, productID, classID int64) error
}

// Deps dependencias de la interfaz de terminal.
type Deps struct {
	Ctx      context.Context
	Tables   tableService
	Records  recordService
	Classes  classificationService
	Products productService
	Styles   Styles
	// Notice se muestra en la primera pantalla hasta la primera tecla
	// (por ejemplo, que no se encontró la hoja de estilos).
	Notice string
}

func (d Deps) ctx() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}
