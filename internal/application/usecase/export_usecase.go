package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// ExportUseCase exportaciones de solo lectura: CSV de una tabla, XML de la jerarquía e informe PDF.
type ExportUseCase struct {
	tables  repository.TableRepository
	classes repository.ClassificationRepository
	csv     TableEncoder
	tree    TreeEncoder
	report  TableReportGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	tables repository.TableRepository,
	classes repository.ClassificationRepository,
	csv TableEncoder,
	tree TreeEncoder,
	report TableReportGenerator,
) *ExportUseCase {
	return &ExportUseCase{tables: tables, classes: classes, csv: csv, tree: tree, report: report}
}

// CSV escribe la tabla en w con el charset pedido ("" = utf-8).
func (uc *ExportUseCase) CSV(ctx context.Context, table, charset string, w io.Writer) error {
	data, err := uc.load(ctx, table)
	if err != nil {
		return err
	}
	return uc.csv.EncodeTable(w, data, charset)
}

// Tree escribe la jerarquía de clases completa en w.
func (uc *ExportUseCase) Tree(ctx context.Context, w io.Writer) error {
	classes, err := uc.classes.List(ctx)
	if err != nil {
		return err
	}
	return uc.tree.EncodeTree(w, classes)
}

// Report genera el informe PDF de la tabla.
func (uc *ExportUseCase) Report(ctx context.Context, table string) ([]byte, error) {
	def, ok := entity.LookupTable(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	data, err := uc.tables.ListAll(ctx, table)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateTableReport(ctx, def.Title, data)
}

func (uc *ExportUseCase) load(ctx context.Context, table string) (*entity.TableData, error) {
	if _, ok := entity.LookupTable(table); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	return uc.tables.ListAll(ctx, table)
}
