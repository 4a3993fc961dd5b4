package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

func TestTables_OrdenFijo(t *testing.T) {
	uc := usecase.NewTableUseCase(&tableRepoMock{})

	tables := uc.Tables()
	require.Len(t, tables, 3)
	assert.Equal(t, "classification", tables[0].Name, "la primera tabla es la vista inicial")
	assert.Equal(t, "product", tables[1].Name)
	assert.Equal(t, "unit", tables[2].Name)
}

func TestList_DevuelveColumnasYFilas(t *testing.T) {
	repo := &tableRepoMock{}
	repo.On("ListAll", mock.Anything, "unit").Return(&entity.TableData{
		Table:   "unit",
		Columns: []string{"id_unit", "short_name", "name", "code"},
		Rows:    [][]any{{int32(1), "kg", "Kilogramo", "166"}},
	}, nil)

	out, err := usecase.NewTableUseCase(repo).List(context.Background(), "unit")
	require.NoError(t, err)
	assert.Equal(t, "Unidad", out.Title)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, [][]string{{"1", "kg", "Kilogramo", "166"}}, out.StringRows())
}

func TestList_TablaVacia(t *testing.T) {
	repo := &tableRepoMock{}
	repo.On("ListAll", mock.Anything, "product").Return(&entity.TableData{Columns: []string{"id_product"}}, nil)

	out, err := usecase.NewTableUseCase(repo).List(context.Background(), "product")
	require.NoError(t, err)
	assert.True(t, out.Empty())
	assert.NotNil(t, out.Rows, "las filas vacías se serializan como []")
}

func TestList_TablaDesconocida(t *testing.T) {
	repo := &tableRepoMock{}
	_, err := usecase.NewTableUseCase(repo).List(context.Background(), "pg_user")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
	repo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestChildren_YProductosPorClase(t *testing.T) {
	ctx := context.Background()
	classes := &classRepoMock{}
	classes.On("FindChildren", ctx, int64(1)).Return([]entity.ClassRef{{ID: 1, ShortName: "ALI"}, {ID: 4, ShortName: "BEB"}}, nil)
	products := &productRepoMock{}
	products.On("ListByClass", ctx, int64(4)).Return([]*entity.Product(nil), nil)
	tx := &txRunnerStub{repo: &hierarchyRepoMock{}}

	children, err := usecase.NewClassificationUseCase(classes, tx).Children(ctx, 1)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "BEB", children[1].ShortName)

	list, err := usecase.NewProductUseCase(products, tx).ByClass(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestExport_DelegaEnCodificadores(t *testing.T) {
	ctx := context.Background()
	data := &entity.TableData{Table: "unit", Columns: []string{"id_unit"}, Rows: [][]any{{int32(1)}}}
	tables := &tableRepoMock{}
	tables.On("ListAll", ctx, "unit").Return(data, nil)
	classes := &classRepoMock{}
	classes.On("List", ctx).Return([]*entity.Classification{{ID: 1, ShortName: "A"}}, nil)
	enc := &encoderStub{}

	uc := usecase.NewExportUseCase(tables, classes, enc, enc, enc)

	var buf bytes.Buffer
	require.NoError(t, uc.CSV(ctx, "unit", "windows-1251", &buf))
	assert.Equal(t, "windows-1251", enc.charset)
	assert.Same(t, data, enc.data)

	buf.Reset()
	require.NoError(t, uc.Tree(ctx, &buf))
	assert.Len(t, enc.classes, 1)

	pdf, err := uc.Report(ctx, "unit")
	require.NoError(t, err)
	assert.Equal(t, "%PDF Unidad", string(pdf))

	assert.ErrorIs(t, uc.CSV(ctx, "otra", "", &buf), domain.ErrUnknownTable)
	_, err = uc.Report(ctx, "otra")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}
