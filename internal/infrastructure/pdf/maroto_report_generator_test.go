package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clasificador/internal/domain/entity"
)

func TestGenerateTableReport(t *testing.T) {
	data := &entity.TableData{
		Table:   "classification",
		Columns: []string{"id_class", "short_name", "name", "id_unit", "id_main_class"},
		Rows: [][]any{
			{int32(1), "ALI", "Alimentos", int32(1), nil},
			{int32(2), "BEB", "Bebidas", int32(2), int32(1)},
		},
	}

	out, err := NewMarotoReportGenerator().GenerateTableReport(context.Background(), "Clasificación", data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateTableReport_Vacia(t *testing.T) {
	data := &entity.TableData{Columns: []string{"id_unit", "short_name", "name", "code"}}

	out, err := NewMarotoReportGenerator().GenerateTableReport(context.Background(), "Unidad", data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestColumnWidths(t *testing.T) {
	assert.Equal(t, []int{2, 2, 4, 2, 2}, columnWidths([]string{"id_class", "short_name", "name", "id_unit", "id_main_class"}))
	assert.Equal(t, []int{3, 3, 3, 3}, columnWidths([]string{"id_unit", "short_name", "name", "code"}))
	assert.Equal(t, []int{5, 7}, columnWidths([]string{"id_class", "short_name"}))
	assert.Nil(t, columnWidths(nil))
}
