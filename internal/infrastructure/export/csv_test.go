package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

func sampleTable() *entity.TableData {
	return &entity.TableData{
		Table:   "unit",
		Columns: []string{"id_unit", "short_name", "name", "code"},
		Rows: [][]any{
			{int32(1), "kg", "Kilogramo", "166"},
			{int32(2), "m", "Metro, lineal", nil},
		},
	}
}

func TestEncodeTable_UTF8PorDefecto(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVEncoder().EncodeTable(&buf, sampleTable(), ""))

	want := "id_unit,short_name,name,code\n1,kg,Kilogramo,166\n2,m,\"Metro, lineal\",\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeTable_Windows1251(t *testing.T) {
	data := &entity.TableData{Columns: []string{"name"}, Rows: [][]any{{"Молоко"}}}

	var buf bytes.Buffer
	require.NoError(t, NewCSVEncoder().EncodeTable(&buf, data, "Windows-1251"))

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "name\nМолоко\n", string(decoded))
	assert.NotEqual(t, "name\nМолоко\n", buf.String(), "la salida no debe quedar en UTF-8")
}

func TestEncodeTable_KOI8R(t *testing.T) {
	data := &entity.TableData{Columns: []string{"name"}, Rows: [][]any{{"Хлеб"}}}

	var buf bytes.Buffer
	require.NoError(t, NewCSVEncoder().EncodeTable(&buf, data, "koi8-r"))

	decoded, err := charmap.KOI8R.NewDecoder().Bytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "name\nХлеб\n", string(decoded))
}

func TestEncodeTable_CaracterNoRepresentable(t *testing.T) {
	data := &entity.TableData{Columns: []string{"name"}, Rows: [][]any{{"Молоко"}}}

	var buf bytes.Buffer
	err := NewCSVEncoder().EncodeTable(&buf, data, "iso-8859-1")
	assert.Error(t, err)
}

func TestEncodeTable_CharsetDesconocido(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVEncoder().EncodeTable(&buf, sampleTable(), "ebcdic")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, buf.Len())
}

func TestCharsets(t *testing.T) {
	assert.Equal(t, []string{"utf-8", "iso-8859-1", "koi8-r", "windows-1251"}, Charsets())
}
