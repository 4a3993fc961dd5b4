package export

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clasificador/internal/domain/entity"
)

func ptr(v int64) *int64 { return &v }

func TestEncodeTree_Anidado(t *testing.T) {
	classes := []*entity.Classification{
		{ID: 3, ShortName: "JUG", Name: "Jugos", UnitID: 2, ParentID: ptr(2)},
		{ID: 1, ShortName: "ALI", Name: "Alimentos", UnitID: 1},
		{ID: 2, ShortName: "BEB", Name: "Bebidas & más", UnitID: 2, ParentID: ptr(1)},
		{ID: 4, ShortName: "LAC", Name: "Lácteos", UnitID: 1, ParentID: ptr(1)},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTreeXMLEncoder().EncodeTree(&buf, classes))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "classification", root.Tag)

	top := root.SelectElements("class")
	require.Len(t, top, 1)
	assert.Equal(t, "ALI", top[0].SelectAttrValue("short_name", ""))

	kids := top[0].SelectElements("class")
	require.Len(t, kids, 2)
	assert.Equal(t, "2", kids[0].SelectAttrValue("id", ""))
	assert.Equal(t, "Bebidas & más", kids[0].SelectAttrValue("name", ""))
	assert.Equal(t, "4", kids[1].SelectAttrValue("id", ""))

	jug := doc.FindElement("//class[@id='3']")
	require.NotNil(t, jug)
	assert.Equal(t, "2", jug.Parent().SelectAttrValue("id", ""))
}

func TestEncodeTree_HuerfanaVaALaRaiz(t *testing.T) {
	classes := []*entity.Classification{
		{ID: 5, ShortName: "X", Name: "Huérfana", UnitID: 1, ParentID: ptr(99)},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTreeXMLEncoder().EncodeTree(&buf, classes))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	assert.Len(t, doc.Root().SelectElements("class"), 1)
}

func TestEncodeTree_Vacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTreeXMLEncoder().EncodeTree(&buf, nil))
	assert.Contains(t, buf.String(), "<classification/>")
}
