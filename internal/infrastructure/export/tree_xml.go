package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

var _ usecase.TreeEncoder = (*TreeXMLEncoder)(nil)

// TreeXMLEncoder escribe la jerarquía de clases como XML anidado:
//
//	<classification>
//	  <class id="1" short_name="ALI" name="Alimentos" unit="1">
//	    <class id="2" .../>
//	  </class>
//	</classification>
type TreeXMLEncoder struct {
	Indent int
}

// NewTreeXMLEncoder crea el codificador con indentación de dos espacios.
func NewTreeXMLEncoder() *TreeXMLEncoder {
	return &TreeXMLEncoder{Indent: 2}
}

// EncodeTree escribe todas las clases. Las raíces, y las clases cuyo padre no está
// en la lista, cuelgan del elemento raíz. Hermanos en orden de id.
func (e *TreeXMLEncoder) EncodeTree(w io.Writer, classes []*entity.Classification) error {
	byID := make(map[int64]*entity.Classification, len(classes))
	for _, c := range classes {
		byID[c.ID] = c
	}
	children := make(map[int64][]*entity.Classification)
	var roots []*entity.Classification
	for _, c := range classes {
		if c.ParentID == nil || byID[*c.ParentID] == nil || *c.ParentID == c.ID {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("classification")

	visited := make(map[int64]bool, len(classes))
	var add func(parent *etree.Element, list []*entity.Classification)
	add = func(parent *etree.Element, list []*entity.Classification) {
		sortByID(list)
		for _, c := range list {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			el := parent.CreateElement("class")
			el.CreateAttr("id", strconv.FormatInt(c.ID, 10))
			el.CreateAttr("short_name", c.ShortName)
			el.CreateAttr("name", c.Name)
			el.CreateAttr("unit", strconv.FormatInt(c.UnitID, 10))
			add(el, children[c.ID])
		}
	}
	add(root, roots)

	// Lo que quede sin visitar forma un ciclo que la base no debería permitir;
	// se cuelga de la raíz para no perder filas.
	var rest []*entity.Classification
	for _, c := range classes {
		if !visited[c.ID] {
			rest = append(rest, c)
		}
	}
	if len(rest) > 0 {
		add(root, rest)
	}

	if e.Indent > 0 {
		doc.Indent(e.Indent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("xml: %w", err)
	}
	return nil
}

func sortByID(list []*entity.Classification) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}
