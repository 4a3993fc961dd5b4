package entity

import "fmt"

// Nombres de las tablas administrables.
const (
	TableClassification = "classification"
	TableProduct        = "product"
	TableUnit           = "unit"
)

// TableDef describe una tabla administrable: título para la interfaz, clave primaria
// y campos que se piden al agregar un registro (en orden de formulario).
type TableDef struct {
	Name   string
	Title  string
	Key    string
	Fields []string
}

// Tables es el conjunto fijo y ordenado de tablas; la primera es la vista inicial.
var Tables = []TableDef{
	{
		Name:   TableClassification,
		Title:  "Clasificación",
		Key:    "id_class",
		Fields: []string{"short_name", "name", "id_unit", "id_main_class"},
	},
	{
		Name:   TableProduct,
		Title:  "Producto",
		Key:    "id_product",
		Fields: []string{"short_name", "name", "id_class"},
	},
	{
		Name:   TableUnit,
		Title:  "Unidad",
		Key:    "id_unit",
		Fields: []string{"short_name", "name", "code"},
	},
}

// LookupTable busca la definición de una tabla por nombre.
func LookupTable(name string) (TableDef, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableDef{}, false
}

// TableData es el volcado genérico de una consulta: nombres de columna y filas.
type TableData struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// Empty indica si la consulta no devolvió filas.
func (d *TableData) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// Cell devuelve el valor de una celda como texto; NULL se muestra vacío.
func (d *TableData) Cell(row, col int) string {
	v := d.Rows[row][col]
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// StringRows devuelve todas las filas como texto.
func (d *TableData) StringRows() [][]string {
	out := make([][]string, len(d.Rows))
	for i := range d.Rows {
		out[i] = make([]string, len(d.Columns))
		for j := range d.Columns {
			out[i][j] = d.Cell(i, j)
		}
	}
	return out
}
