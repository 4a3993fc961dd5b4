package dto

import "fmt"

// TableInfo describe una tabla administrable y los campos de su formulario de alta.
type TableInfo struct {
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Key    string   `json:"key"`
	Fields []string `json:"fields"`
}

// TableDataResponse contenido completo de una tabla.
type TableDataResponse struct {
	Table   string   `json:"table"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Count   int      `json:"count"`
}

// Empty indica si la tabla no tiene filas.
func (r *TableDataResponse) Empty() bool {
	return r == nil || r.Count == 0
}

// StringRows devuelve las filas como texto; NULL se muestra vacío.
func (r *TableDataResponse) StringRows() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			if v != nil {
				out[i][j] = fmt.Sprint(v)
			}
		}
	}
	return out
}

// AddRecordRequest alta genérica: los valores llegan como texto, igual que desde un formulario.
type AddRecordRequest struct {
	Fields map[string]string `json:"fields"`
}

// CreatedRecordResponse resultado de un alta.
type CreatedRecordResponse struct {
	Table   string `json:"table"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
