package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

//go:embed queries.json
var defaultQueries []byte

// Catalog mapea claves de consulta a plantillas SQL con parámetros posicionales ($1, $2...).
// Los valores nunca se interpolan en el texto: siempre viajan como argumentos.
type Catalog struct {
	queries map[string]string
}

// LoadCatalog carga las consultas embebidas y, si path no está vacío, sobreescribe
// clave por clave con las del archivo JSON indicado.
func LoadCatalog(path string) (*Catalog, error) {
	c := &Catalog{queries: make(map[string]string)}
	if err := c.merge(defaultQueries); err != nil {
		return nil, fmt.Errorf("consultas embebidas: %w", err)
	}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer consultas: %w", err)
	}
	if err := c.merge(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// NewCatalog construye un catálogo a partir de un mapa (tests y herramientas).
func NewCatalog(queries map[string]string) *Catalog {
	c := &Catalog{queries: make(map[string]string, len(queries))}
	for k, v := range queries {
		c.queries[k] = v
	}
	return c
}

func (c *Catalog) merge(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("JSON de consultas inválido: %w", err)
	}
	for k, v := range m {
		if v == "" {
			return fmt.Errorf("consulta %q vacía", k)
		}
		c.queries[k] = v
	}
	return nil
}

// Get devuelve la plantilla SQL de una clave.
func (c *Catalog) Get(key string) (string, error) {
	q, ok := c.queries[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownQuery, key)
	}
	return q, nil
}

// Keys devuelve las claves ordenadas.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.queries))
	for k := range c.queries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fetch ejecuta la consulta de la clave con los argumentos dados y devuelve
// columnas y filas tal como llegan del servidor.
func (c *Catalog) Fetch(ctx context.Context, q Querier, key string, args ...any) (*entity.TableData, error) {
	sql, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	data := &entity.TableData{Columns: make([]string, len(fields))}
	for i, f := range fields {
		data.Columns[i] = f.Name
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("leer fila de %s: %w", key, err)
		}
		data.Rows = append(data.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return data, nil
}
