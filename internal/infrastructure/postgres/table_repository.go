package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo lee tablas completas con las consultas "tables.<nombre>" del catálogo.
// Solo se aceptan las tablas de entity.Tables; el nombre nunca se concatena al SQL.
type TableRepo struct {
	q       Querier
	catalog *Catalog
}

// NewTableRepository construye el adaptador.
func NewTableRepository(q Querier, catalog *Catalog) *TableRepo {
	return &TableRepo{q: q, catalog: catalog}
}

// ListAll devuelve todas las filas de la tabla con sus nombres de columna.
func (r *TableRepo) ListAll(ctx context.Context, table string) (*entity.TableData, error) {
	if _, ok := entity.LookupTable(table); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	data, err := r.catalog.Fetch(ctx, r.q, "tables."+table)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", table, err)
	}
	data.Table = table
	return data, nil
}
