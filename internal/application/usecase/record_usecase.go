package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// RecordUseCase alta genérica de registros a partir de campos de formulario (texto).
// Convierte los tipos y delega en el caso de uso de cada tabla.
type RecordUseCase struct {
	classes  *ClassificationUseCase
	products *ProductUseCase
	units    *UnitUseCase
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase(classes *ClassificationUseCase, products *ProductUseCase, units *UnitUseCase) *RecordUseCase {
	return &RecordUseCase{classes: classes, products: products, units: units}
}

// Fields devuelve los campos del formulario de alta de la tabla, en orden.
func (uc *RecordUseCase) Fields(table string) ([]string, error) {
	def, ok := entity.LookupTable(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	return def.Fields, nil
}

// Add valida y convierte los campos y crea el registro. Campos que no pertenecen
// a la tabla se rechazan.
func (uc *RecordUseCase) Add(ctx context.Context, table string, fields map[string]string) (*dto.CreatedRecordResponse, error) {
	def, ok := entity.LookupTable(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	for name := range fields {
		if !contains(def.Fields, name) {
			return nil, fmt.Errorf("%w: campo desconocido %q para %s", domain.ErrInvalidInput, name, table)
		}
	}
	v := func(name string) string { return strings.TrimSpace(fields[name]) }

	var id int64
	switch table {
	case entity.TableClassification:
		unitID, err := ParseID("id_unit", v("id_unit"))
		if err != nil {
			return nil, err
		}
		parentID, err := ParseOptionalID("id_main_class", v("id_main_class"))
		if err != nil {
			return nil, err
		}
		out, err := uc.classes.Create(ctx, dto.CreateClassificationRequest{
			ShortName: v("short_name"), Name: v("name"), UnitID: unitID, ParentID: parentID,
		})
		if err != nil {
			return nil, err
		}
		id = out.ID
	case entity.TableProduct:
		classID, err := ParseID("id_class", v("id_class"))
		if err != nil {
			return nil, err
		}
		out, err := uc.products.Create(ctx, dto.CreateProductRequest{
			ShortName: v("short_name"), Name: v("name"), ClassID: classID,
		})
		if err != nil {
			return nil, err
		}
		id = out.ID
	case entity.TableUnit:
		out, err := uc.units.Create(ctx, dto.CreateUnitRequest{
			ShortName: v("short_name"), Name: v("name"), Code: v("code"),
		})
		if err != nil {
			return nil, err
		}
		id = out.ID
	}

	return &dto.CreatedRecordResponse{
		Table:   table,
		ID:      id,
		Message: fmt.Sprintf("registro %d agregado a la tabla %s", id, table),
	}, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
