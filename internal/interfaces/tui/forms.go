package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/clasificador/internal/application/usecase"
)

// Formularios de cada acción de la pantalla principal.

func newAddForm(deps Deps) *FormModel {
	tables := deps.Tables.Tables()
	var first []string
	if len(tables) > 0 {
		first, _ = deps.Records.Fields(tables[0].Name)
	}
	f := newForm(deps, "Agregar registro", first, func(ctx context.Context, table string, values map[string]string) (formResult, error) {
		out, err := deps.Records.Add(ctx, table, values)
		if err != nil {
			return formResult{}, err
		}
		return formResult{message: out.Message, reload: true}, nil
	})
	f.submitTxt = "Agregar"
	f.tables = tables
	f.fieldsFor = deps.Records.Fields
	f.updateFocus()
	return f
}

func newChangeClassForm(deps Deps) *FormModel {
	return newForm(deps, "Cambiar clase de producto", []string{"id_product", "id_class"},
		func(ctx context.Context, _ string, values map[string]string) (formResult, error) {
			productID, err := usecase.ParseID("id_product", values["id_product"])
			if err != nil {
				return formResult{}, err
			}
			classID, err := usecase.ParseID("id_class", values["id_class"])
			if err != nil {
				return formResult{}, err
			}
			if err := deps.Products.ChangeClass(ctx, productID, classID); err != nil {
				return formResult{}, err
			}
			return formResult{
				message: fmt.Sprintf("El producto %d ahora pertenece a la clase %d", productID, classID),
				reload:  true,
			}, nil
		})
}

func newFindProductsForm(deps Deps) *FormModel {
	f := newForm(deps, "Buscar productos por clase", []string{"id_class"},
		func(ctx context.Context, _ string, values map[string]string) (formResult, error) {
			classID, err := usecase.ParseID("id_class", values["id_class"])
			if err != nil {
				return formResult{}, err
			}
			products, err := deps.Products.ByClass(ctx, classID)
			if err != nil {
				return formResult{}, err
			}
			if len(products) == 0 {
				return formResult{message: "Productos no encontrados."}, nil
			}
			res := formResult{
				message: fmt.Sprintf("%d productos en la clase %d", len(products), classID),
				columns: []string{"id_product", "short_name", "name"},
			}
			for _, p := range products {
				res.rows = append(res.rows, []string{strconv.FormatInt(p.ID, 10), p.ShortName, p.Name})
			}
			return res, nil
		})
	f.submitTxt = "Buscar"
	return f
}

func newChangeParentForm(deps Deps) *FormModel {
	return newForm(deps, "Cambiar clase padre", []string{"id_class", "id_main_class"},
		func(ctx context.Context, _ string, values map[string]string) (formResult, error) {
			classID, err := usecase.ParseID("id_class", values["id_class"])
			if err != nil {
				return formResult{}, err
			}
			parentID, err := usecase.ParseID("id_main_class", values["id_main_class"])
			if err != nil {
				return formResult{}, err
			}
			if err := deps.Classes.ChangeParent(ctx, classID, parentID); err != nil {
				return formResult{}, err
			}
			return formResult{
				message: fmt.Sprintf("La clase %d ahora depende de la clase %d", classID, parentID),
				reload:  true,
			}, nil
		})
}

func newFindChildrenForm(deps Deps) *FormModel {
	f := newForm(deps, "Buscar descendientes de clase", []string{"id_class"},
		func(ctx context.Context, _ string, values map[string]string) (formResult, error) {
			classID, err := usecase.ParseID("id_class", values["id_class"])
			if err != nil {
				return formResult{}, err
			}
			children, err := deps.Classes.Children(ctx, classID)
			if err != nil {
				return formResult{}, err
			}
			if len(children) == 0 {
				return formResult{message: "La clase no existe."}, nil
			}
			res := formResult{
				message: fmt.Sprintf("%d clases en el subárbol de %d", len(children), classID),
				columns: []string{"id_class", "short_name"},
			}
			for _, c := range children {
				res.rows = append(res.rows, []string{strconv.FormatInt(c.ID, 10), c.ShortName})
			}
			return res, nil
		})
	f.submitTxt = "Buscar"
	return f
}
