package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/application/usecase"
)

// ClassificationHandler consultas sobre la jerarquía y cambio de clase padre.
type ClassificationHandler struct {
	classes  *usecase.ClassificationUseCase
	products *usecase.ProductUseCase
	export   *usecase.ExportUseCase
}

// NewClassificationHandler construye el handler.
func NewClassificationHandler(classes *usecase.ClassificationUseCase, products *usecase.ProductUseCase, export *usecase.ExportUseCase) *ClassificationHandler {
	return &ClassificationHandler{classes: classes, products: products, export: export}
}

// Children godoc
// @Summary      Clase y descendientes
// @Description  Resultado de find_children: incluye la propia clase.
// @Tags         classifications
// @Produce      json
// @Param        id   path  int  true  "id_class"
// @Success      200  {array}   dto.ClassChildResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/classifications/{id}/children [get]
func (h *ClassificationHandler) Children(c *fiber.Ctx) error {
	id, err := usecase.ParseID("id_class", c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.classes.Children(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Productos de una clase
// @Tags         classifications
// @Produce      json
// @Param        id   path  int  true  "id_class"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/classifications/{id}/products [get]
func (h *ClassificationHandler) Products(c *fiber.Ctx) error {
	id, err := usecase.ParseID("id_class", c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.products.ByClass(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Tree godoc
// @Summary      Jerarquía completa en XML
// @Tags         export
// @Produce      application/xml
// @Success      200
// @Router       /api/classifications/tree.xml [get]
func (h *ClassificationHandler) Tree(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.export.Tree(c.UserContext(), &buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// ChangeParent godoc
// @Summary      Cambiar clase padre
// @Description  Rechaza el cambio si cycle() indica que se formaría un ciclo.
// @Tags         classifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id_class"
// @Param        body  body  dto.ChangeParentRequest  true  "Nuevo padre"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/classifications/{id}/parent [put]
func (h *ClassificationHandler) ChangeParent(c *fiber.Ctx) error {
	id, err := usecase.ParseID("id_class", c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ChangeParentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.classes.ChangeParent(c.UserContext(), id, in.ParentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "clase padre actualizada"})
}
