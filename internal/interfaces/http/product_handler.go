package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/application/usecase"
)

// ProductHandler reclasificación de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ChangeClass godoc
// @Summary      Cambiar clase de un producto
// @Description  Solo se permiten clases terminales (sin subclases).
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id_product"
// @Param        body  body  dto.ChangeClassRequest  true  "Nueva clase"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/class [put]
func (h *ProductHandler) ChangeClass(c *fiber.Ctx) error {
	id, err := usecase.ParseID("id_product", c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ChangeClassRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangeClass(c.UserContext(), id, in.ClassID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "clase del producto actualizada"})
}
