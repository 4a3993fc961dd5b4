package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/application/usecase"
)

// TableHandler listado, alta y exportación de las tablas administrables.
type TableHandler struct {
	tables  *usecase.TableUseCase
	records *usecase.RecordUseCase
	export  *usecase.ExportUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(tables *usecase.TableUseCase, records *usecase.RecordUseCase, export *usecase.ExportUseCase) *TableHandler {
	return &TableHandler{tables: tables, records: records, export: export}
}

// Tables godoc
// @Summary      Tablas administrables
// @Description  La primera tabla es la vista inicial del cliente.
// @Tags         tables
// @Produce      json
// @Success      200  {array}  dto.TableInfo
// @Router       /api/tables [get]
func (h *TableHandler) Tables(c *fiber.Ctx) error {
	return c.JSON(h.tables.Tables())
}

// List godoc
// @Summary      Contenido de una tabla
// @Tags         tables
// @Produce      json
// @Param        table  path  string  true  "classification | product | unit"
// @Success      200  {object}  dto.TableDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tables/{table} [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	out, err := h.tables.List(c.UserContext(), c.Params("table"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddRecord godoc
// @Summary      Agregar registro
// @Description  Los campos llegan como texto, igual que desde el formulario de alta.
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        table  path  string  true  "classification | product | unit"
// @Param        body   body  dto.AddRecordRequest  true  "Campos del registro"
// @Success      201  {object}  dto.CreatedRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/tables/{table}/records [post]
func (h *TableHandler) AddRecord(c *fiber.Ctx) error {
	var in dto.AddRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.records.Add(c.UserContext(), c.Params("table"), in.Fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar tabla a CSV
// @Tags         export
// @Produce      text/csv
// @Param        table    path   string  true   "classification | product | unit"
// @Param        charset  query  string  false  "utf-8 | windows-1251 | koi8-r | iso-8859-1"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tables/{table}/export.csv [get]
func (h *TableHandler) ExportCSV(c *fiber.Ctx) error {
	table := c.Params("table")
	charset := c.Query("charset", "utf-8")
	var buf bytes.Buffer
	if err := h.export.CSV(c.UserContext(), table, charset, &buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset="+charset)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, table))
	return c.Send(buf.Bytes())
}

// Report godoc
// @Summary      Informe PDF de una tabla
// @Tags         export
// @Produce      application/pdf
// @Param        table  path  string  true  "classification | product | unit"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tables/{table}/report.pdf [get]
func (h *TableHandler) Report(c *fiber.Ctx) error {
	table := c.Params("table")
	pdf, err := h.export.Report(c.UserContext(), table)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, table))
	return c.Send(pdf)
}
