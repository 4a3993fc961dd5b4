// Package pdf genera el informe imprimible de una tabla del clasificador.
//
// Layout de la página A4 (apaisada):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la tabla      │  Fecha + N° de registros │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA: una columna por campo (se repite en cada página)  │
//	│  FILAS: una por registro, en el orden de la consulta         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// gridSize es el ancho de la grilla de Maroto; más columnas que esto no caben.
const gridSize = 12

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

var _ usecase.TableReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.TableReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateTableReport genera el PDF de la tabla y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateTableReport(_ context.Context, title string, data *entity.TableData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("clasificador", true).
		Build()

	m := maroto.New(cfg)

	columns := data.Columns
	if len(columns) > gridSize {
		columns = columns[:gridSize]
	}
	widths := columnWidths(columns)

	if err := m.RegisterHeader(headerRow(title, len(data.Rows), g.now()), tableHeaderRow(columns, widths)); err != nil {
		return nil, fmt.Errorf("pdf: registrar cabecera: %w", err)
	}

	if data.Empty() {
		m.AddRows(row.New(10).Add(col.New(gridSize).Add(
			text.New("La tabla no tiene registros.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for i, values := range data.StringRows() {
		m.AddRows(detailRow(values[:len(columns)], widths, i%2 == 1))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(gridSize).Add(
		text.New("Generado por el clasificador de productos.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + cantidad de registros (der).
func headerRow(title string, count int, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d registros", count), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(columns []string, widths []int) core.Row {
	cols := make([]core.Col, len(columns))
	for i, name := range columns {
		cols[i] = col.New(widths[i]).Add(text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...)
}

func detailRow(values []string, widths []int, striped bool) core.Row {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = col.New(widths[i]).Add(text.New(v, props.Text{
			Size: 8, Top: 1, Left: 1, Right: 1,
		}))
	}
	r := row.New(6).Add(cols...)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths reparte la grilla en partes iguales; el sobrante va a la columna
// "name" si existe, si no a la última.
func columnWidths(columns []string) []int {
	n := len(columns)
	if n == 0 {
		return nil
	}
	widths := make([]int, n)
	base := gridSize / n
	for i := range widths {
		widths[i] = base
	}
	extra := gridSize - base*n
	target := n - 1
	for i, c := range columns {
		if c == "name" {
			target = i
			break
		}
	}
	widths[target] += extra
	return widths
}
