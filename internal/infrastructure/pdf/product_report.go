// Package pdf genera el reporte de inventario de productos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app       │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Categoría | Precio | Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de productos / activos / inactivos           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ProductReportGenerator implementa usecase.ProductReportRenderer usando Maroto v2.
type ProductReportGenerator struct {
	title string
}

// NewProductReportGenerator construye el generador. title aparece en la cabecera.
func NewProductReportGenerator(title string) *ProductReportGenerator {
	return &ProductReportGenerator{title: title}
}

// RenderProductReport genera el PDF y devuelve sus bytes.
func (g *ProductReportGenerator) RenderProductReport(
	ctx context.Context,
	products []*entity.ProductSummary,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de productos", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de productos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("ID", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Categoría", 3, align.Left),
		h("Precio", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

// tableDetailRows: una fila por producto.
func tableDetailRows(products []*entity.ProductSummary) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(p.ID, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.CategoryName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New("S/ "+formatMoney(p.Price.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(p.Status,
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray})),
		))
	}
	return result
}

func summaryRow(products []*entity.ProductSummary) core.Row {
	active := 0
	for _, p := range products {
		if p.Status == entity.ProductStatusActive {
			active++
		}
	}
	return row.New(10).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de productos: %d   |   Activos: %d   |   Inactivos: %d",
				len(products), active, len(products)-active),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta comas de miles en un monto con dos decimales.
// Ej: "25000.00" → "25,000.00", "1000000.50" → "1,000,000.50"
func formatMoney(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(intPart) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, c)
		}
		intPart = string(buf)
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}
