// Package pdf genera la representación imprimible del catálogo de productos
// usando Maroto v2: una tabla con ID, nombre, precio, stock, categoría y
// empresa por fila.
package pdf

import (
	"fmt"
	"os"
	"strconv"

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

	"github.com/jhoicas/catalogo-api/internal/application/bulk"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ bulk.CatalogWriter = (*CatalogWriter)(nil)

// CatalogWriter implementa bulk.CatalogWriter sobre Maroto.
type CatalogWriter struct{}

// NewCatalogWriter construye el writer.
func NewCatalogWriter() *CatalogWriter { return &CatalogWriter{} }

// Extension implementa bulk.CatalogWriter.
func (*CatalogWriter) Extension() string { return "pdf" }

// Write genera el PDF del catálogo en la ruta dada.
func (*CatalogWriter) Write(path string, products []*entity.ProductDetail) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(detailRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	if err := os.WriteFile(path, doc.GetBytes(), 0o644); err != nil {
		return fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return nil
}

func titleRow(total int) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("CATÁLOGO DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d productos", total), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New("ID", header)),
		col.New(3).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Precio", header)),
		col.New(1).Add(text.New("Stock", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(3).Add(text.New("Empresa", header)),
	)
}

func detailRow(p *entity.ProductDetail) core.Row {
	cellText := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.FormatInt(p.ID, 10), cellText)),
		col.New(3).Add(text.New(p.Name, cellText)),
		col.New(2).Add(text.New(p.Price.StringFixed(2), cellText)),
		col.New(1).Add(text.New(strconv.Itoa(p.Stock), cellText)),
		col.New(2).Add(text.New(p.CategoryName, cellText)),
		col.New(3).Add(text.New(p.CompanyName, cellText)),
	)
}
