// Package excel serializa el catálogo de productos a XLSX usando excelize.
package excel

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/bulk"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

var _ bulk.CatalogWriter = (*Writer)(nil)

// Writer genera el archivo XLSX con las mismas columnas que el export CSV.
type Writer struct{}

// NewWriter construye el writer.
func NewWriter() *Writer { return &Writer{} }

// Extension implementa bulk.CatalogWriter.
func (*Writer) Extension() string { return "xlsx" }

// Write escribe una hoja "Products" con encabezado id,name,price,quantity,category.
func (*Writer) Write(path string, products []*entity.ProductDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"id", "name", "price", "quantity", "category"}); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for i, p := range products {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("celda fila %d: %w", i+2, err)
		}
		price, _ := p.Price.Float64()
		row := []any{p.ID, p.Name, price, p.Stock, p.CategoryName}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("guardar XLSX: %w", err)
	}
	return nil
}
