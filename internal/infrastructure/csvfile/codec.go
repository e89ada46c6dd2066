// Package csvfile implementa el códec CSV de importación/exportación de
// productos sobre encoding/csv. El contrato de importación es un encabezado
// name,price,quantity,category; las columnas se ubican por nombre, así que
// columnas extra (p.ej. el id de un export previo) se ignoran y el ciclo
// export → import es cerrado.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/bulk"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var exportHeader = []string{"id", "name", "price", "quantity", "category"}

// requiredColumns columnas mínimas del archivo de importación.
var requiredColumns = []string{"name", "price", "quantity", "category"}

var _ bulk.RowParser = (*Codec)(nil)
var _ bulk.CatalogWriter = (*Codec)(nil)

// Codec parser y writer CSV del catálogo.
type Codec struct{}

// NewCodec construye el códec.
func NewCodec() *Codec { return &Codec{} }

// Extension implementa bulk.CatalogWriter.
func (*Codec) Extension() string { return "csv" }

// Parse lee el CSV completo y convierte cada fila a tipos nativos. La
// primera fila malformada corta el proceso con un *bulk.RowError.
func (*Codec) Parse(r io.Reader) ([]bulk.ProductRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}

	idx, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := []bulk.ProductRow{}
	for i, record := range records[1:] {
		line := i + 2 // 1-indexado, después del encabezado
		if isEmptyRow(record) {
			continue
		}
		row, err := convertRow(record, idx)
		if err != nil {
			return nil, &bulk.RowError{Line: line, Raw: record, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Write serializa el catálogo con columnas id,name,price,quantity,category.
func (*Codec) Write(path string, products []*entity.ProductDetail) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear archivo CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Price.String(),
			strconv.Itoa(p.Stock),
			p.CategoryName,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("volcar CSV: %w", err)
	}
	return f.Close()
}

// headerIndex ubica cada columna requerida por nombre (sin distinguir
// mayúsculas); las columnas desconocidas se ignoran.
func headerIndex(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("encabezado sin columna %q (se esperaba name,price,quantity,category)", col)
		}
	}
	return idx, nil
}

func convertRow(record []string, idx map[string]int) (bulk.ProductRow, error) {
	var row bulk.ProductRow

	row.Name = cell(record, idx["name"])
	if row.Name == "" {
		return row, fmt.Errorf("name vacío")
	}
	row.Category = cell(record, idx["category"])
	if row.Category == "" {
		return row, fmt.Errorf("category vacía")
	}

	price, err := decimal.NewFromString(cell(record, idx["price"]))
	if err != nil {
		return row, fmt.Errorf("price no numérico: %q", cell(record, idx["price"]))
	}
	if price.IsNegative() {
		return row, fmt.Errorf("price negativo: %q", cell(record, idx["price"]))
	}
	row.Price = price

	// Igual que el import original: "10.0" cuenta como cantidad entera.
	qty, err := strconv.ParseFloat(cell(record, idx["quantity"]), 64)
	if err != nil {
		return row, fmt.Errorf("quantity no numérica: %q", cell(record, idx["quantity"]))
	}
	if qty < 0 {
		return row, fmt.Errorf("quantity negativa: %q", cell(record, idx["quantity"]))
	}
	row.Quantity = int(qty)

	return row, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isEmptyRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
