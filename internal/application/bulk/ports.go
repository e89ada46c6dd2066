package bulk

import (
	"fmt"
	"io"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRow fila del archivo de importación ya convertida a tipos nativos.
type ProductRow struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Category string
}

// RowParser convierte un archivo tabular en filas de producto. La conversión
// de toda la entrada ocurre antes de cualquier inserción: una fila malformada
// aborta la importación completa señalando su contenido (*RowError).
type RowParser interface {
	Parse(r io.Reader) ([]ProductRow, error)
}

// RowError señala una fila malformada del archivo de importación con su
// contenido crudo, para que el error que ve el cliente identifique la fila.
type RowError struct {
	Line int
	Raw  []string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("fila %d inválida %q: %v", e.Line, e.Raw, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// CatalogWriter serializa el catálogo aplanado a un formato de archivo.
type CatalogWriter interface {
	// Extension sin punto: "csv", "xlsx", "pdf".
	Extension() string
	Write(path string, products []*entity.ProductDetail) error
}
