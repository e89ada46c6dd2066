package bulk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Exporter caso de uso de exportación del catálogo completo de productos.
// El fetch es sin paginar: una tabla enorme produce un archivo enorme
// (limitación de escala asumida, no un error).
type Exporter struct {
	products repository.ProductRepository
	dir      string
}

// NewExporter construye el caso de uso. dir es el directorio local donde se
// materializan los archivos antes de ser servidos.
func NewExporter(products repository.ProductRepository, dir string) *Exporter {
	return &Exporter{products: products, dir: dir}
}

// Export serializa todos los productos con el writer dado y devuelve la ruta
// del artefacto y el nombre de descarga sugerido. Cada export escribe un
// archivo nuevo (sufijo uuid) para no pisar descargas en curso.
func (uc *Exporter) Export(w CatalogWriter) (path, filename string, err error) {
	products, err := uc.products.ListAllDetail()
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("crear directorio de exportación: %w", err)
	}
	ext := w.Extension()
	path = filepath.Join(uc.dir, fmt.Sprintf("products_export_%s.%s", uuid.New().String(), ext))
	if err := w.Write(path, products); err != nil {
		return "", "", err
	}
	return path, "products_export." + ext, nil
}
