package bulk

import (
	"fmt"
	"io"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Importer caso de uso de importación masiva de productos. Cada fila se
// inserta de forma independiente, sin transacción que cubra el lote: un
// fallo de inserción aborta el resto pero no deshace lo ya insertado
// (sin atomicidad entre filas).
type Importer struct {
	parser     RowParser
	products   repository.ProductRepository
	companies  repository.CompanyRepository
	categories repository.CategoryRepository
}

// NewImporter construye el caso de uso de importación.
func NewImporter(
	parser RowParser,
	products repository.ProductRepository,
	companies repository.CompanyRepository,
	categories repository.CategoryRepository,
) *Importer {
	return &Importer{parser: parser, products: products, companies: companies, categories: categories}
}

// Import parsea el archivo completo y luego inserta fila por fila bajo la
// empresa indicada, resolviendo cada categoría por nombre (se crea si no
// existe). Devuelve domain.ErrNotFound si la empresa no existe y el error
// de fila del parser si la conversión falla.
func (uc *Importer) Import(companyID int64, r io.Reader) (*dto.ImportResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	out := &dto.ImportResponse{Details: []dto.ProductResponse{}}
	for i, row := range rows {
		created, err := uc.insertRow(companyID, row)
		if err != nil {
			return out, fmt.Errorf("fila %d (%s): %w", i+1, row.Name, err)
		}
		out.Inserted++
		out.Details = append(out.Details, *created)
	}
	return out, nil
}

// AddProduct inserta un único producto en formato de importación (categoría
// por nombre, get-or-create).
func (uc *Importer) AddProduct(in dto.AddProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companies.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.insertRow(in.CompanyID, ProductRow{
		Name:     in.Name,
		Price:    in.Price,
		Quantity: in.Quantity,
		Category: in.Category,
	})
}

func (uc *Importer) insertRow(companyID int64, row ProductRow) (*dto.ProductResponse, error) {
	category, err := uc.resolveCategory(row.Category)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:       row.Name,
		Price:      row.Price,
		Stock:      row.Quantity,
		CompanyID:  companyID,
		CategoryID: category.ID,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Stock:      product.Stock,
		CompanyID:  product.CompanyID,
		CategoryID: product.CategoryID,
	}, nil
}

// resolveCategory busca la categoría por nombre y la crea si no existe.
// Si otra petición la crea en paralelo, el insert choca con el constraint
// único y se relee.
func (uc *Importer) resolveCategory(name string) (*entity.Category, error) {
	category, err := uc.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	category = &entity.Category{Name: name}
	if err := uc.categories.Create(category); err != nil {
		if err == domain.ErrDuplicate {
			return uc.categories.GetByName(name)
		}
		return nil, err
	}
	return category, nil
}
