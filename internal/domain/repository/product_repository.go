package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductFilter filtros de búsqueda de productos. Query vacío = sin filtro
// de texto; CompanyID/CategoryID en cero = sin filtro por referencia.
type ProductFilter struct {
	Query      string
	CompanyID  int64
	CategoryID int64
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando no existe el registro; Update y
// Delete devuelven domain.ErrNotFound cuando el id no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetDetailByID(id int64) (*entity.ProductDetail, error)
	GetByNameAndCompany(name string, companyID int64) (*entity.Product, error)
	ListDetail(limit, offset int) ([]*entity.ProductDetail, error)
	ListAllDetail() ([]*entity.ProductDetail, error)
	Search(filter ProductFilter) ([]*entity.ProductDetail, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
