// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Replica la semántica del backend PostgreSQL (constraints únicos,
// borrado en cascada, proyección con join) para usarse en tests y demos sin
// base de datos.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Store estado compartido de los tres repositorios: las cascadas y los joins
// cruzan tablas, así que viven juntos bajo un mismo mutex.
type Store struct {
	mu sync.Mutex

	nextCompanyID  int64
	nextCategoryID int64
	nextProductID  int64

	companies  map[int64]*entity.Company
	categories map[int64]*entity.Category
	products   map[int64]*entity.Product
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		nextCompanyID:  1,
		nextCategoryID: 1,
		nextProductID:  1,
		companies:      map[int64]*entity.Company{},
		categories:     map[int64]*entity.Category{},
		products:       map[int64]*entity.Product{},
	}
}

// Companies devuelve el repositorio de empresas sobre este almacén.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{store: s} }

// Categories devuelve el repositorio de categorías sobre este almacén.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{store: s} }

// Products devuelve el repositorio de productos sobre este almacén.
func (s *Store) Products() *ProductRepo { return &ProductRepo{store: s} }

// sortedProductIDs ids de producto en orden ascendente, el mismo orden
// estable que ORDER BY id del backend real.
func (s *Store) sortedProductIDs() []int64 {
	ids := make([]int64, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// detail arma la proyección aplanada de un producto con los nombres de su
// empresa y categoría.
func (s *Store) detail(p *entity.Product) *entity.ProductDetail {
	d := &entity.ProductDetail{Product: *p}
	if c, ok := s.companies[p.CompanyID]; ok {
		d.CompanyName = c.Name
	}
	if c, ok := s.categories[p.CategoryID]; ok {
		d.CategoryName = c.Name
	}
	return d
}

// paginate aplica offset/limit sobre un slice ya ordenado.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
