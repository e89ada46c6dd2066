package memory

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct {
	store *Store
}

// Create inserta el producto asignando id. (Name, CompanyID) duplicado
// devuelve domain.ErrDuplicate; referencia inexistente, domain.ErrNotFound
// (equivalente a la violación de FK del backend real).
func (r *ProductRepo) Create(product *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[product.CompanyID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range s.products {
		if p.Name == product.Name && p.CompanyID == product.CompanyID {
			return domain.ErrDuplicate
		}
	}
	product.ID = s.nextProductID
	s.nextProductID++
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetDetailByID devuelve la proyección aplanada o (nil, nil) si no existe.
func (r *ProductRepo) GetDetailByID(id int64) (*entity.ProductDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return s.detail(p), nil
}

// GetByNameAndCompany devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByNameAndCompany(name string, companyID int64) (*entity.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Name == name && p.CompanyID == companyID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// ListDetail lista la proyección aplanada paginada por id ascendente.
func (r *ProductRepo) ListDetail(limit, offset int) ([]*entity.ProductDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.ProductDetail, 0)
	for _, id := range paginate(s.sortedProductIDs(), limit, offset) {
		out = append(out, s.detail(s.products[id]))
	}
	return out, nil
}

// ListAllDetail devuelve el catálogo completo sin paginar.
func (r *ProductRepo) ListAllDetail() ([]*entity.ProductDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.ProductDetail, 0, len(s.products))
	for _, id := range s.sortedProductIDs() {
		out = append(out, s.detail(s.products[id]))
	}
	return out, nil
}

// Search filtra por subcadena en name o description (sin distinguir
// mayúsculas) y por empresa/categoría opcionales.
func (r *ProductRepo) Search(filter repository.ProductFilter) ([]*entity.ProductDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(filter.Query)
	matched := make([]*entity.ProductDetail, 0)
	for _, id := range s.sortedProductIDs() {
		p := s.products[id]
		if filter.CompanyID != 0 && p.CompanyID != filter.CompanyID {
			continue
		}
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		matched = append(matched, s.detail(p))
	}
	return paginate(matched, filter.Limit, filter.Offset), nil
}

// Update reemplaza todos los campos del producto. Devuelve domain.ErrNotFound
// si el id no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := s.companies[product.CompanyID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range s.products {
		if p.ID != product.ID && p.Name == product.Name && p.CompanyID == product.CompanyID {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

// Delete elimina el producto. Devuelve domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}
