package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD + búsqueda para productos.
type ProductUseCase struct {
	products   repository.ProductRepository
	companies  repository.CompanyRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso con sus puertos de persistencia.
func NewProductUseCase(
	products repository.ProductRepository,
	companies repository.CompanyRepository,
	categories repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, companies: companies, categories: categories}
}

// Create crea un nuevo producto. (Name, CompanyID) debe ser único
// (domain.ErrDuplicate si ya existe) y la empresa y la categoría
// referenciadas deben existir (domain.ErrNotFound si no).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(in.CompanyID, in.CategoryID); err != nil {
		return nil, err
	}
	existing, _ := uc.products.GetByNameAndCompany(in.Name, in.CompanyID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CompanyID:   in.CompanyID,
		CategoryID:  in.CategoryID,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con nombres de empresa y categoría resueltos
// vía join. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductDetailResponse, error) {
	detail, err := uc.products.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	return toProductDetailResponse(detail), nil
}

// List lista productos (proyección aplanada) paginados por id ascendente.
func (uc *ProductUseCase) List(skip, limit int) ([]dto.ProductDetailResponse, error) {
	list, err := uc.products.ListDetail(limit, skip)
	if err != nil {
		return nil, err
	}
	return toProductDetailResponses(list), nil
}

// Update reemplaza todos los campos mutables del producto. Valida que las
// nuevas referencias existan: un update no puede dejar claves colgantes.
// Devuelve domain.ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkRefs(in.CompanyID, in.CategoryID); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CompanyID:   in.CompanyID,
		CategoryID:  in.CategoryID,
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Devuelve domain.ErrNotFound si no existe: un
// segundo delete sobre el mismo id falla, no es un no-op.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.products.Delete(id)
}

// Search busca por subcadena en name o description (q vacío = sin filtro de
// texto, coincide con todo) con filtros opcionales por empresa y categoría.
// Sin coincidencias devuelve lista vacía, nunca un error: las búsquedas y
// los listados no fallan por resultado vacío, solo los lookups singulares.
func (uc *ProductUseCase) Search(q string, companyID, categoryID int64, skip, limit int) ([]dto.ProductDetailResponse, error) {
	list, err := uc.products.Search(repository.ProductFilter{
		Query:      q,
		CompanyID:  companyID,
		CategoryID: categoryID,
		Limit:      limit,
		Offset:     skip,
	})
	if err != nil {
		return nil, err
	}
	return toProductDetailResponses(list), nil
}

// checkRefs valida la existencia de la empresa y la categoría referenciadas.
func (uc *ProductUseCase) checkRefs(companyID, categoryID int64) error {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
	}
}

func toProductDetailResponse(d *entity.ProductDetail) *dto.ProductDetailResponse {
	if d == nil {
		return nil
	}
	return &dto.ProductDetailResponse{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Stock:        d.Stock,
		CategoryName: d.CategoryName,
		CompanyName:  d.CompanyName,
	}
}

func toProductDetailResponses(list []*entity.ProductDetail) []dto.ProductDetailResponse {
	items := make([]dto.ProductDetailResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toProductDetailResponse(d))
	}
	return items
}
