package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store      *memory.Store
	products   *usecase.ProductUseCase
	companies  *usecase.CompanyUseCase
	categories *usecase.CategoryUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:      store,
		products:   usecase.NewProductUseCase(store.Products(), store.Companies(), store.Categories()),
		companies:  usecase.NewCompanyUseCase(store.Companies()),
		categories: usecase.NewCategoryUseCase(store.Categories()),
	}
}

// seedRefs crea una empresa y una categoría base y devuelve sus ids.
func (f *fixture) seedRefs(t *testing.T) (companyID, categoryID int64) {
	t.Helper()
	company, err := f.companies.Create(dto.CreateCompanyRequest{Name: "Acme", Location: "Bogotá"})
	require.NoError(t, err)
	category, err := f.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	return company.ID, category.ID
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AsignaID(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)

	out, err := f.products.Create(dto.CreateProductRequest{
		Name:       "Café",
		Price:      price("12.50"),
		Stock:      10,
		CompanyID:  companyID,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID, "el primer producto debe recibir id 1")
	assert.True(t, out.Price.Equal(price("12.50")))
}

func TestProductCreate_NombreDuplicadoEnMismaEmpresa(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)

	in := dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1,
		CompanyID: companyID, CategoryID: categoryID,
	}
	_, err := f.products.Create(in)
	require.NoError(t, err)

	_, err = f.products.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"mismo nombre bajo la misma empresa debe rechazarse")
}

func TestProductCreate_MismoNombreEnOtraEmpresa(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	other, err := f.companies.Create(dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)

	_, err = f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	// La unicidad es por (nombre, empresa): otra empresa puede repetir nombre.
	_, err = f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1,
		CompanyID: other.ID, CategoryID: categoryID,
	})
	assert.NoError(t, err)
}

func TestProductCreate_ReferenciaInexistente(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)

	_, err := f.products.Create(dto.CreateProductRequest{
		Name: "Té", Price: price("1"), Stock: 1,
		CompanyID: 999, CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "empresa inexistente debe rechazarse")

	_, err = f.products.Create(dto.CreateProductRequest{
		Name: "Té", Price: price("1"), Stock: 1,
		CompanyID: companyID, CategoryID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "categoría inexistente debe rechazarse")
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)

	_, err := f.products.Create(dto.CreateProductRequest{
		Name: "Té", Price: price("-1"), Stock: 1,
		CompanyID: companyID, CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_ProyeccionConNombres(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	created, err := f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("5"), Stock: 3,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	out, err := f.products.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Acme", out.CompanyName, "el detalle debe resolver el nombre de la empresa")
	assert.Equal(t, "Bebidas", out.CategoryName, "el detalle debe resolver el nombre de la categoría")
}

func TestProductGetByID_Inexistente(t *testing.T) {
	f := newFixture()
	out, err := f.products.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out, "lookup de id inexistente devuelve nil sin error")
}

func TestProductList_PaginadoPorIDAscendente(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := f.products.Create(dto.CreateProductRequest{
			Name: name, Price: price("1"), Stock: 1,
			CompanyID: companyID, CategoryID: categoryID,
		})
		require.NoError(t, err)
	}

	out, err := f.products.List(1, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Name)
	assert.Equal(t, "c", out[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_ReemplazoCompleto(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	created, err := f.products.Create(dto.CreateProductRequest{
		Name: "Café", Description: "molido", Price: price("5"), Stock: 3,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	// Update sin description: el reemplazo completo la deja vacía.
	out, err := f.products.Update(created.ID, dto.UpdateProductRequest{
		Name: "Café premium", Price: price("9"), Stock: 7,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Café premium", out.Name)
	assert.Empty(t, out.Description, "el update es reemplazo completo, no patch")

	got, err := f.products.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	_, err := f.products.Update(42, dto.UpdateProductRequest{
		Name: "x", Price: price("1"), Stock: 1,
		CompanyID: companyID, CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_ReferenciaColgante(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	created, err := f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("5"), Stock: 3,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	_, err = f.products.Update(created.ID, dto.UpdateProductRequest{
		Name: "Café", Price: price("5"), Stock: 3,
		CompanyID: companyID, CategoryID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un update no puede dejar una categoría colgante")
}

func TestProductDelete_SegundoDeleteFalla(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	created, err := f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("5"), Stock: 3,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	require.NoError(t, f.products.Delete(created.ID))
	assert.ErrorIs(t, f.products.Delete(created.ID), domain.ErrNotFound,
		"el delete no es idempotente: el segundo intento falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSearch_SubcadenaEnNombreODescripcion(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	seed := []dto.CreateProductRequest{
		{Name: "Café molido", Price: price("1"), Stock: 1, CompanyID: companyID, CategoryID: categoryID},
		{Name: "Té verde", Description: "con cafeína", Price: price("1"), Stock: 1, CompanyID: companyID, CategoryID: categoryID},
		{Name: "Agua", Price: price("1"), Stock: 1, CompanyID: companyID, CategoryID: categoryID},
	}
	for _, in := range seed {
		_, err := f.products.Create(in)
		require.NoError(t, err)
	}

	out, err := f.products.Search("café", 0, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, out, 2, "debe coincidir por nombre y por descripción, sin distinguir mayúsculas")
	assert.Equal(t, "Café molido", out[0].Name)
	assert.Equal(t, "Té verde", out[1].Name)
}

func TestProductSearch_SinResultadosDevuelveListaVacia(t *testing.T) {
	f := newFixture()
	f.seedRefs(t)

	out, err := f.products.Search("inexistente", 0, 0, 0, 10)
	require.NoError(t, err, "una búsqueda sin coincidencias no es un error")
	assert.Empty(t, out)
	assert.NotNil(t, out, "debe serializar como [] y no como null")
}

func TestProductSearch_FiltroPorEmpresa(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	other, err := f.companies.Create(dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)

	_, err = f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1, CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)
	_, err = f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1, CompanyID: other.ID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	out, err := f.products.Search("", other.ID, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Globex", out[0].CompanyName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyDelete_ArrastraProductos(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	created, err := f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	require.NoError(t, f.companies.Delete(companyID))

	got, err := f.products.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "borrar la empresa debe arrastrar sus productos")
}

func TestCategoryDelete_ArrastraProductos(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	created, err := f.products.Create(dto.CreateProductRequest{
		Name: "Café", Price: price("1"), Stock: 1,
		CompanyID: companyID, CategoryID: categoryID,
	})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(categoryID))

	got, err := f.products.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "borrar la categoría debe arrastrar sus productos")
}

func TestCompanyDelete_ConVariosProductosPreservaLosDeOtraEmpresa(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	other, err := f.companies.Create(dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)

	// Productos intercalados de ambas empresas.
	var doomed, safe []int64
	for i := 0; i < 3; i++ {
		p1, err := f.products.Create(dto.CreateProductRequest{
			Name: fmt.Sprintf("producto-%d", i), Price: price("1"), Stock: 1,
			CompanyID: companyID, CategoryID: categoryID,
		})
		require.NoError(t, err)
		doomed = append(doomed, p1.ID)

		p2, err := f.products.Create(dto.CreateProductRequest{
			Name: fmt.Sprintf("producto-%d", i), Price: price("1"), Stock: 1,
			CompanyID: other.ID, CategoryID: categoryID,
		})
		require.NoError(t, err)
		safe = append(safe, p2.ID)
	}

	require.NoError(t, f.companies.Delete(companyID))

	for _, id := range doomed {
		got, err := f.products.GetByID(id)
		require.NoError(t, err)
		assert.Nil(t, got, "todos los productos de la empresa borrada deben caer")
	}
	for _, id := range safe {
		got, err := f.products.GetByID(id)
		require.NoError(t, err)
		assert.NotNil(t, got, "los productos de la otra empresa deben sobrevivir")
	}
}

func TestCategoryDelete_ConVariosProductosPreservaLosDeOtraCategoria(t *testing.T) {
	f := newFixture()
	companyID, categoryID := f.seedRefs(t)
	other, err := f.categories.Create(dto.CreateCategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	var doomed, safe []int64
	for i := 0; i < 3; i++ {
		p1, err := f.products.Create(dto.CreateProductRequest{
			Name: fmt.Sprintf("bebida-%d", i), Price: price("1"), Stock: 1,
			CompanyID: companyID, CategoryID: categoryID,
		})
		require.NoError(t, err)
		doomed = append(doomed, p1.ID)

		p2, err := f.products.Create(dto.CreateProductRequest{
			Name: fmt.Sprintf("snack-%d", i), Price: price("1"), Stock: 1,
			CompanyID: companyID, CategoryID: other.ID,
		})
		require.NoError(t, err)
		safe = append(safe, p2.ID)
	}

	require.NoError(t, f.categories.Delete(categoryID))

	for _, id := range doomed {
		got, err := f.products.GetByID(id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	for _, id := range safe {
		got, err := f.products.GetByID(id)
		require.NoError(t, err)
		assert.NotNil(t, got)
	}
}

func TestCompanyDelete_SinProductosTambienFunciona(t *testing.T) {
	f := newFixture()
	company, err := f.companies.Create(dto.CreateCompanyRequest{Name: "Vacía"})
	require.NoError(t, err)
	assert.NoError(t, f.companies.Delete(company.ID), "cascada con cero productos es un caso válido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas y categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_NombreDuplicado(t *testing.T) {
	f := newFixture()
	_, err := f.companies.Create(dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = f.companies.Create(dto.CreateCompanyRequest{Name: "Acme", Location: "otra sede"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el nombre de empresa es único aunque cambie la ubicación")
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	f := newFixture()
	_, err := f.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	_, err = f.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyList_Vacia(t *testing.T) {
	f := newFixture()
	out, err := f.companies.List(0, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}
