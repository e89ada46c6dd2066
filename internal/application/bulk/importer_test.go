package bulk_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/bulk"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/csvfile"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newImporterFixture(t *testing.T) (*bulk.Importer, *memory.Store, int64) {
	t.Helper()
	store := memory.NewStore()
	company := &entity.Company{Name: "Acme"}
	require.NoError(t, store.Companies().Create(company))
	importer := bulk.NewImporter(csvfile.NewCodec(), store.Products(), store.Companies(), store.Categories())
	return importer, store, company.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Import
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_InsertaFilasYResuelveCategorias(t *testing.T) {
	importer, store, companyID := newImporterFixture(t)

	csv := "name,price,quantity,category\n" +
		"Café,12.50,10,Bebidas\n" +
		"Té,8.00,5,Bebidas\n"

	out, err := importer.Import(companyID, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Inserted)
	require.Len(t, out.Details, 2)
	assert.Equal(t, "Café", out.Details[0].Name)

	// Ambas filas comparten categoría: debe crearse una sola vez.
	category, err := store.Categories().GetByName("Bebidas")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, category.ID, out.Details[0].CategoryID)
	assert.Equal(t, category.ID, out.Details[1].CategoryID)
}

func TestImport_EmpresaInexistente(t *testing.T) {
	importer, _, _ := newImporterFixture(t)
	_, err := importer.Import(999, strings.NewReader("name,price,quantity,category\nx,1,1,c\n"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImport_FilaMalformadaAbortaAntesDeInsertar(t *testing.T) {
	importer, store, companyID := newImporterFixture(t)

	// La segunda fila tiene precio no numérico: el parseo completo ocurre
	// antes de insertar, así que ni siquiera la primera fila debe entrar.
	csv := "name,price,quantity,category\n" +
		"Café,12.50,10,Bebidas\n" +
		"Té,caro,5,Bebidas\n"

	_, err := importer.Import(companyID, strings.NewReader(csv))
	require.Error(t, err)

	var rowErr *bulk.RowError
	require.ErrorAs(t, err, &rowErr, "el error debe identificar la fila malformada")
	assert.Equal(t, 3, rowErr.Line)
	assert.Contains(t, rowErr.Error(), "caro", "el error debe incluir el contenido de la fila")

	products, err := store.Products().ListAllDetail()
	require.NoError(t, err)
	assert.Empty(t, products, "una fila malformada aborta la importación completa")
}

func TestImport_FalloDeInsercionNoDeshaceLoInsertado(t *testing.T) {
	importer, store, companyID := newImporterFixture(t)

	// El duplicado está en la segunda fila: la primera ya quedó insertada y
	// no se deshace (sin atomicidad entre filas).
	csv := "name,price,quantity,category\n" +
		"Café,12.50,10,Bebidas\n" +
		"Café,9.00,2,Bebidas\n"

	out, err := importer.Import(companyID, strings.NewReader(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, out.Inserted, "el resultado parcial refleja lo ya insertado")

	products, err := store.Products().ListAllDetail()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestImport_PrecioNegativoAbortaSinInsertar(t *testing.T) {
	importer, store, companyID := newImporterFixture(t)

	csv := "name,price,quantity,category\n" +
		"Café,-12.50,10,Bebidas\n"

	_, err := importer.Import(companyID, strings.NewReader(csv))
	var rowErr *bulk.RowError
	require.ErrorAs(t, err, &rowErr, "un precio negativo debe rechazarse como fila inválida")

	products, err := store.Products().ListAllDetail()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestImport_ColumnasExtraSeIgnoran(t *testing.T) {
	importer, _, companyID := newImporterFixture(t)

	// Un export previo trae columna id: el import la ignora, cerrando el
	// ciclo export → import.
	csv := "id,name,price,quantity,category\n" +
		"7,Café,12.50,10,Bebidas\n"

	out, err := importer.Import(companyID, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Inserted)
	assert.NotEqual(t, int64(7), out.Details[0].ID, "el id del archivo no se respeta, se asigna uno nuevo")
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_CreaCategoriaSiNoExiste(t *testing.T) {
	importer, store, companyID := newImporterFixture(t)

	out, err := importer.AddProduct(dto.AddProductRequest{
		Name:      "Café",
		Price:     decimal.RequireFromString("12.50"),
		Quantity:  10,
		Category:  "Bebidas",
		CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Stock)

	category, err := store.Categories().GetByName("Bebidas")
	require.NoError(t, err)
	require.NotNil(t, category, "la categoría debe crearse al vuelo")
	assert.Equal(t, category.ID, out.CategoryID)
}

func TestAddProduct_ReusaCategoriaExistente(t *testing.T) {
	importer, store, companyID := newImporterFixture(t)
	existing := &entity.Category{Name: "Bebidas"}
	require.NoError(t, store.Categories().Create(existing))

	out, err := importer.AddProduct(dto.AddProductRequest{
		Name: "Café", Price: decimal.NewFromInt(1), Quantity: 1,
		Category: "Bebidas", CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, out.CategoryID)
}

func TestAddProduct_EmpresaInexistente(t *testing.T) {
	importer, _, _ := newImporterFixture(t)
	_, err := importer.AddProduct(dto.AddProductRequest{
		Name: "Café", Price: decimal.NewFromInt(1), Quantity: 1,
		Category: "Bebidas", CompanyID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddProduct_PrecioNegativo(t *testing.T) {
	importer, _, companyID := newImporterFixture(t)
	_, err := importer.AddProduct(dto.AddProductRequest{
		Name: "Café", Price: decimal.NewFromInt(-1), Quantity: 1,
		Category: "Bebidas", CompanyID: companyID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
