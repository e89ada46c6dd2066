package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/bulk"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias de la capa HTTP.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase

	Importer *bulk.Importer
	Exporter *bulk.Exporter

	CSVWriter  bulk.CatalogWriter
	XLSXWriter bulk.CatalogWriter
	PDFWriter  bulk.CatalogWriter
}

// Router registra todas las rutas del catálogo sobre la app Fiber.
func Router(app *fiber.App, deps RouterDeps) {
	companies := NewCompanyHandler(deps.CompanyUC)
	categories := NewCategoryHandler(deps.CategoryUC)
	products := NewProductHandler(deps.ProductUC)
	bulkH := NewBulkHandler(deps.Importer, deps.Exporter, deps.CSVWriter, deps.XLSXWriter, deps.PDFWriter)

	app.Post("/companies", companies.Create)
	app.Get("/companies", companies.List)
	app.Get("/companies/:id", companies.GetByID)
	app.Delete("/companies/:id", companies.Delete)

	app.Post("/categories", categories.Create)
	app.Get("/categories", categories.List)
	app.Get("/categories/:id", categories.GetByID)
	app.Delete("/categories/:id", categories.Delete)

	app.Post("/products", products.Create)
	app.Get("/products", products.List)
	// /products/search se registra antes que /products/:id para que "search"
	// no se interprete como un id.
	app.Get("/products/search", products.Search)
	app.Get("/products/:id", products.GetByID)
	app.Put("/products/:id", products.Update)
	app.Delete("/products/:id", products.Delete)

	app.Post("/add-product", bulkH.AddProduct)
	app.Post("/upload-csv", bulkH.UploadCSV)
	app.Get("/download-csv", bulkH.DownloadCSV)
	app.Get("/download-xlsx", bulkH.DownloadXLSX)
	app.Get("/download-pdf", bulkH.DownloadPDF)
}
