package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/bulk"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// BulkHandler maneja la importación y exportación masiva del catálogo.
type BulkHandler struct {
	importer *bulk.Importer
	exporter *bulk.Exporter

	csv  bulk.CatalogWriter
	xlsx bulk.CatalogWriter
	pdf  bulk.CatalogWriter
}

// NewBulkHandler construye el handler con los writers de cada formato.
func NewBulkHandler(importer *bulk.Importer, exporter *bulk.Exporter, csv, xlsx, pdf bulk.CatalogWriter) *BulkHandler {
	return &BulkHandler{importer: importer, exporter: exporter, csv: csv, xlsx: xlsx, pdf: pdf}
}

// AddProduct godoc
// @Summary      Alta simple en formato de importación (categoría por nombre)
// @Tags         bulk
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "Producto a insertar"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /add-product [post]
func (h *BulkHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.importer.AddProduct(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "producto con ese nombre ya existe en la empresa"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "precio y cantidad deben ser no negativos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadCSV godoc
// @Summary      Importar productos desde un archivo CSV
// @Description  Parsea todo el archivo antes de insertar; una fila malformada
// @Description  aborta la importación señalando su contenido.
// @Tags         bulk
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file  true  "Archivo CSV (name,price,quantity,category)"
// @Param        company_id  query     int   true  "Empresa dueña de los productos"
// @Success      200         {object}  dto.ImportResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /upload-csv [post]
func (h *BulkHandler) UploadCSV(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo no recibido"})
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "solo se aceptan archivos .csv"})
	}
	companyID := int64(c.QueryInt("company_id", 0))
	if companyID == 0 {
		if v, err := parseFormInt(c, "company_id"); err == nil {
			companyID = v
		}
	}
	if companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id requerido"})
	}

	f, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	out, err := h.importer.Import(companyID, f)
	if err != nil {
		var rowErr *bulk.RowError
		switch {
		case errors.As(err, &rowErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROW", Message: rowErr.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// DownloadCSV godoc
// @Summary      Exportar el catálogo completo como CSV
// @Tags         bulk
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /download-csv [get]
func (h *BulkHandler) DownloadCSV(c *fiber.Ctx) error {
	return h.download(c, h.csv)
}

// DownloadXLSX godoc
// @Summary      Exportar el catálogo completo como XLSX
// @Tags         bulk
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /download-xlsx [get]
func (h *BulkHandler) DownloadXLSX(c *fiber.Ctx) error {
	return h.download(c, h.xlsx)
}

// DownloadPDF godoc
// @Summary      Exportar el catálogo completo como PDF
// @Tags         bulk
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /download-pdf [get]
func (h *BulkHandler) DownloadPDF(c *fiber.Ctx) error {
	return h.download(c, h.pdf)
}

func (h *BulkHandler) download(c *fiber.Ctx, w bulk.CatalogWriter) error {
	path, filename, err := h.exporter.Export(w)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return c.Download(path, filename)
}

// parseFormInt lee un entero de un campo multipart cuando no vino por query.
func parseFormInt(c *fiber.Ctx, key string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.FormValue(key)), 10, 64)
}
