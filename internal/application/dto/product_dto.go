package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. La empresa y la
// categoría referenciadas deben existir.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CompanyID   int64           `json:"company_id" validate:"required"`
	CategoryID  int64           `json:"category_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto. El update es un
// reemplazo completo de los campos mutables, no un patch parcial.
type UpdateProductRequest = CreateProductRequest

// ProductResponse salida cruda de un producto (create/update).
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CompanyID   int64           `json:"company_id"`
	CategoryID  int64           `json:"category_id"`
}

// ProductDetailResponse proyección aplanada con nombres de empresa y
// categoría resueltos vía join, usada por list/get/search de productos.
type ProductDetailResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryName string          `json:"category_name"`
	CompanyName  string          `json:"company_name"`
}
