package dto

import "github.com/shopspring/decimal"

// AddProductRequest entrada del alta simple en formato de importación: la
// categoría viene por nombre y se resuelve (o crea) al insertar.
type AddProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"gte=0"`
	Category  string          `json:"category" validate:"required,min=1,max=200"`
	CompanyID int64           `json:"company_id" validate:"required"`
}

// ImportResponse resultado de una importación CSV.
type ImportResponse struct {
	Inserted int               `json:"inserted"`
	Details  []ProductResponse `json:"details"`
}
