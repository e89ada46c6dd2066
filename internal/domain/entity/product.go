package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// (Name, CompanyID) es único; Price y Stock nunca son negativos.
// La empresa y la categoría referenciadas deben existir al insertar.
type Product struct {
	ID          int64
	Name        string
	Description string // opcional
	Price       decimal.Decimal
	Stock       int
	CompanyID   int64
	CategoryID  int64
}

// ProductDetail es la proyección aplanada de un producto con los nombres de
// su empresa y categoría resueltos vía join (una sola consulta, columnas
// con alias para no chocar con name/id del producto).
type ProductDetail struct {
	Product
	CompanyName  string
	CategoryName string
}
