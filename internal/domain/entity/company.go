package entity

// Company representa una empresa propietaria de productos del catálogo.
type Company struct {
	ID       int64
	Name     string // único a nivel global
	Location string // opcional
}
