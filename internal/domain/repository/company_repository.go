package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// GetByID/GetByName devuelven (nil, nil) cuando no existe el registro.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id int64) error
}
