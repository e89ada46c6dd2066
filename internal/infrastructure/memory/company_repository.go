package memory

import (
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación en memoria de repository.CompanyRepository.
type CompanyRepo struct {
	store *Store
}

// Create inserta la empresa asignando id. Nombre duplicado devuelve
// domain.ErrDuplicate, igual que el constraint único del backend real.
func (r *CompanyRepo) Create(company *entity.Company) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Name == company.Name {
			return domain.ErrDuplicate
		}
	}
	company.ID = s.nextCompanyID
	s.nextCompanyID++
	cp := *company
	s.companies[company.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// GetByName devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// List lista empresas paginadas por id ascendente.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.companies))
	for id := range s.companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Company, 0, len(ids))
	for _, id := range paginate(ids, limit, offset) {
		cp := *s.companies[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina la empresa y arrastra sus productos (cascada). Devuelve
// domain.ErrNotFound si el id no existe.
func (r *CompanyRepo) Delete(id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.companies, id)
	for pid, p := range s.products {
		if p.CompanyID == id {
			delete(s.products, pid)
		}
	}
	return nil
}
