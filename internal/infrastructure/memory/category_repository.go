package memory

import (
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de repository.CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// Create inserta la categoría asignando id. Nombre duplicado devuelve
// domain.ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	category.ID = s.nextCategoryID
	s.nextCategoryID++
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// GetByName devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// List lista categorías paginadas por id ascendente.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Category, 0, len(ids))
	for _, id := range paginate(ids, limit, offset) {
		cp := *s.categories[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina la categoría y arrastra sus productos (cascada). Devuelve
// domain.ErrNotFound si el id no existe.
func (r *CategoryRepo) Delete(id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.categories, id)
	for pid, p := range s.products {
		if p.CategoryID == id {
			delete(s.products, pid)
		}
	}
	return nil
}
