package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa y asigna el id generado.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (name, location)
		VALUES ($1, $2)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		company.Name, nullIfEmpty(company.Location),
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	return r.getOne(`SELECT id, name, COALESCE(location, '') FROM companies WHERE id = $1`, id)
}

// GetByName obtiene una empresa por nombre (clave única).
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.getOne(`SELECT id, name, COALESCE(location, '') FROM companies WHERE name = $1`, name)
}

func (r *CompanyRepo) getOne(query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(&c.ID, &c.Name, &c.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List lista empresas con paginación, ordenadas por id ascendente para que
// las páginas sean estables entre llamadas.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, COALESCE(location, '')
		FROM companies ORDER BY id ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	list := []*entity.Company{}
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Location); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa; sus productos caen por cascada. Devuelve
// domain.ErrNotFound si el id no existe (el segundo delete no es no-op).
func (r *CompanyRepo) Delete(id int64) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullIfEmpty mapea "" a NULL para columnas opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
