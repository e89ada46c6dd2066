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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Join aplanado producto + nombres de empresa y categoría. Los alias evitan
// la colisión con name/id del propio producto.
const detailSelect = `
	SELECT p.id, p.name, COALESCE(p.description, ''), p.price, p.stock,
	       p.company_id, p.category_id,
	       co.name AS company_name, ca.name AS category_name
	FROM products p
	JOIN companies  co ON p.company_id  = co.id
	JOIN categories ca ON p.category_id = ca.id`

// Create persiste un nuevo producto y asigna el id generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, company_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		product.Name, nullIfEmpty(product.Description), product.Price,
		product.Stock, product.CompanyID, product.CategoryID,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (fila cruda, sin join).
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, stock, company_id, category_id
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CompanyID, &p.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetDetailByID obtiene un producto con los nombres de empresa y categoría.
func (r *ProductRepo) GetDetailByID(id int64) (*entity.ProductDetail, error) {
	var d entity.ProductDetail
	err := r.pool.QueryRow(context.Background(), detailSelect+` WHERE p.id = $1`, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.Price, &d.Stock,
		&d.CompanyID, &d.CategoryID, &d.CompanyName, &d.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &d, nil
}

// GetByNameAndCompany obtiene un producto por su clave única (name, company_id).
func (r *ProductRepo) GetByNameAndCompany(name string, companyID int64) (*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, stock, company_id, category_id
		FROM products WHERE name = $1 AND company_id = $2`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, name, companyID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CompanyID, &p.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return &p, nil
}

// ListDetail lista productos (proyección aplanada) ordenados por id ascendente.
func (r *ProductRepo) ListDetail(limit, offset int) ([]*entity.ProductDetail, error) {
	rows, err := r.pool.Query(context.Background(),
		detailSelect+` ORDER BY p.id ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanDetails(rows)
}

// ListAllDetail trae el catálogo completo, sin paginar, para exportaciones.
// La carga sin límite es una limitación de escala asumida del export.
func (r *ProductRepo) ListAllDetail() ([]*entity.ProductDetail, error) {
	rows, err := r.pool.Query(context.Background(), detailSelect+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	return scanDetails(rows)
}

// Search busca por subcadena (sin distinguir mayúsculas) en name o
// description, con filtros opcionales por empresa/categoría. Sin
// coincidencias devuelve lista vacía, nunca error.
func (r *ProductRepo) Search(filter repository.ProductFilter) ([]*entity.ProductDetail, error) {
	query := detailSelect + ` WHERE 1=1`
	args := []any{}
	arg := 0
	if filter.Query != "" {
		arg++
		query += fmt.Sprintf(` AND (p.name ILIKE $%d OR p.description ILIKE $%d)`, arg, arg)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.CompanyID != 0 {
		arg++
		query += fmt.Sprintf(` AND p.company_id = $%d`, arg)
		args = append(args, filter.CompanyID)
	}
	if filter.CategoryID != 0 {
		arg++
		query += fmt.Sprintf(` AND p.category_id = $%d`, arg)
		args = append(args, filter.CategoryID)
	}
	query += fmt.Sprintf(` ORDER BY p.id ASC LIMIT $%d OFFSET $%d`, arg+1, arg+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return scanDetails(rows)
}

// Update reemplaza todos los campos mutables del producto (sin patch parcial).
// Devuelve domain.ErrNotFound si el id no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, company_id = $6, category_id = $7
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price,
		product.Stock, product.CompanyID, product.CategoryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDetails(rows pgx.Rows) ([]*entity.ProductDetail, error) {
	defer rows.Close()
	list := []*entity.ProductDetail{}
	for rows.Next() {
		var d entity.ProductDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Stock,
			&d.CompanyID, &d.CategoryID, &d.CompanyName, &d.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
