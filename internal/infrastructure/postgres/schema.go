package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL del catálogo. Las claves únicas viven en el motor: el pre-chequeo de
// duplicados en los casos de uso no es la única defensa contra la carrera
// check-then-insert. El borrado de una empresa o categoría arrastra sus
// productos (ON DELETE CASCADE).
const schemaDDL = `
CREATE TABLE IF NOT EXISTS companies (
	id       BIGSERIAL PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	location TEXT
);

CREATE TABLE IF NOT EXISTS categories (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	price       NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
	stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	company_id  BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	UNIQUE (name, company_id)
);

CREATE INDEX IF NOT EXISTS idx_products_company_id  ON products (company_id);
CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id);
`

// EnsureSchema aplica el DDL del catálogo de forma idempotente al arranque.
// No sustituye un sistema de migraciones; el esquema es estable.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
