package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the full menu schema. Every statement is idempotent so the
// server can ensure it on each start.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
	id             BIGSERIAL PRIMARY KEY,
	name           TEXT NOT NULL,
	name_en        TEXT,
	description    TEXT,
	description_en TEXT,
	display_order  INTEGER NOT NULL DEFAULT 0,
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id             BIGSERIAL PRIMARY KEY,
	name           TEXT NOT NULL,
	name_en        TEXT,
	description    TEXT,
	description_en TEXT,
	price          NUMERIC(10, 2) NOT NULL,
	original_price NUMERIC(10, 2),
	calories       INTEGER,
	calories_unit  TEXT,
	image_url      TEXT,
	category_id    BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	is_available   BOOLEAN NOT NULL DEFAULT TRUE,
	is_featured    BOOLEAN NOT NULL DEFAULT FALSE,
	is_bestseller  BOOLEAN NOT NULL DEFAULT FALSE,
	is_new         BOOLEAN NOT NULL DEFAULT FALSE,
	new_until_date DATE,
	display_order  INTEGER NOT NULL DEFAULT 0,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_bestseller ON products(is_bestseller) WHERE is_bestseller;

CREATE TABLE IF NOT EXISTS promotions (
	id             BIGSERIAL PRIMARY KEY,
	title          TEXT NOT NULL,
	title_en       TEXT,
	description    TEXT,
	description_en TEXT,
	image_url      TEXT,
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	display_order  INTEGER NOT NULL DEFAULT 0,
	start_date     DATE,
	end_date       DATE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS discounts (
	id          BIGSERIAL PRIMARY KEY,
	code        TEXT NOT NULL UNIQUE,
	percentage  NUMERIC(5, 2) NOT NULL,
	status      TEXT NOT NULL DEFAULT 'active'
	            CHECK (status IN ('active', 'expired', 'disabled')),
	usage_limit INTEGER,
	used_count  INTEGER NOT NULL DEFAULT 0,
	start_date  DATE,
	end_date    DATE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the menu tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	logger.Info().Msg("database schema ensured")
	return nil
}

// SeedIfEmpty inserts a small demo menu when the categories table is empty,
// so a fresh install renders a non-empty public page.
func SeedIfEmpty(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if n > 0 {
		return nil
	}

	logger.Info().Msg("seeding demo categories and products")

	seed := `
WITH cat AS (
	INSERT INTO categories (name, name_en, display_order) VALUES
		('المشروبات الساخنة', 'Hot Drinks', 1),
		('الحلويات', 'Desserts', 2)
	RETURNING id, name_en
)
INSERT INTO products (name, name_en, price, category_id, display_order, calories, calories_unit)
SELECT v.name, v.name_en, v.price, cat.id, v.display_order, v.calories, 'kcal'
FROM cat
JOIN (VALUES
	('قهوة عربية', 'Arabic Coffee', 12.00, 'Hot Drinks', 1, 5),
	('شاي كرك',    'Karak Tea',     8.00,  'Hot Drinks', 2, 90),
	('كنافة',      'Kunafa',        22.00, 'Desserts',   1, 420)
) AS v(name, name_en, price, cat_name, display_order, calories)
	ON v.cat_name = cat.name_en
`
	if _, err := pool.Exec(ctx, seed); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	return nil
}
