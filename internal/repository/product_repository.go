package repository

import (
	"context"
	"fmt"

	"menu-eva/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, name_en, description, description_en,
	price, original_price, calories, calories_unit, image_url, category_id,
	is_available, is_featured, is_bestseller, is_new, new_until_date,
	display_order, created_at, updated_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.NameEn, &p.Description, &p.DescriptionEn,
		&p.Price, &p.OriginalPrice, &p.Calories, &p.CaloriesUnit,
		&p.ImageURL, &p.CategoryID, &p.IsAvailable, &p.IsFeatured,
		&p.IsBestseller, &p.IsNew, &p.NewUntilDate, &p.DisplayOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetAll retrieves all available products ordered for display.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_available = TRUE
		ORDER BY display_order ASC, name ASC
	`, productColumns)
	return r.queryProducts(ctx, query)
}

// GetByCategory retrieves the available products of one category.
func (r *productRepository) GetByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE category_id = $1 AND is_available = TRUE
		ORDER BY display_order ASC, name ASC
	`, productColumns)
	return r.queryProducts(ctx, query, categoryID)
}

// GetBestsellers retrieves available products flagged as bestsellers.
func (r *productRepository) GetBestsellers(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_bestseller = TRUE AND is_available = TRUE
		ORDER BY display_order ASC, name ASC
	`, productColumns)
	return r.queryProducts(ctx, query)
}

// GetByID retrieves a single available product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE id = $1 AND is_available = TRUE
	`, productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product and returns the generated id. The calories
// unit is recorded as kcal whenever a calorie count is supplied.
func (r *productRepository) Create(ctx context.Context, p model.NewProduct) (int64, error) {
	query := `
		INSERT INTO products (
			name, name_en, description, description_en, price,
			original_price, calories, calories_unit, image_url,
			category_id, display_order, is_bestseller, is_new, new_until_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	var unit *string
	if p.Calories != nil {
		kcal := "kcal"
		unit = &kcal
	}

	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Name, p.NameEn, p.Description, p.DescriptionEn, p.Price,
		p.OriginalPrice, p.Calories, unit, p.ImageURL,
		p.CategoryID, p.DisplayOrder, p.IsBestseller, p.IsNew, p.NewUntilDate,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", p.Name).Msg("failed to create product")
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product created")
	return id, nil
}

// Update applies the non-nil fields of the patch to the product.
func (r *productRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) error {
	var s setClause
	if patch.Name != nil {
		s.set("name", *patch.Name)
	}
	if patch.NameEn != nil {
		s.setText("name_en", *patch.NameEn)
	}
	if patch.Description != nil {
		s.setText("description", *patch.Description)
	}
	if patch.DescriptionEn != nil {
		s.setText("description_en", *patch.DescriptionEn)
	}
	if patch.Price != nil {
		s.set("price", *patch.Price)
	}
	if patch.OriginalPrice != nil {
		s.set("original_price", *patch.OriginalPrice)
	}
	if patch.Calories != nil {
		s.set("calories", *patch.Calories)
		s.set("calories_unit", "kcal")
	}
	if patch.ImageURL != nil {
		s.setText("image_url", *patch.ImageURL)
	}
	if patch.CategoryID != nil {
		s.set("category_id", *patch.CategoryID)
	}
	if patch.IsAvailable != nil {
		s.set("is_available", *patch.IsAvailable)
	}
	if patch.IsFeatured != nil {
		s.set("is_featured", *patch.IsFeatured)
	}
	if patch.IsBestseller != nil {
		s.set("is_bestseller", *patch.IsBestseller)
	}
	if patch.IsNew != nil {
		s.set("is_new", *patch.IsNew)
	}
	if patch.NewUntilDate != nil {
		s.set("new_until_date", *patch.NewUntilDate)
	} else if patch.ClearNewUntil {
		s.set("new_until_date", nil)
	}
	if patch.DisplayOrder != nil {
		s.set("display_order", *patch.DisplayOrder)
	}

	query, args, err := s.build("products", id)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes the product permanently.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product deleted")
	return nil
}

// SoftDelete hides the product from the public menu without removing it.
func (r *productRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE products SET is_available = FALSE, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to soft delete product")
		return fmt.Errorf("failed to soft delete product: %w", err)
	}

	return nil
}

// ListExpiredNew returns products still flagged "new" whose badge expiry
// date has passed.
func (r *productRepository) ListExpiredNew(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_new = TRUE
		  AND new_until_date IS NOT NULL
		  AND new_until_date < CURRENT_DATE
		ORDER BY new_until_date DESC
	`, productColumns)
	return r.queryProducts(ctx, query)
}

// ClearExpiredNew drops the "new" flag from products whose badge expiry
// date has passed.
func (r *productRepository) ClearExpiredNew(ctx context.Context) (int64, error) {
	query := `
		UPDATE products
		SET is_new = FALSE, updated_at = now()
		WHERE is_new = TRUE
		  AND new_until_date IS NOT NULL
		  AND new_until_date < CURRENT_DATE
	`

	tag, err := r.pool.Exec(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to clear expired new flags")
		return 0, fmt.Errorf("failed to clear expired new flags: %w", err)
	}

	return tag.RowsAffected(), nil
}
