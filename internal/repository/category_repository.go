package repository

import (
	"context"
	"fmt"

	"menu-eva/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const categoryColumns = `id, name, name_en, description, description_en,
	display_order, is_active, created_at, updated_at`

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

func scanCategory(row pgx.Row, c *model.Category) error {
	return row.Scan(
		&c.ID, &c.Name, &c.NameEn, &c.Description, &c.DescriptionEn,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
}

// GetAll retrieves all active categories ordered for display.
func (r *categoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM categories
		WHERE is_active = TRUE
		ORDER BY display_order ASC, name ASC
	`, categoryColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := scanCategory(rows, &c); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single active category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM categories
		WHERE id = $1 AND is_active = TRUE
	`, categoryColumns)

	var c model.Category
	err := scanCategory(r.pool.QueryRow(ctx, query, id), &c)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

// Create inserts a new category and returns the generated id.
func (r *categoryRepository) Create(ctx context.Context, c model.NewCategory) (int64, error) {
	query := `
		INSERT INTO categories (name, name_en, description, description_en, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		c.Name, c.NameEn, c.Description, c.DescriptionEn, c.DisplayOrder,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", c.Name).Msg("failed to create category")
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().Int64("category_id", id).Msg("category created")
	return id, nil
}

// Update applies the non-nil fields of the patch to the category.
func (r *categoryRepository) Update(ctx context.Context, id int64, patch model.CategoryPatch) error {
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
	if patch.DisplayOrder != nil {
		s.set("display_order", *patch.DisplayOrder)
	}
	if patch.IsActive != nil {
		s.set("is_active", *patch.IsActive)
	}

	query, args, err := s.build("categories", id)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// Delete removes the category permanently. The schema cascades the delete
// to the category's products.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	r.logger.Debug().Int64("category_id", id).Msg("category deleted")
	return nil
}

// SoftDelete hides the category from the public menu without removing it.
func (r *categoryRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE categories SET is_active = FALSE, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to soft delete category")
		return fmt.Errorf("failed to soft delete category: %w", err)
	}

	return nil
}
