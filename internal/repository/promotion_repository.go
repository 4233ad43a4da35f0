package repository

import (
	"context"
	"fmt"

	"menu-eva/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const promotionColumns = `id, title, title_en, description, description_en,
	image_url, is_active, display_order, start_date, end_date,
	created_at, updated_at`

// promotionRepository implements the PromotionRepository interface using PostgreSQL.
type promotionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPromotionRepository creates a new PostgreSQL-backed promotion repository.
func NewPromotionRepository(pool *pgxpool.Pool, logger zerolog.Logger) PromotionRepository {
	return &promotionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "promotion").Logger(),
	}
}

func scanPromotion(row pgx.Row, p *model.Promotion) error {
	return row.Scan(
		&p.ID, &p.Title, &p.TitleEn, &p.Description, &p.DescriptionEn,
		&p.ImageURL, &p.IsActive, &p.DisplayOrder, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// GetAll retrieves all active promotions, newest first within equal display order.
func (r *promotionRepository) GetAll(ctx context.Context) ([]model.Promotion, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM promotions
		WHERE is_active = TRUE
		ORDER BY display_order ASC, created_at DESC
	`, promotionColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query promotions")
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	defer rows.Close()

	var promotions []model.Promotion
	for rows.Next() {
		var p model.Promotion
		if err := scanPromotion(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan promotion row")
			return nil, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating promotion rows")
		return nil, fmt.Errorf("error iterating promotions: %w", err)
	}

	return promotions, nil
}

// GetByID retrieves a single active promotion by its ID.
func (r *promotionRepository) GetByID(ctx context.Context, id int64) (*model.Promotion, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM promotions
		WHERE id = $1 AND is_active = TRUE
	`, promotionColumns)

	var p model.Promotion
	err := scanPromotion(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("promotion_id", id).Msg("promotion not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to query promotion")
		return nil, fmt.Errorf("failed to query promotion: %w", err)
	}

	return &p, nil
}

// Create inserts a new promotion and returns the generated id.
func (r *promotionRepository) Create(ctx context.Context, p model.NewPromotion) (int64, error) {
	query := `
		INSERT INTO promotions (title, title_en, description, description_en,
			image_url, display_order, is_active, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Title, p.TitleEn, p.Description, p.DescriptionEn,
		p.ImageURL, p.DisplayOrder, p.StartDate, p.EndDate,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("title", p.Title).Msg("failed to create promotion")
		return 0, fmt.Errorf("failed to create promotion: %w", err)
	}

	r.logger.Debug().Int64("promotion_id", id).Msg("promotion created")
	return id, nil
}

// Update applies the non-nil fields of the patch to the promotion.
func (r *promotionRepository) Update(ctx context.Context, id int64, patch model.PromotionPatch) error {
	var s setClause
	if patch.Title != nil {
		s.set("title", *patch.Title)
	}
	if patch.TitleEn != nil {
		s.setText("title_en", *patch.TitleEn)
	}
	if patch.Description != nil {
		s.setText("description", *patch.Description)
	}
	if patch.DescriptionEn != nil {
		s.setText("description_en", *patch.DescriptionEn)
	}
	if patch.ImageURL != nil {
		s.setText("image_url", *patch.ImageURL)
	}
	if patch.IsActive != nil {
		s.set("is_active", *patch.IsActive)
	}
	if patch.DisplayOrder != nil {
		s.set("display_order", *patch.DisplayOrder)
	}
	if patch.StartDate != nil {
		s.set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		s.set("end_date", *patch.EndDate)
	}

	query, args, err := s.build("promotions", id)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to update promotion")
		return fmt.Errorf("failed to update promotion: %w", err)
	}

	return nil
}

// Delete removes the promotion permanently.
func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id); err != nil {
		r.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to delete promotion")
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	r.logger.Debug().Int64("promotion_id", id).Msg("promotion deleted")
	return nil
}

// SoftDelete hides the promotion without removing it.
func (r *promotionRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE promotions SET is_active = FALSE, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to soft delete promotion")
		return fmt.Errorf("failed to soft delete promotion: %w", err)
	}

	return nil
}
