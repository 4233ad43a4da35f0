package repository

import (
	"context"
	"fmt"

	"menu-eva/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const discountColumns = `id, code, percentage, status, usage_limit,
	used_count, start_date, end_date, created_at, updated_at`

// discountRepository implements the DiscountRepository interface using PostgreSQL.
type discountRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDiscountRepository creates a new PostgreSQL-backed discount repository.
func NewDiscountRepository(pool *pgxpool.Pool, logger zerolog.Logger) DiscountRepository {
	return &discountRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "discount").Logger(),
	}
}

func scanDiscount(row pgx.Row, d *model.Discount) error {
	return row.Scan(
		&d.ID, &d.Code, &d.Percentage, &d.Status, &d.UsageLimit,
		&d.UsedCount, &d.StartDate, &d.EndDate, &d.CreatedAt, &d.UpdatedAt,
	)
}

// GetAll retrieves every discount, newest first.
func (r *discountRepository) GetAll(ctx context.Context) ([]model.Discount, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM discounts
		ORDER BY created_at DESC
	`, discountColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query discounts")
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	var discounts []model.Discount
	for rows.Next() {
		var d model.Discount
		if err := scanDiscount(rows, &d); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan discount row")
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating discount rows")
		return nil, fmt.Errorf("error iterating discounts: %w", err)
	}

	return discounts, nil
}

// GetByID retrieves a single discount regardless of status. Disabled codes
// stay visible to the dashboard.
func (r *discountRepository) GetByID(ctx context.Context, id int64) (*model.Discount, error) {
	query := fmt.Sprintf(`SELECT %s FROM discounts WHERE id = $1`, discountColumns)

	var d model.Discount
	err := scanDiscount(r.pool.QueryRow(ctx, query, id), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("discount_id", id).Msg("discount not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("discount_id", id).Msg("failed to query discount")
		return nil, fmt.Errorf("failed to query discount: %w", err)
	}

	return &d, nil
}

// GetByCode retrieves an active discount by its code.
func (r *discountRepository) GetByCode(ctx context.Context, code string) (*model.Discount, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM discounts
		WHERE code = $1 AND status = 'active'
	`, discountColumns)

	var d model.Discount
	err := scanDiscount(r.pool.QueryRow(ctx, query, code), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("code", code).Msg("active discount not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("code", code).Msg("failed to query discount by code")
		return nil, fmt.Errorf("failed to query discount by code: %w", err)
	}

	return &d, nil
}

// Create inserts a new discount and returns the generated id. Duplicate
// codes violate the unique constraint and surface as a database error;
// the application does not pre-validate uniqueness.
func (r *discountRepository) Create(ctx context.Context, d model.NewDiscount) (int64, error) {
	query := `
		INSERT INTO discounts (code, percentage, usage_limit, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		d.Code, d.Percentage, d.UsageLimit, d.StartDate, d.EndDate,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("code", d.Code).Msg("failed to create discount")
		return 0, fmt.Errorf("failed to create discount: %w", err)
	}

	r.logger.Debug().Int64("discount_id", id).Msg("discount created")
	return id, nil
}

// Update applies the non-nil fields of the patch to the discount.
func (r *discountRepository) Update(ctx context.Context, id int64, patch model.DiscountPatch) error {
	var s setClause
	if patch.Code != nil {
		s.set("code", *patch.Code)
	}
	if patch.Percentage != nil {
		s.set("percentage", *patch.Percentage)
	}
	if patch.Status != nil {
		s.set("status", *patch.Status)
	}
	if patch.UsageLimit != nil {
		s.set("usage_limit", *patch.UsageLimit)
	}
	if patch.UsedCount != nil {
		s.set("used_count", *patch.UsedCount)
	}

	query, args, err := s.build("discounts", id)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error().Err(err).Int64("discount_id", id).Msg("failed to update discount")
		return fmt.Errorf("failed to update discount: %w", err)
	}

	return nil
}

// Disable flips the discount status to disabled. The row is kept so past
// redemptions remain auditable.
func (r *discountRepository) Disable(ctx context.Context, id int64) error {
	query := `UPDATE discounts SET status = 'disabled', updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int64("discount_id", id).Msg("failed to disable discount")
		return fmt.Errorf("failed to disable discount: %w", err)
	}

	r.logger.Debug().Int64("discount_id", id).Msg("discount disabled")
	return nil
}

// Redeem atomically increments used_count for an active code that has not
// hit its usage limit. A single conditional UPDATE keeps concurrent
// redemptions from overshooting the limit.
func (r *discountRepository) Redeem(ctx context.Context, code string) (*model.Discount, error) {
	query := fmt.Sprintf(`
		UPDATE discounts
		SET used_count = used_count + 1, updated_at = now()
		WHERE code = $1
		  AND status = 'active'
		  AND (usage_limit IS NULL OR used_count < usage_limit)
		RETURNING %s
	`, discountColumns)

	var d model.Discount
	err := scanDiscount(r.pool.QueryRow(ctx, query, code), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("code", code).Msg("discount not redeemable")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("code", code).Msg("failed to redeem discount")
		return nil, fmt.Errorf("failed to redeem discount: %w", err)
	}

	r.logger.Debug().Str("code", code).Int("used_count", d.UsedCount).Msg("discount redeemed")
	return &d, nil
}
