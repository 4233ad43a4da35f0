package service

import (
	"context"
	"fmt"

	"menu-eva/internal/model"
	"menu-eva/internal/repository"

	"github.com/rs/zerolog"
)

// discountService implements DiscountService.
type discountService struct {
	discountRepo repository.DiscountRepository
	logger       zerolog.Logger
}

// NewDiscountService creates a new discount service.
func NewDiscountService(discountRepo repository.DiscountRepository, logger zerolog.Logger) DiscountService {
	return &discountService{
		discountRepo: discountRepo,
		logger:       logger.With().Str("service", "discount").Logger(),
	}
}

// GetAll retrieves every discount, disabled ones included.
func (s *discountService) GetAll(ctx context.Context) ([]model.Discount, error) {
	discounts, err := s.discountRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all discounts")
		return nil, fmt.Errorf("failed to get discounts: %w", err)
	}

	s.logger.Debug().Int("count", len(discounts)).Msg("retrieved discounts")
	return discounts, nil
}

// GetByID retrieves a single discount by ID.
func (s *discountService) GetByID(ctx context.Context, id int64) (*model.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("discount_id", id).Msg("failed to get discount")
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}

	if discount == nil {
		return nil, model.ErrNotFound
	}

	return discount, nil
}

// GetByCode retrieves an active discount by its code.
func (s *discountService) GetByCode(ctx context.Context, code string) (*model.Discount, error) {
	discount, err := s.discountRepo.GetByCode(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("failed to get discount by code")
		return nil, fmt.Errorf("failed to get discount by code: %w", err)
	}

	if discount == nil {
		return nil, model.ErrNotFound
	}

	return discount, nil
}

// Create inserts a new discount.
func (s *discountService) Create(ctx context.Context, d model.NewDiscount) (int64, error) {
	id, err := s.discountRepo.Create(ctx, d)
	if err != nil {
		s.logger.Error().Err(err).Str("code", d.Code).Msg("failed to create discount")
		return 0, fmt.Errorf("failed to create discount: %w", err)
	}

	s.logger.Info().Int64("discount_id", id).Str("code", d.Code).Msg("discount created")
	return id, nil
}

// Update applies a partial update to a discount.
func (s *discountService) Update(ctx context.Context, id int64, patch model.DiscountPatch) error {
	if err := s.discountRepo.Update(ctx, id, patch); err != nil {
		if err == model.ErrEmptyPatch {
			return err
		}
		s.logger.Error().Err(err).Int64("discount_id", id).Msg("failed to update discount")
		return fmt.Errorf("failed to update discount: %w", err)
	}

	s.logger.Info().Int64("discount_id", id).Msg("discount updated")
	return nil
}

// Delete disables a discount. The row is never removed, so the code stays
// visible in the dashboard with status disabled.
func (s *discountService) Delete(ctx context.Context, id int64) error {
	if err := s.discountRepo.Disable(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("discount_id", id).Msg("failed to disable discount")
		return fmt.Errorf("failed to disable discount: %w", err)
	}

	s.logger.Info().Int64("discount_id", id).Msg("discount disabled")
	return nil
}

// Redeem consumes one use of an active code.
func (s *discountService) Redeem(ctx context.Context, code string) (*model.Discount, error) {
	discount, err := s.discountRepo.Redeem(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("failed to redeem discount")
		return nil, fmt.Errorf("failed to redeem discount: %w", err)
	}

	if discount == nil {
		return nil, model.ErrDiscountUnavailable
	}

	s.logger.Info().Str("code", code).Int("used_count", discount.UsedCount).Msg("discount redeemed")
	return discount, nil
}
