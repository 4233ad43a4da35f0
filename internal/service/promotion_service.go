package service

import (
	"context"
	"fmt"

	"menu-eva/internal/model"
	"menu-eva/internal/repository"

	"github.com/rs/zerolog"
)

// promotionService implements PromotionService.
type promotionService struct {
	promotionRepo repository.PromotionRepository
	logger        zerolog.Logger
}

// NewPromotionService creates a new promotion service.
func NewPromotionService(promotionRepo repository.PromotionRepository, logger zerolog.Logger) PromotionService {
	return &promotionService{
		promotionRepo: promotionRepo,
		logger:        logger.With().Str("service", "promotion").Logger(),
	}
}

// GetAll retrieves all active promotions.
func (s *promotionService) GetAll(ctx context.Context) ([]model.Promotion, error) {
	promotions, err := s.promotionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all promotions")
		return nil, fmt.Errorf("failed to get promotions: %w", err)
	}

	s.logger.Debug().Int("count", len(promotions)).Msg("retrieved promotions")
	return promotions, nil
}

// GetByID retrieves a single promotion by ID.
func (s *promotionService) GetByID(ctx context.Context, id int64) (*model.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to get promotion")
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}

	if promotion == nil {
		return nil, model.ErrNotFound
	}

	return promotion, nil
}

// Create inserts a new promotion.
func (s *promotionService) Create(ctx context.Context, p model.NewPromotion) (int64, error) {
	id, err := s.promotionRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Str("title", p.Title).Msg("failed to create promotion")
		return 0, fmt.Errorf("failed to create promotion: %w", err)
	}

	s.logger.Info().Int64("promotion_id", id).Str("title", p.Title).Msg("promotion created")
	return id, nil
}

// Update applies a partial update to a promotion.
func (s *promotionService) Update(ctx context.Context, id int64, patch model.PromotionPatch) error {
	if err := s.promotionRepo.Update(ctx, id, patch); err != nil {
		if err == model.ErrEmptyPatch {
			return err
		}
		s.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to update promotion")
		return fmt.Errorf("failed to update promotion: %w", err)
	}

	s.logger.Info().Int64("promotion_id", id).Msg("promotion updated")
	return nil
}

// Delete removes a promotion permanently.
func (s *promotionService) Delete(ctx context.Context, id int64) error {
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("promotion_id", id).Msg("failed to delete promotion")
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	s.logger.Info().Int64("promotion_id", id).Msg("promotion deleted")
	return nil
}
