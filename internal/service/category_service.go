package service

import (
	"context"
	"fmt"

	"menu-eva/internal/model"
	"menu-eva/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// GetAll retrieves all active categories.
func (s *categoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")
	return categories, nil
}

// GetByID retrieves a single category by ID.
func (s *categoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		return nil, model.ErrNotFound
	}

	return category, nil
}

// Create inserts a new category.
func (s *categoryService) Create(ctx context.Context, c model.NewCategory) (int64, error) {
	id, err := s.categoryRepo.Create(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Str("name", c.Name).Msg("failed to create category")
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Int64("category_id", id).Str("name", c.Name).Msg("category created")
	return id, nil
}

// Update applies a partial update to a category.
func (s *categoryService) Update(ctx context.Context, id int64, patch model.CategoryPatch) error {
	if err := s.categoryRepo.Update(ctx, id, patch); err != nil {
		if err == model.ErrEmptyPatch {
			return err
		}
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info().Int64("category_id", id).Msg("category updated")
	return nil
}

// Delete removes a category permanently; its products cascade away.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}
