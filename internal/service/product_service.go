package service

import (
	"context"
	"fmt"

	"menu-eva/internal/model"
	"menu-eva/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all available products, optionally filtered by category.
func (s *productService) GetAll(ctx context.Context, categoryID int64) ([]model.Product, error) {
	var (
		products []model.Product
		err      error
	)
	if categoryID > 0 {
		products, err = s.productRepo.GetByCategory(ctx, categoryID)
	} else {
		products, err = s.productRepo.GetAll(ctx)
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", categoryID).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int64("category_id", categoryID).
		Msg("retrieved products")

	return products, nil
}

// GetBestsellers retrieves available products flagged as bestsellers.
func (s *productService) GetBestsellers(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetBestsellers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get bestsellers")
		return nil, fmt.Errorf("failed to get bestsellers: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrNotFound
	}

	return product, nil
}

// Create inserts a new product.
func (s *productService) Create(ctx context.Context, p model.NewProduct) (int64, error) {
	id, err := s.productRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Str("name", p.Name).Msg("failed to create product")
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Str("name", p.Name).Msg("product created")
	return id, nil
}

// Update applies a partial update to a product.
func (s *productService) Update(ctx context.Context, id int64, patch model.ProductPatch) error {
	if err := s.productRepo.Update(ctx, id, patch); err != nil {
		if err == model.ErrEmptyPatch {
			return err
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return nil
}

// Delete removes a product permanently.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// ListExpiredNew returns products whose "new" badge has expired.
func (s *productService) ListExpiredNew(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListExpiredNew(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list expired new products")
		return nil, fmt.Errorf("failed to list expired new products: %w", err)
	}

	return products, nil
}

// CleanupExpiredNew drops expired "new" badges and reports how many
// products were touched.
func (s *productService) CleanupExpiredNew(ctx context.Context) (int64, error) {
	affected, err := s.productRepo.ClearExpiredNew(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to cleanup expired new products")
		return 0, fmt.Errorf("failed to cleanup expired new products: %w", err)
	}

	s.logger.Info().Int64("affected", affected).Msg("expired new badges cleared")
	return affected, nil
}
