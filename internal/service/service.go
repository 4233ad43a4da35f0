package service

import (
	"context"

	"menu-eva/internal/model"
)

// CategoryService defines business logic operations for menu categories.
type CategoryService interface {
	// GetAll retrieves all active categories.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category; ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create inserts a new category and returns its id.
	Create(ctx context.Context, c model.NewCategory) (int64, error)

	// Update applies a partial update to a category.
	Update(ctx context.Context, id int64, patch model.CategoryPatch) error

	// Delete removes a category and, by cascade, its products.
	Delete(ctx context.Context, id int64) error
}

// ProductService defines business logic operations for menu products.
type ProductService interface {
	// GetAll retrieves all available products, optionally filtered by
	// category (categoryID > 0).
	GetAll(ctx context.Context, categoryID int64) ([]model.Product, error)

	// GetBestsellers retrieves available products flagged as bestsellers.
	GetBestsellers(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product; ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns its id.
	Create(ctx context.Context, p model.NewProduct) (int64, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id int64, patch model.ProductPatch) error

	// Delete removes a product permanently.
	Delete(ctx context.Context, id int64) error

	// ListExpiredNew returns products whose "new" badge has expired.
	ListExpiredNew(ctx context.Context) ([]model.Product, error)

	// CleanupExpiredNew drops expired "new" badges and reports the count.
	CleanupExpiredNew(ctx context.Context) (int64, error)
}

// PromotionService defines business logic operations for promotional banners.
type PromotionService interface {
	// GetAll retrieves all active promotions.
	GetAll(ctx context.Context) ([]model.Promotion, error)

	// GetByID retrieves a single promotion; ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*model.Promotion, error)

	// Create inserts a new promotion and returns its id.
	Create(ctx context.Context, p model.NewPromotion) (int64, error)

	// Update applies a partial update to a promotion.
	Update(ctx context.Context, id int64, patch model.PromotionPatch) error

	// Delete removes a promotion permanently.
	Delete(ctx context.Context, id int64) error
}

// DiscountService defines business logic operations for discount codes.
type DiscountService interface {
	// GetAll retrieves every discount, disabled ones included.
	GetAll(ctx context.Context) ([]model.Discount, error)

	// GetByID retrieves a single discount; ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*model.Discount, error)

	// GetByCode retrieves an active discount by code; ErrNotFound when
	// the code is unknown or not active.
	GetByCode(ctx context.Context, code string) (*model.Discount, error)

	// Create inserts a new discount and returns its id.
	Create(ctx context.Context, d model.NewDiscount) (int64, error)

	// Update applies a partial update to a discount.
	Update(ctx context.Context, id int64, patch model.DiscountPatch) error

	// Delete disables a discount; the row is never removed.
	Delete(ctx context.Context, id int64) error

	// Redeem consumes one use of an active code; ErrDiscountUnavailable
	// when the code is unknown, inactive or exhausted.
	Redeem(ctx context.Context, code string) (*model.Discount, error)
}
