package repository

import (
	"context"

	"menu-eva/internal/model"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// GetAll retrieves all active categories ordered for display.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single active category, or nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create inserts a new category and returns its generated id.
	Create(ctx context.Context, c model.NewCategory) (int64, error)

	// Update applies the non-nil fields of the patch to the category.
	Update(ctx context.Context, id int64, patch model.CategoryPatch) error

	// Delete removes the category permanently; products cascade away with it.
	Delete(ctx context.Context, id int64) error

	// SoftDelete hides the category from the public menu without removing it.
	SoftDelete(ctx context.Context, id int64) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all available products ordered for display.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByCategory retrieves the available products of one category.
	GetByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)

	// GetBestsellers retrieves available products flagged as bestsellers.
	GetBestsellers(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single available product, or nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns its generated id.
	Create(ctx context.Context, p model.NewProduct) (int64, error)

	// Update applies the non-nil fields of the patch to the product.
	Update(ctx context.Context, id int64, patch model.ProductPatch) error

	// Delete removes the product permanently.
	Delete(ctx context.Context, id int64) error

	// SoftDelete hides the product from the public menu without removing it.
	SoftDelete(ctx context.Context, id int64) error

	// ListExpiredNew returns products still flagged "new" whose badge
	// expiry date has passed.
	ListExpiredNew(ctx context.Context) ([]model.Product, error)

	// ClearExpiredNew drops the "new" flag from products whose badge
	// expiry date has passed and reports how many rows changed.
	ClearExpiredNew(ctx context.Context) (int64, error)
}

// PromotionRepository defines the interface for promotion data access operations.
type PromotionRepository interface {
	// GetAll retrieves all active promotions ordered for display.
	GetAll(ctx context.Context) ([]model.Promotion, error)

	// GetByID retrieves a single active promotion, or nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Promotion, error)

	// Create inserts a new promotion and returns its generated id.
	Create(ctx context.Context, p model.NewPromotion) (int64, error)

	// Update applies the non-nil fields of the patch to the promotion.
	Update(ctx context.Context, id int64, patch model.PromotionPatch) error

	// Delete removes the promotion permanently.
	Delete(ctx context.Context, id int64) error

	// SoftDelete hides the promotion without removing it.
	SoftDelete(ctx context.Context, id int64) error
}

// DiscountRepository defines the interface for discount data access operations.
type DiscountRepository interface {
	// GetAll retrieves every discount, newest first. Disabled codes are
	// included so the dashboard can show redemption history.
	GetAll(ctx context.Context) ([]model.Discount, error)

	// GetByID retrieves a single discount regardless of status, or nil
	// when absent.
	GetByID(ctx context.Context, id int64) (*model.Discount, error)

	// GetByCode retrieves an active discount by its code, or nil.
	GetByCode(ctx context.Context, code string) (*model.Discount, error)

	// Create inserts a new discount and returns its generated id. The
	// code column is unique; a duplicate surfaces as a database error.
	Create(ctx context.Context, d model.NewDiscount) (int64, error)

	// Update applies the non-nil fields of the patch to the discount.
	Update(ctx context.Context, id int64, patch model.DiscountPatch) error

	// Disable flips the discount status to disabled. The row is kept.
	Disable(ctx context.Context, id int64) error

	// Redeem atomically increments used_count for an active code that has
	// not hit its usage limit and returns the updated discount. Returns
	// nil when the code is unknown, inactive or exhausted.
	Redeem(ctx context.Context, code string) (*model.Discount, error)
}
