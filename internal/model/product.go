package model

import "time"

// Product represents a single menu item belonging to a category.
type Product struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	NameEn        *string    `json:"name_en" db:"name_en"`
	Description   *string    `json:"description" db:"description"`
	DescriptionEn *string    `json:"description_en" db:"description_en"`
	Price         float64    `json:"price" db:"price"`
	OriginalPrice *float64   `json:"original_price" db:"original_price"`
	Calories      *int       `json:"calories" db:"calories"`
	CaloriesUnit  *string    `json:"calories_unit" db:"calories_unit"`
	ImageURL      *string    `json:"image_url" db:"image_url"`
	CategoryID    int64      `json:"category_id" db:"category_id"`
	IsAvailable   bool       `json:"is_available" db:"is_available"`
	IsFeatured    bool       `json:"is_featured" db:"is_featured"`
	IsBestseller  bool       `json:"is_bestseller" db:"is_bestseller"`
	IsNew         bool       `json:"is_new" db:"is_new"`
	NewUntilDate  *time.Time `json:"new_until_date" db:"new_until_date"`
	DisplayOrder  int        `json:"display_order" db:"display_order"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// IsNewOn reports whether the product should carry the "new" badge on the
// given day: the flag must be set and the badge must not have expired.
// A nil NewUntilDate means the badge never expires.
func (p *Product) IsNewOn(day time.Time) bool {
	if !p.IsNew {
		return false
	}
	if p.NewUntilDate == nil {
		return true
	}
	y, m, d := day.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := p.NewUntilDate.Date()
	until := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return !until.Before(today)
}

// NewProduct holds the fields accepted when creating a product.
// Optional fields default to null / zero in the database.
type NewProduct struct {
	Name          string
	NameEn        *string
	Description   *string
	DescriptionEn *string
	Price         float64
	OriginalPrice *float64
	Calories      *int
	ImageURL      *string
	CategoryID    int64
	DisplayOrder  int
	IsBestseller  bool
	IsNew         bool
	NewUntilDate  *time.Time
}

// ProductPatch is a partial update: only non-nil fields are applied.
// ClearNewUntil removes the badge expiry date explicitly, since a nil
// NewUntilDate already means "field absent".
type ProductPatch struct {
	Name          *string
	NameEn        *string
	Description   *string
	DescriptionEn *string
	Price         *float64
	OriginalPrice *float64
	Calories      *int
	ImageURL      *string
	CategoryID    *int64
	IsAvailable   *bool
	IsFeatured    *bool
	IsBestseller  *bool
	IsNew         *bool
	NewUntilDate  *time.Time
	ClearNewUntil bool
	DisplayOrder  *int
}
