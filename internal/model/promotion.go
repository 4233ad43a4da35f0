package model

import "time"

// Promotion represents a promotional banner shown on the public menu page.
type Promotion struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	TitleEn       *string    `json:"title_en" db:"title_en"`
	Description   *string    `json:"description" db:"description"`
	DescriptionEn *string    `json:"description_en" db:"description_en"`
	ImageURL      *string    `json:"image_url" db:"image_url"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	DisplayOrder  int        `json:"display_order" db:"display_order"`
	StartDate     *time.Time `json:"start_date" db:"start_date"`
	EndDate       *time.Time `json:"end_date" db:"end_date"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// NewPromotion holds the fields accepted when creating a promotion.
type NewPromotion struct {
	Title         string
	TitleEn       *string
	Description   *string
	DescriptionEn *string
	ImageURL      *string
	DisplayOrder  int
	StartDate     *time.Time
	EndDate       *time.Time
}

// PromotionPatch is a partial update: only non-nil fields are applied.
type PromotionPatch struct {
	Title         *string
	TitleEn       *string
	Description   *string
	DescriptionEn *string
	ImageURL      *string
	IsActive      *bool
	DisplayOrder  *int
	StartDate     *time.Time
	EndDate       *time.Time
}
