package model

import "time"

// Category represents a menu section, with Arabic and English names.
type Category struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	NameEn        *string   `json:"name_en" db:"name_en"`
	Description   *string   `json:"description" db:"description"`
	DescriptionEn *string   `json:"description_en" db:"description_en"`
	DisplayOrder  int       `json:"display_order" db:"display_order"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// NewCategory holds the fields accepted when creating a category.
// Optional fields default to null / zero in the database.
type NewCategory struct {
	Name          string
	NameEn        *string
	Description   *string
	DescriptionEn *string
	DisplayOrder  int
}

// CategoryPatch is a partial update: only non-nil fields are applied.
type CategoryPatch struct {
	Name          *string
	NameEn        *string
	Description   *string
	DescriptionEn *string
	DisplayOrder  *int
	IsActive      *bool
}
