package model

import "time"

// Discount status values.
const (
	DiscountStatusActive   = "active"
	DiscountStatusExpired  = "expired"
	DiscountStatusDisabled = "disabled"
)

// Discount represents a percentage discount code. Deleting a discount never
// removes the row; it flips the status to disabled so redemption history
// stays intact.
type Discount struct {
	ID         int64      `json:"id" db:"id"`
	Code       string     `json:"code" db:"code"`
	Percentage float64    `json:"percentage" db:"percentage"`
	Status     string     `json:"status" db:"status"`
	UsageLimit *int       `json:"usage_limit" db:"usage_limit"`
	UsedCount  int        `json:"used_count" db:"used_count"`
	StartDate  *time.Time `json:"start_date" db:"start_date"`
	EndDate    *time.Time `json:"end_date" db:"end_date"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// NewDiscount holds the fields accepted when creating a discount code.
type NewDiscount struct {
	Code       string
	Percentage float64
	UsageLimit *int
	StartDate  *time.Time
	EndDate    *time.Time
}

// DiscountPatch is a partial update: only non-nil fields are applied.
type DiscountPatch struct {
	Code       *string
	Percentage *float64
	Status     *string
	UsageLimit *int
	UsedCount  *int
}
