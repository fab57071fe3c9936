package entities

import (
	"time"

	"github.com/google/uuid"
)

// Category represents one menu section of a merchant. Deactivation is the
// only form of deletion so historical orders keep their references.
type Category struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"-"`
	Name       string    `json:"name"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCategoryInput is the admin category creation payload
type CreateCategoryInput struct {
	Name      string `json:"name" binding:"required,min=1,max=80"`
	SortOrder *int   `json:"sort_order,omitempty" binding:"omitempty,min=0"`
}

// UpdateCategoryInput is the admin category update payload
type UpdateCategoryInput struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=80"`
	SortOrder *int    `json:"sort_order,omitempty" binding:"omitempty,min=0"`
	Active    *bool   `json:"active,omitempty"`
}
