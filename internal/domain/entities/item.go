package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Item represents one product of a merchant's catalog. Prices are integer
// minor currency units; OriginalPriceCents is only set while discounted.
type Item struct {
	ID                 uuid.UUID   `json:"id"`
	MerchantID         uuid.UUID   `json:"-"`
	CategoryID         uuid.UUID   `json:"category_id"`
	Name               string      `json:"name"`
	Description        null.String `json:"description,omitempty"`
	PriceCents         int64       `json:"price_cents"`
	OriginalPriceCents null.Int64  `json:"original_price_cents,omitempty"`
	ImageURL           null.String `json:"image_url,omitempty"`
	IsActive           bool        `json:"active"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// CreateItemInput is the admin product creation payload
type CreateItemInput struct {
	CategoryID         uuid.UUID `json:"category_id" binding:"required"`
	Name               string    `json:"name" binding:"required,min=1,max=120"`
	Description        string    `json:"description,omitempty" binding:"omitempty,max=500"`
	PriceCents         *int64    `json:"price_cents" binding:"required,min=0"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty" binding:"omitempty,min=0"`
	ImageURL           string    `json:"image_url,omitempty"`
	Active             *bool     `json:"active,omitempty"`
}

// UpdateItemInput is the admin product update payload
type UpdateItemInput struct {
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	Name               *string    `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Description        *string    `json:"description,omitempty" binding:"omitempty,max=500"`
	PriceCents         *int64     `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	OriginalPriceCents *int64     `json:"original_price_cents,omitempty" binding:"omitempty,min=0"`
	ImageURL           *string    `json:"image_url,omitempty"`
	Active             *bool      `json:"active,omitempty"`
}
