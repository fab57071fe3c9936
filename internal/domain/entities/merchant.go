package entities

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ShippingType represents a merchant's delivery cost policy
type ShippingType string

const (
	ShippingFree ShippingType = "free"
	ShippingPaid ShippingType = "paid"
)

// SlugPattern restricts merchant slugs to lowercase URL-safe identifiers
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Merchant represents a tenant (restaurant) owning its catalog and orders
type Merchant struct {
	ID                uuid.UUID    `json:"id"`
	Slug              string       `json:"slug"`
	Name              string       `json:"name"`
	WhatsappPhone     string       `json:"whatsapp_phone"`
	Currency          string       `json:"currency"`
	Address           null.String  `json:"address,omitempty"`
	LogoURL           null.String  `json:"logo_url,omitempty"`
	IsActive          bool         `json:"active"`
	ShippingType      ShippingType `json:"shipping_type"`
	ShippingCostCents int64        `json:"shipping_cost_cents"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// RegisterMerchantInput is the public self-service registration payload
type RegisterMerchantInput struct {
	Name          string `json:"name" binding:"required,min=2,max=120"`
	Slug          string `json:"slug" binding:"required,min=3,max=80"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	WhatsappPhone string `json:"whatsapp_phone" binding:"required,min=8,max=20"`
	Address       string `json:"address,omitempty"`
}

// CreateMerchantInput is the privileged back-office creation payload
type CreateMerchantInput struct {
	Name          string `json:"name" binding:"required,min=2,max=120"`
	Slug          string `json:"slug" binding:"required,min=3,max=80"`
	WhatsappPhone string `json:"whatsapp_phone" binding:"required"`
	Currency      string `json:"currency,omitempty"`
	LogoURL       string `json:"logo_url,omitempty"`
	Active        *bool  `json:"active,omitempty"`
}

// UpdateMerchantInput is the admin settings payload; nil fields are untouched
type UpdateMerchantInput struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=2,max=120"`
	WhatsappPhone     *string `json:"whatsapp_phone,omitempty"`
	Currency          *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	Address           *string `json:"address,omitempty"`
	LogoURL           *string `json:"logo_url,omitempty"`
	ShippingType      *string `json:"shipping_type,omitempty" binding:"omitempty,oneof=free paid"`
	ShippingCostCents *int64  `json:"shipping_cost_cents,omitempty" binding:"omitempty,min=0"`
}

// RegisterMerchantResponse is returned after self-service registration
type RegisterMerchantResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	WhatsappPhone string    `json:"whatsapp_phone"`
	UserID        uuid.UUID `json:"user_id"`
	ShareLink     string    `json:"share_link"`
}
