package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MenuResponse is the public storefront projection of a merchant's catalog
type MenuResponse struct {
	Restaurant MenuRestaurant `json:"restaurant"`
	Categories []MenuCategory `json:"categories"`
}

// MenuRestaurant is the merchant header of the public menu
type MenuRestaurant struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	WhatsappPhone string    `json:"whatsapp_phone"`
	Currency      string    `json:"currency"`
}

// MenuCategory is one active category with its active products
type MenuCategory struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	SortOrder int           `json:"sort_order"`
	Products  []MenuProduct `json:"products"`
}

// MenuProduct is one active product as shown on the storefront
type MenuProduct struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Description        null.String `json:"description"`
	PriceCents         int64       `json:"price_cents"`
	OriginalPriceCents null.Int64  `json:"original_price_cents"`
	ImageURL           null.String `json:"image_url"`
	Active             bool        `json:"active"`
}
