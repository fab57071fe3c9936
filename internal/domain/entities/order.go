package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DeliveryType represents how the customer receives the order
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// OrderStatus represents the order lifecycle
type OrderStatus string

const (
	OrderStatusCreated        OrderStatus = "created"
	OrderStatusSentToWhatsapp OrderStatus = "sent_to_whatsapp"
)

// Order represents a placed order with its price snapshot
type Order struct {
	ID              uuid.UUID    `json:"id"`
	MerchantID      uuid.UUID    `json:"-"`
	ShortCode       int64        `json:"short_code"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	Delivery        DeliveryType `json:"delivery"`
	DeliveryAddress null.String  `json:"delivery_address,omitempty"`
	Notes           null.String  `json:"notes,omitempty"`
	Status          OrderStatus  `json:"status"`
	TotalCents      int64        `json:"total_cents"`
	WhatsappURL     null.String  `json:"whatsapp_url,omitempty"`
	Items           []OrderItem  `json:"items"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is one order line with the unit price captured at order time
type OrderItem struct {
	ID             uuid.UUID   `json:"id"`
	OrderID        uuid.UUID   `json:"-"`
	ItemID         uuid.UUID   `json:"product_id"`
	ProductName    string      `json:"product_name,omitempty"`
	Qty            int         `json:"qty"`
	Notes          null.String `json:"notes,omitempty"`
	UnitPriceCents int64       `json:"unit_price_cents"`
	LineTotalCents int64       `json:"line_total_cents"`
}

// OrderNumber renders the human-readable order number for an order
func (o *Order) OrderNumber() string {
	return FormatOrderNumber(o.ShortCode)
}

// FormatOrderNumber renders a short code like #000123
func FormatOrderNumber(shortCode int64) string {
	return fmt.Sprintf("#%06d", shortCode)
}

// CreateOrderInput is the public checkout payload
type CreateOrderInput struct {
	CustomerName    string                 `json:"customer_name" binding:"required,max=80"`
	CustomerPhone   string                 `json:"customer_phone" binding:"required,max=30"`
	Delivery        DeliveryType           `json:"delivery" binding:"required,oneof=pickup delivery"`
	DeliveryAddress string                 `json:"delivery_address,omitempty" binding:"omitempty,max=250"`
	Notes           string                 `json:"notes,omitempty" binding:"omitempty,max=500"`
	Items           []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemInput is one requested order line
type CreateOrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Qty       int       `json:"qty" binding:"required,min=1"`
	Notes     string    `json:"notes,omitempty" binding:"omitempty,max=250"`
}

// CreateOrderResponse is returned to the storefront after checkout
type CreateOrderResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	WhatsappURL string    `json:"whatsapp_url"`
	Status      string    `json:"status"`
}

// OrderFilter restricts admin order listings
type OrderFilter struct {
	Status OrderStatus
	From   *time.Time
	To     *time.Time
}
