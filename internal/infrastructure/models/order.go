package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID      uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_merchant_short,unique,priority:1;index"`
	ShortCode       int64     `gorm:"not null;index:idx_orders_merchant_short,unique,priority:2"`
	CustomerName    string    `gorm:"type:varchar(80);not null"`
	CustomerPhone   string    `gorm:"type:varchar(30);not null"`
	Delivery        string    `gorm:"type:varchar(10);not null"`
	DeliveryAddress *string   `gorm:"type:varchar(250)"`
	Notes           *string   `gorm:"type:varchar(500)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'created'"`
	TotalCents      int64     `gorm:"not null"`
	WhatsappURL     *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID         uuid.UUID `gorm:"type:uuid;not null"`
	Qty            int       `gorm:"not null"`
	Notes          *string   `gorm:"type:varchar(250)"`
	UnitPriceCents int64     `gorm:"not null"`
	LineTotalCents int64     `gorm:"not null"`
	CreatedAt      time.Time
}
