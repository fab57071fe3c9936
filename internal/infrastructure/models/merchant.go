package models

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug              string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Name              string    `gorm:"type:varchar(120);not null"`
	WhatsappPhone     string    `gorm:"type:varchar(20);not null"`
	Currency          string    `gorm:"type:varchar(3);not null;default:'ARS'"`
	Address           *string   `gorm:"type:text"`
	LogoURL           *string   `gorm:"type:text"`
	IsActive          bool      `gorm:"not null;default:true"`
	ShippingType      string    `gorm:"type:varchar(10);not null;default:'free'"`
	ShippingCostCents int64     `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
