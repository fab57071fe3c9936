package models

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(120);not null"`
	Description        *string   `gorm:"type:text"`
	PriceCents         int64     `gorm:"not null"`
	OriginalPriceCents *int64
	ImageURL           *string `gorm:"type:text"`
	IsActive           bool    `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
