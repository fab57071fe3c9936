package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     string     `gorm:"type:varchar(120);not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'manager'"`
	IsActive     bool       `gorm:"not null;default:true"`
	MerchantID   *uuid.UUID `gorm:"type:uuid;index"`
	MerchantRole *string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
