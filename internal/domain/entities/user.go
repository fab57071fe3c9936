package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents platform-level and merchant-level roles
type UserRole string

const (
	UserRoleSuperAdmin UserRole = "super_admin"
	UserRoleManager    UserRole = "manager"
)

// User represents a panel user. A manager is linked to exactly one
// merchant; super admins have no merchant link.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"active"`
	MerchantID   *uuid.UUID `json:"restaurant_id,omitempty"`
	MerchantRole UserRole   `json:"restaurant_role,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    null.Time  `json:"-"`
}

// LoginInput is the credentials payload
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *LoginUserDTO `json:"user"`
}

// LoginUserDTO is the user block of the login response
type LoginUserDTO struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         UserRole   `json:"role"`
	MerchantID   *uuid.UUID `json:"restaurant_id"`
	MerchantRole UserRole   `json:"restaurant_role,omitempty"`
}

// CreateUserInput is the privileged user creation payload
type CreateUserInput struct {
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password" binding:"required,min=8"`
	FullName     string     `json:"full_name" binding:"required,min=2,max=120"`
	Role         UserRole   `json:"role,omitempty" binding:"omitempty,oneof=super_admin manager"`
	MerchantID   *uuid.UUID `json:"restaurant_id,omitempty"`
	MerchantRole UserRole   `json:"restaurant_role,omitempty" binding:"omitempty,oneof=super_admin manager"`
}
