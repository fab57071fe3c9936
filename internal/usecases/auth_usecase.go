package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/domain/repositories"
	"orderlink.backend/pkg/crypto"
	"orderlink.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user and returns a session token. Unknown email,
// inactive user and wrong password all yield the same invalid-credentials
// error so the endpoint cannot be used to enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.LoginResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(
		user.ID,
		user.Email,
		user.FullName,
		string(user.Role),
		user.MerchantID,
		string(user.MerchantRole),
	)
	if err != nil {
		return nil, err
	}

	return &entities.LoginResponse{
		AccessToken: token,
		User: &entities.LoginUserDTO{
			ID:           user.ID,
			Email:        user.Email,
			FullName:     user.FullName,
			Role:         user.Role,
			MerchantID:   user.MerchantID,
			MerchantRole: user.MerchantRole,
		},
	}, nil
}

// Me returns the current user's profile
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// CreateUser creates a panel user, optionally linked to a merchant. Used by
// the admin-key-gated back office.
func (u *AuthUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	email := strings.ToLower(input.Email)

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("user with this email already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entities.UserRoleManager
	}
	merchantRole := input.MerchantRole
	if input.MerchantID != nil && merchantRole == "" {
		merchantRole = entities.UserRoleManager
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     input.FullName,
		Role:         role,
		IsActive:     true,
		MerchantID:   input.MerchantID,
		MerchantRole: merchantRole,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser soft-deletes a panel user so its sessions stop resolving
func (u *AuthUsecase) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, userID)
}
