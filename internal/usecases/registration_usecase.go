package usecases

import (
	"context"
	"errors"
	"strings"

	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/domain/repositories"
	"orderlink.backend/pkg/crypto"
	"orderlink.backend/pkg/whatsapp"
)

// RegistrationUsecase handles public merchant self-service registration
type RegistrationUsecase struct {
	merchantRepo repositories.MerchantRepository
	userRepo     repositories.UserRepository
	uow          repositories.UnitOfWork
	shareBaseURL string
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	shareBaseURL string,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
		uow:          uow,
		shareBaseURL: strings.TrimSuffix(shareBaseURL, "/"),
	}
}

// Register creates a merchant and its manager user atomically. Slug and
// email conflicts are checked before any write.
func (u *RegistrationUsecase) Register(ctx context.Context, input *entities.RegisterMerchantInput) (*entities.RegisterMerchantResponse, error) {
	slug := strings.ToLower(input.Slug)
	if !entities.SlugPattern.MatchString(slug) {
		return nil, domainerrors.BadRequest("slug must contain only lowercase letters, digits and hyphens")
	}

	_, err := u.merchantRepo.GetBySlug(ctx, slug)
	if err == nil {
		return nil, domainerrors.Conflict("merchant slug already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	email := strings.ToLower(input.Email)
	_, err = u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("user with this email already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	phone := whatsapp.NormalizePhone(input.WhatsappPhone)
	if phone == "" {
		return nil, domainerrors.BadRequest("whatsapp_phone must contain digits")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	merchant := &entities.Merchant{
		Slug:          slug,
		Name:          input.Name,
		WhatsappPhone: phone,
		Currency:      "ARS",
		IsActive:      true,
		ShippingType:  entities.ShippingFree,
	}
	if input.Address != "" {
		merchant.Address.SetValid(input.Address)
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     input.Name,
		Role:         entities.UserRoleManager,
		IsActive:     true,
		MerchantRole: entities.UserRoleManager,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.merchantRepo.Create(txCtx, merchant); err != nil {
			return err
		}
		user.MerchantID = &merchant.ID
		return u.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return &entities.RegisterMerchantResponse{
		ID:            merchant.ID,
		Name:          merchant.Name,
		Slug:          merchant.Slug,
		WhatsappPhone: merchant.WhatsappPhone,
		UserID:        user.ID,
		ShareLink:     u.shareBaseURL + "/m/" + merchant.Slug,
	}, nil
}
