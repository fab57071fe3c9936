package usecases

import (
	"context"
	"errors"
	"strings"

	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/domain/repositories"
	"orderlink.backend/pkg/whatsapp"
)

// MerchantUsecase is the privileged back-office surface behind the static
// admin API key: direct merchant creation without a linked user.
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(merchantRepo repositories.MerchantRepository) *MerchantUsecase {
	return &MerchantUsecase{merchantRepo: merchantRepo}
}

// CreateMerchant creates a merchant record. Slugs are lowercased and must be
// URL-safe; the slug must be free.
func (u *MerchantUsecase) CreateMerchant(ctx context.Context, input *entities.CreateMerchantInput) (*entities.Merchant, error) {
	slug := strings.ToLower(input.Slug)
	if !entities.SlugPattern.MatchString(slug) {
		return nil, domainerrors.BadRequest("slug may only contain lowercase letters, digits and hyphens")
	}

	_, err := u.merchantRepo.GetBySlug(ctx, slug)
	if err == nil {
		return nil, domainerrors.Conflict("merchant slug already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	phone := whatsapp.NormalizePhone(input.WhatsappPhone)
	if phone == "" {
		return nil, domainerrors.BadRequest("whatsapp_phone must contain at least one digit")
	}

	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = "ARS"
	}

	merchant := &entities.Merchant{
		Slug:          slug,
		Name:          input.Name,
		WhatsappPhone: phone,
		Currency:      currency,
		IsActive:      true,
		ShippingType:  entities.ShippingFree,
	}
	if input.LogoURL != "" {
		merchant.LogoURL.SetValid(input.LogoURL)
	}
	if input.Active != nil {
		merchant.IsActive = *input.Active
	}

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// ListMerchants lists every merchant, active or not
func (u *MerchantUsecase) ListMerchants(ctx context.Context) ([]*entities.Merchant, error) {
	return u.merchantRepo.List(ctx)
}
