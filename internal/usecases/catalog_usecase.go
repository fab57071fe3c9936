package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/domain/repositories"
	"orderlink.backend/pkg/whatsapp"
)

// CatalogUsecase covers the merchant-facing admin surface: restaurant
// settings, categories and products. Every operation is scoped to the
// authenticated user's merchant.
type CatalogUsecase struct {
	merchantRepo repositories.MerchantRepository
	categoryRepo repositories.CategoryRepository
	itemRepo     repositories.ItemRepository
	uow          repositories.UnitOfWork
	menu         *MenuUsecase
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	merchantRepo repositories.MerchantRepository,
	categoryRepo repositories.CategoryRepository,
	itemRepo repositories.ItemRepository,
	uow repositories.UnitOfWork,
	menu *MenuUsecase,
) *CatalogUsecase {
	return &CatalogUsecase{
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		uow:          uow,
		menu:         menu,
	}
}

// GetRestaurant returns the authenticated merchant's settings
func (u *CatalogUsecase) GetRestaurant(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByID(ctx, merchantID)
}

// UpdateRestaurant applies a partial settings update. Phone numbers are
// normalized to digits and the currency code is uppercased before storage.
func (u *CatalogUsecase) UpdateRestaurant(ctx context.Context, merchantID uuid.UUID, input *entities.UpdateMerchantInput) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		merchant.Name = *input.Name
	}
	if input.WhatsappPhone != nil {
		digits := whatsapp.NormalizePhone(*input.WhatsappPhone)
		if digits == "" {
			return nil, domainerrors.BadRequest("whatsapp_phone must contain at least one digit")
		}
		merchant.WhatsappPhone = digits
	}
	if input.Currency != nil {
		merchant.Currency = strings.ToUpper(*input.Currency)
	}
	if input.Address != nil {
		merchant.Address = null.NewString(*input.Address, *input.Address != "")
	}
	if input.LogoURL != nil {
		merchant.LogoURL = null.NewString(*input.LogoURL, *input.LogoURL != "")
	}
	if input.ShippingType != nil {
		merchant.ShippingType = entities.ShippingType(*input.ShippingType)
	}
	if input.ShippingCostCents != nil {
		merchant.ShippingCostCents = *input.ShippingCostCents
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	u.menu.InvalidateMenu(ctx, merchant.Slug)
	return merchant, nil
}

// ListCategories lists all of the merchant's categories, active or not
func (u *CatalogUsecase) ListCategories(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error) {
	return u.categoryRepo.ListByMerchant(ctx, merchantID)
}

// CreateCategory creates a new active category
func (u *CatalogUsecase) CreateCategory(ctx context.Context, merchantID uuid.UUID, input *entities.CreateCategoryInput) (*entities.Category, error) {
	category := &entities.Category{
		MerchantID: merchantID,
		Name:       input.Name,
		IsActive:   true,
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	u.invalidateMerchantMenu(ctx, merchantID)
	return category, nil
}

// UpdateCategory applies a partial category update
func (u *CatalogUsecase) UpdateCategory(ctx context.Context, merchantID, categoryID uuid.UUID, input *entities.UpdateCategoryInput) (*entities.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, merchantID, categoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.Active != nil {
		category.IsActive = *input.Active
	}

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	u.invalidateMerchantMenu(ctx, merchantID)
	return category, nil
}

// DeleteCategory soft-deletes a category and cascades the flag to its
// products in one transaction. Historical orders keep their references.
func (u *CatalogUsecase) DeleteCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error {
	if _, err := u.categoryRepo.GetByID(ctx, merchantID, categoryID); err != nil {
		return err
	}
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.categoryRepo.Deactivate(txCtx, merchantID, categoryID); err != nil {
			return err
		}
		return u.itemRepo.DeactivateByCategory(txCtx, merchantID, categoryID)
	})
	if err != nil {
		return err
	}
	u.invalidateMerchantMenu(ctx, merchantID)
	return nil
}

// ListProducts lists all of the merchant's products, active or not
func (u *CatalogUsecase) ListProducts(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error) {
	return u.itemRepo.ListByMerchant(ctx, merchantID)
}

// CreateProduct creates a product under one of the merchant's categories
func (u *CatalogUsecase) CreateProduct(ctx context.Context, merchantID uuid.UUID, input *entities.CreateItemInput) (*entities.Item, error) {
	// The category must belong to this merchant; anything else is a 404.
	if _, err := u.categoryRepo.GetByID(ctx, merchantID, input.CategoryID); err != nil {
		return nil, err
	}

	item := &entities.Item{
		MerchantID:  merchantID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: null.NewString(input.Description, input.Description != ""),
		PriceCents:  *input.PriceCents,
		ImageURL:    null.NewString(input.ImageURL, input.ImageURL != ""),
		IsActive:    true,
	}
	if input.OriginalPriceCents != nil {
		item.OriginalPriceCents = null.Int64From(*input.OriginalPriceCents)
	}
	if input.Active != nil {
		item.IsActive = *input.Active
	}

	if err := u.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	u.invalidateMerchantMenu(ctx, merchantID)
	return item, nil
}

// UpdateProduct applies a partial product update. Moving the product to
// another category re-checks ownership of the target category.
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, merchantID, itemID uuid.UUID, input *entities.UpdateItemInput) (*entities.Item, error) {
	item, err := u.itemRepo.GetByID(ctx, merchantID, itemID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != item.CategoryID {
		if _, err := u.categoryRepo.GetByID(ctx, merchantID, *input.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = null.NewString(*input.Description, *input.Description != "")
	}
	if input.PriceCents != nil {
		item.PriceCents = *input.PriceCents
	}
	if input.OriginalPriceCents != nil {
		item.OriginalPriceCents = null.Int64From(*input.OriginalPriceCents)
	}
	if input.ImageURL != nil {
		item.ImageURL = null.NewString(*input.ImageURL, *input.ImageURL != "")
	}
	if input.Active != nil {
		item.IsActive = *input.Active
	}

	if err := u.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	u.invalidateMerchantMenu(ctx, merchantID)
	return item, nil
}

// DeleteProduct soft-deletes a product
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, merchantID, itemID uuid.UUID) error {
	if err := u.itemRepo.Deactivate(ctx, merchantID, itemID); err != nil {
		return err
	}
	u.invalidateMerchantMenu(ctx, merchantID)
	return nil
}

func (u *CatalogUsecase) invalidateMerchantMenu(ctx context.Context, merchantID uuid.UUID) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return
	}
	u.menu.InvalidateMenu(ctx, merchant.Slug)
}
