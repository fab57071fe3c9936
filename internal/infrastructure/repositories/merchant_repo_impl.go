package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/infrastructure/models"
)

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	m := toMerchantModel(merchant)

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	merchant.CreatedAt = m.CreatedAt
	merchant.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMerchantEntity(&m), nil
}

// GetBySlug gets a merchant by lowercased slug regardless of active flag
func (r *MerchantRepository) GetBySlug(ctx context.Context, slug string) (*entities.Merchant, error) {
	var m models.Merchant
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("slug = ?", strings.ToLower(slug)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMerchantEntity(&m), nil
}

// GetActiveBySlug gets an active merchant by lowercased slug
func (r *MerchantRepository) GetActiveBySlug(ctx context.Context, slug string) (*entities.Merchant, error) {
	var m models.Merchant
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("slug = ? AND is_active = ?", strings.ToLower(slug), true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMerchantEntity(&m), nil
}

// Update updates a merchant
func (r *MerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	m := toMerchantModel(merchant)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Merchant{}).
		Where("id = ?", merchant.ID).
		Updates(map[string]interface{}{
			"name":                merchant.Name,
			"whatsapp_phone":      merchant.WhatsappPhone,
			"currency":            merchant.Currency,
			"address":             m.Address,
			"logo_url":            m.LogoURL,
			"is_active":           merchant.IsActive,
			"shipping_type":       string(merchant.ShippingType),
			"shipping_cost_cents": merchant.ShippingCostCents,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all active merchants ordered by name
func (r *MerchantRepository) List(ctx context.Context) ([]*entities.Merchant, error) {
	var merchantModels []models.Merchant
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&merchantModels).Error
	if err != nil {
		return nil, err
	}

	merchants := make([]*entities.Merchant, 0, len(merchantModels))
	for i := range merchantModels {
		merchants = append(merchants, toMerchantEntity(&merchantModels[i]))
	}
	return merchants, nil
}

func toMerchantEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:                m.ID,
		Slug:              m.Slug,
		Name:              m.Name,
		WhatsappPhone:     m.WhatsappPhone,
		Currency:          m.Currency,
		Address:           null.StringFromPtr(m.Address),
		LogoURL:           null.StringFromPtr(m.LogoURL),
		IsActive:          m.IsActive,
		ShippingType:      entities.ShippingType(m.ShippingType),
		ShippingCostCents: m.ShippingCostCents,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toMerchantModel(e *entities.Merchant) *models.Merchant {
	return &models.Merchant{
		ID:                e.ID,
		Slug:              e.Slug,
		Name:              e.Name,
		WhatsappPhone:     e.WhatsappPhone,
		Currency:          e.Currency,
		Address:           e.Address.Ptr(),
		LogoURL:           e.LogoURL.Ptr(),
		IsActive:          e.IsActive,
		ShippingType:      string(e.ShippingType),
		ShippingCostCents: e.ShippingCostCents,
	}
}
