package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/infrastructure/models"
)

// ItemRepository implements product data operations
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create creates a new item
func (r *ItemRepository) Create(ctx context.Context, item *entities.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m := toItemModel(item)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an item scoped to a merchant
func (r *ItemRepository) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Item, error) {
	var m models.Item
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toItemEntity(&m), nil
}

// ListByMerchant lists every item of a merchant, active first then by name
func (r *ItemRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error) {
	var itemModels []models.Item
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("is_active DESC").
		Order("name ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}
	return toItemEntities(itemModels), nil
}

// ListActiveByMerchant lists active items of a merchant by name
func (r *ItemRepository) ListActiveByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error) {
	var itemModels []models.Item
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("merchant_id = ? AND is_active = ?", merchantID, true).
		Order("name ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}
	return toItemEntities(itemModels), nil
}

// ListActiveByIDs resolves requested ids against the merchant's active catalog
func (r *ItemRepository) ListActiveByIDs(ctx context.Context, merchantID uuid.UUID, ids []uuid.UUID) ([]*entities.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var itemModels []models.Item
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id IN ? AND merchant_id = ? AND is_active = ?", ids, merchantID, true).
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}
	return toItemEntities(itemModels), nil
}

// Update updates an item
func (r *ItemRepository) Update(ctx context.Context, item *entities.Item) error {
	m := toItemModel(item)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND merchant_id = ?", item.ID, item.MerchantID).
		Updates(map[string]interface{}{
			"category_id":          item.CategoryID,
			"name":                 item.Name,
			"description":          m.Description,
			"price_cents":          item.PriceCents,
			"original_price_cents": m.OriginalPriceCents,
			"image_url":            m.ImageURL,
			"is_active":            item.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Deactivate soft deletes an item
func (r *ItemRepository) Deactivate(ctx context.Context, merchantID, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeactivateByCategory soft deletes every item of a category
func (r *ItemRepository) DeactivateByCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Item{}).
		Where("category_id = ? AND merchant_id = ?", categoryID, merchantID).
		Update("is_active", false).Error
}

func toItemEntities(itemModels []models.Item) []*entities.Item {
	items := make([]*entities.Item, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, toItemEntity(&itemModels[i]))
	}
	return items
}

func toItemEntity(m *models.Item) *entities.Item {
	return &entities.Item{
		ID:                 m.ID,
		MerchantID:         m.MerchantID,
		CategoryID:         m.CategoryID,
		Name:               m.Name,
		Description:        null.StringFromPtr(m.Description),
		PriceCents:         m.PriceCents,
		OriginalPriceCents: null.Int64FromPtr(m.OriginalPriceCents),
		ImageURL:           null.StringFromPtr(m.ImageURL),
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toItemModel(e *entities.Item) *models.Item {
	return &models.Item{
		ID:                 e.ID,
		MerchantID:         e.MerchantID,
		CategoryID:         e.CategoryID,
		Name:               e.Name,
		Description:        e.Description.Ptr(),
		PriceCents:         e.PriceCents,
		OriginalPriceCents: e.OriginalPriceCents.Ptr(),
		ImageURL:           e.ImageURL.Ptr(),
		IsActive:           e.IsActive,
	}
}
