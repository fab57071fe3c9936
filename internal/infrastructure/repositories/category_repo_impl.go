package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/infrastructure/models"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m := &models.Category{
		ID:         category.ID,
		MerchantID: category.MerchantID,
		Name:       category.Name,
		SortOrder:  category.SortOrder,
		IsActive:   category.IsActive,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a category scoped to a merchant
func (r *CategoryRepository) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCategoryEntity(&m), nil
}

// ListByMerchant lists all categories of a merchant by sort order
func (r *CategoryRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error) {
	return r.list(ctx, merchantID, false)
}

// ListActiveByMerchant lists active categories of a merchant by sort order
func (r *CategoryRepository) ListActiveByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error) {
	return r.list(ctx, merchantID, true)
}

func (r *CategoryRepository) list(ctx context.Context, merchantID uuid.UUID, activeOnly bool) ([]*entities.Category, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []models.Category
	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, toCategoryEntity(&categoryModels[i]))
	}
	return categories, nil
}

// Update updates a category
func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ? AND merchant_id = ?", category.ID, category.MerchantID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"sort_order": category.SortOrder,
			"is_active":  category.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Deactivate soft deletes a category
func (r *CategoryRepository) Deactivate(ctx context.Context, merchantID, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Category{}).
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

func toCategoryEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:         m.ID,
		MerchantID: m.MerchantID,
		Name:       m.Name,
		SortOrder:  m.SortOrder,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
