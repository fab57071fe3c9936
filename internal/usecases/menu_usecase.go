package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"orderlink.backend/internal/domain/entities"
	"orderlink.backend/internal/domain/repositories"
	"orderlink.backend/pkg/logger"
	"orderlink.backend/pkg/redis"
)

// MenuUsecase assembles the public menu projection
type MenuUsecase struct {
	merchantRepo repositories.MerchantRepository
	categoryRepo repositories.CategoryRepository
	itemRepo     repositories.ItemRepository
	cache        *redis.MenuCache
}

// NewMenuUsecase creates a new menu usecase. cache may be nil when Redis
// is not configured.
func NewMenuUsecase(
	merchantRepo repositories.MerchantRepository,
	categoryRepo repositories.CategoryRepository,
	itemRepo repositories.ItemRepository,
	cache *redis.MenuCache,
) *MenuUsecase {
	return &MenuUsecase{
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		cache:        cache,
	}
}

// GetMenuBySlug returns the active menu of an active merchant. The result
// is read-through cached; cache failures fall back to the database.
func (u *MenuUsecase) GetMenuBySlug(ctx context.Context, slug string) (*entities.MenuResponse, error) {
	slug = strings.ToLower(slug)

	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, slug); err == nil {
			var menu entities.MenuResponse
			if err := json.Unmarshal([]byte(cached), &menu); err == nil {
				return &menu, nil
			}
		}
	}

	merchant, err := u.merchantRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	categories, err := u.categoryRepo.ListActiveByMerchant(ctx, merchant.ID)
	if err != nil {
		return nil, err
	}

	items, err := u.itemRepo.ListActiveByMerchant(ctx, merchant.ID)
	if err != nil {
		return nil, err
	}

	itemsByCategory := make(map[string][]entities.MenuProduct, len(categories))
	for _, item := range items {
		key := item.CategoryID.String()
		itemsByCategory[key] = append(itemsByCategory[key], entities.MenuProduct{
			ID:                 item.ID,
			Name:               item.Name,
			Description:        item.Description,
			PriceCents:         item.PriceCents,
			OriginalPriceCents: item.OriginalPriceCents,
			ImageURL:           item.ImageURL,
			Active:             item.IsActive,
		})
	}

	menu := &entities.MenuResponse{
		Restaurant: entities.MenuRestaurant{
			ID:            merchant.ID,
			Name:          merchant.Name,
			Slug:          merchant.Slug,
			WhatsappPhone: merchant.WhatsappPhone,
			Currency:      merchant.Currency,
		},
		Categories: make([]entities.MenuCategory, 0, len(categories)),
	}
	for _, category := range categories {
		products := itemsByCategory[category.ID.String()]
		if products == nil {
			products = []entities.MenuProduct{}
		}
		menu.Categories = append(menu.Categories, entities.MenuCategory{
			ID:        category.ID,
			Name:      category.Name,
			SortOrder: category.SortOrder,
			Products:  products,
		})
	}

	if u.cache != nil {
		if payload, err := json.Marshal(menu); err == nil {
			if err := u.cache.Set(ctx, slug, string(payload)); err != nil {
				logger.Warn(ctx, "menu cache write failed", zap.String("slug", slug), zap.Error(err))
			}
		}
	}

	return menu, nil
}

// InvalidateMenu drops the cached menu for a slug after a catalog write
func (u *MenuUsecase) InvalidateMenu(ctx context.Context, slug string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, strings.ToLower(slug)); err != nil {
		logger.Warn(ctx, "menu cache invalidation failed", zap.String("slug", slug), zap.Error(err))
	}
}
