package usecases_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/usecases"
	"orderlink.backend/pkg/redis"
)

func newMenuUsecase(cache *redis.MenuCache) (*usecases.MenuUsecase, *MockMerchantRepository, *MockCategoryRepository, *MockItemRepository) {
	merchantRepo := new(MockMerchantRepository)
	categoryRepo := new(MockCategoryRepository)
	itemRepo := new(MockItemRepository)
	uc := usecases.NewMenuUsecase(merchantRepo, categoryRepo, itemRepo, cache)
	return uc, merchantRepo, categoryRepo, itemRepo
}

func menuFixtures() (*entities.Merchant, []*entities.Category, []*entities.Item) {
	merchant := &entities.Merchant{
		ID:            uuid.New(),
		Slug:          "la-esquina",
		Name:          "La Esquina",
		WhatsappPhone: "5491122334455",
		Currency:      "ARS",
		IsActive:      true,
	}
	pizzas := &entities.Category{ID: uuid.New(), MerchantID: merchant.ID, Name: "Pizzas", SortOrder: 1, IsActive: true}
	drinks := &entities.Category{ID: uuid.New(), MerchantID: merchant.ID, Name: "Bebidas", SortOrder: 2, IsActive: true}
	items := []*entities.Item{
		{ID: uuid.New(), MerchantID: merchant.ID, CategoryID: pizzas.ID, Name: "Muzzarella", PriceCents: 400000, IsActive: true},
		{ID: uuid.New(), MerchantID: merchant.ID, CategoryID: drinks.ID, Name: "Gaseosa", PriceCents: 120000, IsActive: true},
	}
	return merchant, []*entities.Category{pizzas, drinks}, items
}

func TestMenuUsecase_GetMenuBySlug_AssemblesCategories(t *testing.T) {
	uc, merchantRepo, categoryRepo, itemRepo := newMenuUsecase(nil)
	merchant, categories, items := menuFixtures()

	merchantRepo.On("GetActiveBySlug", mock.Anything, "la-esquina").Return(merchant, nil).Once()
	categoryRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(categories, nil).Once()
	itemRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(items, nil).Once()

	menu, err := uc.GetMenuBySlug(context.Background(), "la-esquina")
	require.NoError(t, err)

	assert.Equal(t, "La Esquina", menu.Restaurant.Name)
	assert.Equal(t, "la-esquina", menu.Restaurant.Slug)
	require.Len(t, menu.Categories, 2)
	assert.Equal(t, "Pizzas", menu.Categories[0].Name)
	require.Len(t, menu.Categories[0].Products, 1)
	assert.Equal(t, "Muzzarella", menu.Categories[0].Products[0].Name)
	assert.Equal(t, int64(400000), menu.Categories[0].Products[0].PriceCents)
	assert.Equal(t, "Bebidas", menu.Categories[1].Name)
}

func TestMenuUsecase_GetMenuBySlug_EmptyCategoryHasEmptyProducts(t *testing.T) {
	uc, merchantRepo, categoryRepo, itemRepo := newMenuUsecase(nil)
	merchant, categories, _ := menuFixtures()

	merchantRepo.On("GetActiveBySlug", mock.Anything, "la-esquina").Return(merchant, nil).Once()
	categoryRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(categories, nil).Once()
	itemRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return([]*entities.Item{}, nil).Once()

	menu, err := uc.GetMenuBySlug(context.Background(), "la-esquina")
	require.NoError(t, err)
	require.Len(t, menu.Categories, 2)
	assert.NotNil(t, menu.Categories[0].Products)
	assert.Empty(t, menu.Categories[0].Products)
}

func TestMenuUsecase_GetMenuBySlug_SlugIsLowercased(t *testing.T) {
	uc, merchantRepo, categoryRepo, itemRepo := newMenuUsecase(nil)
	merchant, categories, items := menuFixtures()

	merchantRepo.On("GetActiveBySlug", mock.Anything, "la-esquina").Return(merchant, nil).Once()
	categoryRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(categories, nil).Once()
	itemRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(items, nil).Once()

	_, err := uc.GetMenuBySlug(context.Background(), "LA-Esquina")
	require.NoError(t, err)
	merchantRepo.AssertExpectations(t)
}

func TestMenuUsecase_GetMenuBySlug_NotFoundPassesThrough(t *testing.T) {
	uc, merchantRepo, _, _ := newMenuUsecase(nil)

	merchantRepo.On("GetActiveBySlug", mock.Anything, "nope").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.GetMenuBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMenuUsecase_GetMenuBySlug_SecondReadServedFromCache(t *testing.T) {
	srv := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })

	cache := redis.NewMenuCache(0)
	uc, merchantRepo, categoryRepo, itemRepo := newMenuUsecase(cache)
	merchant, categories, items := menuFixtures()

	merchantRepo.On("GetActiveBySlug", mock.Anything, "la-esquina").Return(merchant, nil).Once()
	categoryRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(categories, nil).Once()
	itemRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(items, nil).Once()

	first, err := uc.GetMenuBySlug(context.Background(), "la-esquina")
	require.NoError(t, err)

	// all repo expectations are Once; a second hit would fail them
	second, err := uc.GetMenuBySlug(context.Background(), "la-esquina")
	require.NoError(t, err)
	assert.Equal(t, first.Restaurant.ID, second.Restaurant.ID)
	assert.Equal(t, len(first.Categories), len(second.Categories))

	merchantRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestMenuUsecase_InvalidateMenu_ForcesReload(t *testing.T) {
	srv := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })

	cache := redis.NewMenuCache(0)
	uc, merchantRepo, categoryRepo, itemRepo := newMenuUsecase(cache)
	merchant, categories, items := menuFixtures()

	merchantRepo.On("GetActiveBySlug", mock.Anything, "la-esquina").Return(merchant, nil).Twice()
	categoryRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(categories, nil).Twice()
	itemRepo.On("ListActiveByMerchant", mock.Anything, merchant.ID).Return(items, nil).Twice()

	_, err := uc.GetMenuBySlug(context.Background(), "la-esquina")
	require.NoError(t, err)

	uc.InvalidateMenu(context.Background(), "la-esquina")

	_, err = uc.GetMenuBySlug(context.Background(), "la-esquina")
	require.NoError(t, err)

	merchantRepo.AssertExpectations(t)
}
