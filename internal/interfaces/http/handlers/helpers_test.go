package handlers

import (
	"context"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
)

// fn-field stubs so each test wires only the calls it expects

type merchantRepoStub struct {
	createFn          func(ctx context.Context, merchant *entities.Merchant) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	getBySlugFn       func(ctx context.Context, slug string) (*entities.Merchant, error)
	getActiveBySlugFn func(ctx context.Context, slug string) (*entities.Merchant, error)
	updateFn          func(ctx context.Context, merchant *entities.Merchant) error
	listFn            func(ctx context.Context) ([]*entities.Merchant, error)
}

func (s merchantRepoStub) Create(ctx context.Context, merchant *entities.Merchant) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, merchant)
}
func (s merchantRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	if s.getByIDFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByIDFn(ctx, id)
}
func (s merchantRepoStub) GetBySlug(ctx context.Context, slug string) (*entities.Merchant, error) {
	if s.getBySlugFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getBySlugFn(ctx, slug)
}
func (s merchantRepoStub) GetActiveBySlug(ctx context.Context, slug string) (*entities.Merchant, error) {
	if s.getActiveBySlugFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getActiveBySlugFn(ctx, slug)
}
func (s merchantRepoStub) Update(ctx context.Context, merchant *entities.Merchant) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, merchant)
}
func (s merchantRepoStub) List(ctx context.Context) ([]*entities.Merchant, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

type categoryRepoStub struct {
	createFn               func(ctx context.Context, category *entities.Category) error
	getByIDFn              func(ctx context.Context, merchantID, id uuid.UUID) (*entities.Category, error)
	listByMerchantFn       func(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error)
	listActiveByMerchantFn func(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error)
	updateFn               func(ctx context.Context, category *entities.Category) error
	deactivateFn           func(ctx context.Context, merchantID, id uuid.UUID) error
}

func (s categoryRepoStub) Create(ctx context.Context, category *entities.Category) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, category)
}
func (s categoryRepoStub) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Category, error) {
	if s.getByIDFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByIDFn(ctx, merchantID, id)
}
func (s categoryRepoStub) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error) {
	if s.listByMerchantFn == nil {
		return nil, nil
	}
	return s.listByMerchantFn(ctx, merchantID)
}
func (s categoryRepoStub) ListActiveByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error) {
	if s.listActiveByMerchantFn == nil {
		return nil, nil
	}
	return s.listActiveByMerchantFn(ctx, merchantID)
}
func (s categoryRepoStub) Update(ctx context.Context, category *entities.Category) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, category)
}
func (s categoryRepoStub) Deactivate(ctx context.Context, merchantID, id uuid.UUID) error {
	if s.deactivateFn == nil {
		return nil
	}
	return s.deactivateFn(ctx, merchantID, id)
}

type itemRepoStub struct {
	createFn               func(ctx context.Context, item *entities.Item) error
	getByIDFn              func(ctx context.Context, merchantID, id uuid.UUID) (*entities.Item, error)
	listByMerchantFn       func(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error)
	listActiveByMerchantFn func(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error)
	listActiveByIDsFn      func(ctx context.Context, merchantID uuid.UUID, ids []uuid.UUID) ([]*entities.Item, error)
	updateFn               func(ctx context.Context, item *entities.Item) error
	deactivateFn           func(ctx context.Context, merchantID, id uuid.UUID) error
	deactivateByCategoryFn func(ctx context.Context, merchantID, categoryID uuid.UUID) error
}

func (s itemRepoStub) Create(ctx context.Context, item *entities.Item) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, item)
}
func (s itemRepoStub) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Item, error) {
	if s.getByIDFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByIDFn(ctx, merchantID, id)
}
func (s itemRepoStub) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error) {
	if s.listByMerchantFn == nil {
		return nil, nil
	}
	return s.listByMerchantFn(ctx, merchantID)
}
func (s itemRepoStub) ListActiveByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error) {
	if s.listActiveByMerchantFn == nil {
		return nil, nil
	}
	return s.listActiveByMerchantFn(ctx, merchantID)
}
func (s itemRepoStub) ListActiveByIDs(ctx context.Context, merchantID uuid.UUID, ids []uuid.UUID) ([]*entities.Item, error) {
	if s.listActiveByIDsFn == nil {
		return nil, nil
	}
	return s.listActiveByIDsFn(ctx, merchantID, ids)
}
func (s itemRepoStub) Update(ctx context.Context, item *entities.Item) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, item)
}
func (s itemRepoStub) Deactivate(ctx context.Context, merchantID, id uuid.UUID) error {
	if s.deactivateFn == nil {
		return nil
	}
	return s.deactivateFn(ctx, merchantID, id)
}
func (s itemRepoStub) DeactivateByCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error {
	if s.deactivateByCategoryFn == nil {
		return nil
	}
	return s.deactivateByCategoryFn(ctx, merchantID, categoryID)
}

type orderRepoStub struct {
	createFn         func(ctx context.Context, order *entities.Order) error
	nextShortCodeFn  func(ctx context.Context, merchantID uuid.UUID) (int64, error)
	setWhatsappURLFn func(ctx context.Context, id uuid.UUID, url string) error
	markSentFn       func(ctx context.Context, id uuid.UUID) (bool, error)
	getByIDFn        func(ctx context.Context, merchantID, id uuid.UUID) (*entities.Order, error)
	listFn           func(ctx context.Context, merchantID uuid.UUID, filter entities.OrderFilter) ([]*entities.Order, error)
}

func (s orderRepoStub) Create(ctx context.Context, order *entities.Order) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, order)
}
func (s orderRepoStub) NextShortCode(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	if s.nextShortCodeFn == nil {
		return 1, nil
	}
	return s.nextShortCodeFn(ctx, merchantID)
}
func (s orderRepoStub) SetWhatsappURL(ctx context.Context, id uuid.UUID, url string) error {
	if s.setWhatsappURLFn == nil {
		return nil
	}
	return s.setWhatsappURLFn(ctx, id, url)
}
func (s orderRepoStub) MarkSent(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.markSentFn == nil {
		return false, nil
	}
	return s.markSentFn(ctx, id)
}
func (s orderRepoStub) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Order, error) {
	if s.getByIDFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByIDFn(ctx, merchantID, id)
}
func (s orderRepoStub) List(ctx context.Context, merchantID uuid.UUID, filter entities.OrderFilter) ([]*entities.Order, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, merchantID, filter)
}

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	softDeleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, user)
}
func (s userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByIDFn(ctx, id)
}
func (s userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByEmailFn(ctx, email)
}
func (s userRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if s.softDeleteFn == nil {
		return nil
	}
	return s.softDeleteFn(ctx, id)
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
