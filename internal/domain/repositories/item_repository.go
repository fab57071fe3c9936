package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
)

// ItemRepository defines product data operations, merchant-scoped.
type ItemRepository interface {
	Create(ctx context.Context, item *entities.Item) error
	GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Item, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error)
	ListActiveByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Item, error)
	// ListActiveByIDs resolves the requested product ids against the
	// merchant's active catalog; missing and inactive ids are simply absent
	// from the result.
	ListActiveByIDs(ctx context.Context, merchantID uuid.UUID, ids []uuid.UUID) ([]*entities.Item, error)
	Update(ctx context.Context, item *entities.Item) error
	Deactivate(ctx context.Context, merchantID, id uuid.UUID) error
	// DeactivateByCategory supports the category cascade delete.
	DeactivateByCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error
}
