package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
)

// CategoryRepository defines category data operations. Every method is
// merchant-scoped; a category of another merchant behaves as missing.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Category, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error)
	ListActiveByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	// Deactivate flips is_active off; rows are never removed.
	Deactivate(ctx context.Context, merchantID, id uuid.UUID) error
}
