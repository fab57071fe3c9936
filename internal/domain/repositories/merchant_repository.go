package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	// GetBySlug matches the lowercased slug regardless of active flag.
	GetBySlug(ctx context.Context, slug string) (*entities.Merchant, error)
	// GetActiveBySlug returns ErrNotFound for unknown and inactive slugs alike.
	GetActiveBySlug(ctx context.Context, slug string) (*entities.Merchant, error)
	Update(ctx context.Context, merchant *entities.Merchant) error
	List(ctx context.Context) ([]*entities.Merchant, error)
}
