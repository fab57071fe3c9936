package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
)

// OrderRepository defines order data operations.
type OrderRepository interface {
	// Create persists the order together with its line items. The caller
	// is expected to run it inside a UnitOfWork along with NextShortCode.
	Create(ctx context.Context, order *entities.Order) error
	// NextShortCode returns the next per-merchant sequential code.
	NextShortCode(ctx context.Context, merchantID uuid.UUID) (int64, error)
	// SetWhatsappURL stores the generated deep link and flips the status
	// to sent_to_whatsapp.
	SetWhatsappURL(ctx context.Context, id uuid.UUID, url string) error
	// MarkSent flips the status; reports whether the order existed.
	MarkSent(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, merchantID, id uuid.UUID) (*entities.Order, error)
	List(ctx context.Context, merchantID uuid.UUID, filter entities.OrderFilter) ([]*entities.Order, error)
}
