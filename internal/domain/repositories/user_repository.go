package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderlink.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// GetByEmail matches the lowercased email.
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
