package repositories

import "context"

// UnitOfWork runs a function within a database transaction. Repository
// calls made with the ctx passed to fn join the same transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
