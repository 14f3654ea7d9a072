package ports

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and deleting orders together
// with their projected latest status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including its projected latest status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes a row-level lock on it for
	// the duration of the surrounding transaction. Concurrent writers to the
	// same order serialize on this lock; writers to different orders do not.
	// Must be called inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. The persistence layer cascades deletion of
	// all status events belonging to the order.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every order and, via cascade, every status event.
	DeleteAll(ctx context.Context) error

	// GetAllIDs retrieves the identifiers of all orders, in stable order.
	GetAllIDs(ctx context.Context) ([]kernel.UUID, error)
}
