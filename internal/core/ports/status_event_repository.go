package ports

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// StatusEventRepository defines the persistence contract for the status event
// ledger. The ledger is append-only apart from explicit deletes; events are
// never updated in place.
type StatusEventRepository interface {
	// Add persists a new status event.
	// The owning order must already exist.
	Add(ctx context.Context, event *order.StatusEvent) error

	// Get retrieves a status event by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.StatusEvent, error)

	// Delete removes a status event.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetLatestForOrder retrieves the event that determines the order's
	// current status: greatest created timestamp, ties broken by greatest
	// event identifier. Returns (nil, nil) when the order has no events;
	// an empty ledger is a normal state, not an error.
	GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*order.StatusEvent, error)

	// GetAllForOrder retrieves every event belonging to an order,
	// most recent first (same ordering as GetLatestForOrder).
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StatusEvent, error)
}
