package order

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root whose lifecycle is tracked through status events.
//
// An order holds a single denormalized attribute beyond its identity: the
// projected latest status. The projection invariant is that latestStatus
// always equals the status of the ledger event with the greatest created
// timestamp for this order (ties broken by greatest event identifier), or
// Unset when no events exist. Maintaining that invariant is the job of the
// recompute path, not the aggregate itself; the aggregate only guarantees
// the stored value is a well-formed projected status.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// latestStatus is the projected status derived from the event ledger
	latestStatus Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with no status history.
// The projected status starts as Unset and stays Unset until the first
// status event is recorded.
//
// Returns an error if the identifier is invalid.
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		latestStatus:  Unset,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts any well-formed projected status, including
// Unset for orders whose events were all deleted.
func RestoreOrder(id kernel.UUID, latestStatus Status) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := latestStatus.ValidateProjected(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		latestStatus:  latestStatus,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructed orders
// cross a trust boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// LatestStatus returns the projected status of the order.
// Unset means the order currently has no status events.
func (o *Order) LatestStatus() Status {
	return o.latestStatus
}

// ApplyLatestStatus overwrites the projected status with a freshly derived
// value. Called by the recompute path after it has read the ledger; accepts
// Unset because deleting an order's last event clears the projection.
func (o *Order) ApplyLatestStatus(status Status) error {
	if err := status.ValidateProjected(); err != nil {
		return err
	}

	o.latestStatus = status
	return nil
}
