package order

import (
	"errors"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
)

var (
	// ErrStatusEventIsNotConstructed is returned when a StatusEvent was not created
	// through the NewStatusEvent or RestoreStatusEvent factory methods.
	ErrStatusEventIsNotConstructed = errors.New("StatusEvent must be created via NewStatusEvent or RestoreStatusEvent")
)

// StatusEvent is a single timestamped status observation belonging to one
// order. Events form the append-only ledger from which the order's projected
// latest status is derived.
//
// The owning order reference is immutable after creation. Events may be
// freely backdated or future-dated: the ledger does not validate ordering or
// monotonicity, because the derivation rule only cares about the maximum
// created timestamp at read time.
type StatusEvent struct {
	// id is the unique identifier for the event
	id kernel.UUID

	// orderID references the owning order; immutable after creation
	orderID kernel.UUID

	// status is the observed status, never Unset
	status Status

	// created is the observation timestamp
	created time.Time

	// isConstructed ensures the event was created via a factory method
	isConstructed bool
}

// NewStatusEvent creates a new status event for an order.
// A zero created time defaults to the current time; any non-zero timestamp,
// past or future, is accepted.
//
// Returns an error if either identifier is invalid or the status is not one
// of the three event statuses.
func NewStatusEvent(id kernel.UUID, orderID kernel.UUID, status Status, created time.Time) (*StatusEvent, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if created.IsZero() {
		created = time.Now().UTC()
	}

	return &StatusEvent{
		id:            id,
		orderID:       orderID,
		status:        status,
		created:       created,
		isConstructed: true,
	}, nil
}

// RestoreStatusEvent reconstructs a StatusEvent from persistence.
// The created timestamp must be the persisted value; a zero timestamp is
// rejected rather than defaulted.
func RestoreStatusEvent(id kernel.UUID, orderID kernel.UUID, status Status, created time.Time) (*StatusEvent, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if created.IsZero() {
		return nil, ErrStatusEventIsNotConstructed
	}

	return &StatusEvent{
		id:            id,
		orderID:       orderID,
		status:        status,
		created:       created,
		isConstructed: true,
	}, nil
}

// Validate ensures the StatusEvent was properly constructed through a
// factory method.
func (e *StatusEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStatusEventIsNotConstructed
	}

	return nil
}

// ID returns the event's unique identifier.
func (e *StatusEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the owning order.
func (e *StatusEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the observed status.
func (e *StatusEvent) Status() Status {
	return e.status
}

// Created returns the observation timestamp.
func (e *StatusEvent) Created() time.Time {
	return e.created
}

// Supersedes reports whether this event, not other, determines the order's
// current status. Later created timestamps win; equal timestamps fall back
// to the greater event identifier so the outcome is deterministic.
//
// This is the single derivation rule for the whole system. The ledger's
// SQL ordering (created DESC, id DESC) must agree with it.
func (e *StatusEvent) Supersedes(other *StatusEvent) bool {
	if other == nil {
		return true
	}
	if !e.created.Equal(other.created) {
		return e.created.After(other.created)
	}
	return e.id.Compare(other.id) > 0
}

// Latest returns the event that determines the current status among the
// given events, or nil if the slice is empty.
func Latest(events []*StatusEvent) *StatusEvent {
	var latest *StatusEvent
	for _, e := range events {
		if e.Supersedes(latest) {
			latest = e
		}
	}
	return latest
}
