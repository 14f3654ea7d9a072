package services

import (
	"fmt"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
)

// StatusProjector is a domain service responsible for deriving an order's
// projected latest status from its status event ledger and for verifying
// that a persisted projection agrees with the ledger.
//
// Business rules:
//   - The projection equals the status of the event with the greatest created
//     timestamp; ties are broken by the greatest event identifier
//   - An empty ledger projects to Unset
//   - A projection that disagrees with the ledger is an invariant violation,
//     never a recoverable condition
//
// Example usage:
//
//	projector := services.NewStatusProjector()
//	latest, _ := eventRepo.GetLatestForOrder(ctx, orderID)
//	status := projector.DeriveFromLatest(latest)
//	_ = ord.ApplyLatestStatus(status)
type StatusProjector struct{}

// NewStatusProjector creates a new StatusProjector instance.
func NewStatusProjector() StatusProjector {
	return StatusProjector{}
}

// Derive returns the projected status for the given ledger events.
// An empty slice derives to Unset.
func (p StatusProjector) Derive(events []*order.StatusEvent) order.Status {
	return p.DeriveFromLatest(order.Latest(events))
}

// DeriveFromLatest returns the projected status for a ledger whose winning
// event has already been selected. A nil event means the ledger is empty and
// derives to Unset.
func (StatusProjector) DeriveFromLatest(latest *order.StatusEvent) order.Status {
	if latest == nil {
		return order.Unset
	}
	return latest.Status()
}

// VerifyProjection checks that an order's persisted projection matches the
// status derived from its winning ledger event.
//
// Returns an InvariantViolationError describing the mismatch, or nil when
// the projection is consistent. Callers must log the error and repair the
// projection via recompute; it is a bug signal, not a user-facing failure.
func (p StatusProjector) VerifyProjection(aggregate *order.Order, latest *order.StatusEvent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	derived := p.DeriveFromLatest(latest)
	if aggregate.LatestStatus() == derived {
		return nil
	}

	return errs.NewInvariantViolationError(
		"latest status matches ledger",
		fmt.Sprintf("order %s: stored=%s derived=%s", aggregate.ID(), aggregate.LatestStatus(), derived),
	)
}
