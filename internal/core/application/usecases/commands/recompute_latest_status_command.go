package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrRecomputeLatestStatusCommandIsNotConstructed = errors.New(
		"RecomputeLatestStatusCommand must be created via NewRecomputeLatestStatusCommand constructor",
	)
)

// RecomputeLatestStatusCommand represents a request to re-derive an order's
// projected latest status from its ledger, independent of any ledger
// mutation. The operation is idempotent: running it twice with no intervening
// ledger change yields the same projection both times, which makes it safe
// to use for retries after transient store failures and for repairs.
type RecomputeLatestStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecomputeLatestStatusCommand creates a command to recompute an order's projection.
// Validates that the order ID is a properly constructed UUID.
func NewRecomputeLatestStatusCommand(orderID kernel.UUID) (RecomputeLatestStatusCommand, error) {
	cmd := RecomputeLatestStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RecomputeLatestStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecomputeLatestStatusCommandIsNotConstructed if validation fails.
func (c RecomputeLatestStatusCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeLatestStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to recompute.
func (c RecomputeLatestStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RecomputeLatestStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
