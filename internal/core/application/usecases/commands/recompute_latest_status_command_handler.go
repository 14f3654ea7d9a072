package commands

import (
	"context"

	"ordertracking/internal/core/domain/services"
)

// RecomputeLatestStatusCommandHandler re-derives an order's projection from
// its ledger under the same row lock the mutating handlers take, so a repair
// recompute can never race a concurrent record or delete for that order.
type RecomputeLatestStatusCommandHandler struct {
	uowFactory UoWFactory
	projector  services.StatusProjector
}

// NewRecomputeLatestStatusCommandHandler creates a handler for projection recomputes.
func NewRecomputeLatestStatusCommandHandler(uowFactory UoWFactory) RecomputeLatestStatusCommandHandler {
	return RecomputeLatestStatusCommandHandler{
		uowFactory: uowFactory,
		projector:  services.NewStatusProjector(),
	}
}

// Handle processes the recompute command.
// Returns an ObjectNotFoundError when the order does not exist. Safe to call
// redundantly; a recompute that finds the projection already correct simply
// rewrites the same value.
func (h *RecomputeLatestStatusCommandHandler) Handle(ctx context.Context, cmd RecomputeLatestStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = recomputeProjection(ctx, uow, h.projector, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
