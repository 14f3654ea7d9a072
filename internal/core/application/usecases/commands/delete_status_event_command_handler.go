package commands

import (
	"context"

	"ordertracking/internal/core/domain/services"
	"ordertracking/internal/metrics"
)

// DeleteStatusEventCommandHandler removes a status event from the ledger and
// recomputes the owning order's projected latest status in the same
// transaction.
//
// The event is loaded first to discover its owning order, then the order row
// is locked before the delete so the recompute serializes with concurrent
// writers to the same order.
type DeleteStatusEventCommandHandler struct {
	uowFactory UoWFactory
	projector  services.StatusProjector
}

// NewDeleteStatusEventCommandHandler creates a handler for deleting status events.
func NewDeleteStatusEventCommandHandler(uowFactory UoWFactory) DeleteStatusEventCommandHandler {
	return DeleteStatusEventCommandHandler{
		uowFactory: uowFactory,
		projector:  services.NewStatusProjector(),
	}
}

// Handle processes the delete command.
// Returns an ObjectNotFoundError when the event does not exist. The delete
// and the projection update commit or roll back together.
func (h *DeleteStatusEventCommandHandler) Handle(ctx context.Context, cmd DeleteStatusEventCommand) error {
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

	event, err := uow.StatusEventRepository().Get(ctx, cmd.EventID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, event.OrderID())
	if err != nil {
		return err
	}

	if err = uow.StatusEventRepository().Delete(ctx, event.ID()); err != nil {
		return err
	}

	if err = recomputeProjection(ctx, uow, h.projector, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.StatusEventsDeletedTotal.Inc()
	return nil
}
