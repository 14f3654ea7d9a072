package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/domain/services"
	"ordertracking/internal/metrics"
)

// RecordStatusEventCommandHandler appends a status event to an order's ledger
// and recomputes the order's projected latest status in the same transaction.
//
// Locking protocol: the order row is locked (GetForUpdate) before the ledger
// is touched. Concurrent writers to the same order therefore serialize their
// insert-and-recompute step, which prevents a lost update where an older
// event's recompute overwrites a newer one's result. Writers to different
// orders never contend.
type RecordStatusEventCommandHandler struct {
	uowFactory UoWFactory
	projector  services.StatusProjector
}

// NewRecordStatusEventCommandHandler creates a handler for recording status events.
// Requires a UoWFactory since recording spans the ledger and the projection.
func NewRecordStatusEventCommandHandler(uowFactory UoWFactory) RecordStatusEventCommandHandler {
	return RecordStatusEventCommandHandler{
		uowFactory: uowFactory,
		projector:  services.NewStatusProjector(),
	}
}

// Handle processes the record command.
// Returns an ObjectNotFoundError when the owning order does not exist.
// The event insert and the projection update commit or roll back together.
func (h *RecordStatusEventCommandHandler) Handle(ctx context.Context, cmd RecordStatusEventCommand) error {
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

	// Lock first: the lock both asserts the order exists and serializes
	// concurrent recomputes for it.
	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	event, err := order.NewStatusEvent(cmd.EventID(), cmd.OrderID(), cmd.Status(), cmd.Created())
	if err != nil {
		return err
	}

	if err = uow.StatusEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = recomputeProjection(ctx, uow, h.projector, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.StatusEventsRecordedTotal.Inc()
	return nil
}
