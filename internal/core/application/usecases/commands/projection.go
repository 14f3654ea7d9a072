package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/domain/services"
	"ordertracking/internal/metrics"
)

// recomputeProjection re-derives an order's projected latest status from its
// ledger and writes it back. Shared by every handler that mutates the ledger
// or repairs the projection.
//
// Must run while the order row lock is held (GetForUpdate) so concurrent
// recomputes for the same order cannot interleave.
func recomputeProjection(
	ctx context.Context,
	uow UoW,
	projector services.StatusProjector,
	aggregate *order.Order,
) error {
	latest, err := uow.StatusEventRepository().GetLatestForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyLatestStatus(projector.DeriveFromLatest(latest)); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	metrics.ProjectionRecomputesTotal.Inc()
	return nil
}
