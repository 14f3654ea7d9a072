package commands

import (
	"context"
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/services"
	"ordertracking/internal/pkg/errs"
)

// AuditProjectionsCommandHandler sweeps all orders and verifies each
// projection against its ledger, repairing any mismatch it finds.
//
// Each order is audited in its own short transaction under the same row lock
// the write path takes, so the audit never reports a "violation" that is
// merely an in-flight concurrent write, and never holds locks across
// unrelated orders.
type AuditProjectionsCommandHandler struct {
	uowFactory UoWFactory
	projector  services.StatusProjector
}

// NewAuditProjectionsCommandHandler creates a handler for projection audits.
func NewAuditProjectionsCommandHandler(uowFactory UoWFactory) AuditProjectionsCommandHandler {
	return AuditProjectionsCommandHandler{
		uowFactory: uowFactory,
		projector:  services.NewStatusProjector(),
	}
}

// Handle processes the audit command. Orders deleted between the scan and
// their individual check are skipped. The returned result lists every
// violation found; the caller decides how to log them.
func (h *AuditProjectionsCommandHandler) Handle(
	ctx context.Context,
	cmd AuditProjectionsCommand,
) (AuditProjectionsResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuditProjectionsResult{}, err
	}

	ids, err := h.scanOrderIDs(ctx)
	if err != nil {
		return AuditProjectionsResult{}, err
	}

	result := AuditProjectionsResult{}
	for _, id := range ids {
		violation, auditErr := h.auditOrder(ctx, id)
		if auditErr != nil {
			if errors.Is(auditErr, errs.ErrObjectNotFound) {
				continue
			}
			return result, auditErr
		}

		result.Checked++
		if violation != nil {
			result.Violations = append(result.Violations, violation)
		}
	}

	return result, nil
}

func (h *AuditProjectionsCommandHandler) scanOrderIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids, err := uow.OrderRepository().GetAllIDs(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// auditOrder verifies one order's projection. The violation return carries
// the invariant violation found (nil when consistent); a found violation is
// repaired before the transaction commits. err reports audit failures.
func (h *AuditProjectionsCommandHandler) auditOrder(
	ctx context.Context,
	id kernel.UUID,
) (violation error, err error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	latest, err := uow.StatusEventRepository().GetLatestForOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	violation = h.projector.VerifyProjection(aggregate, latest)
	if violation != nil && !errors.Is(violation, errs.ErrInvariantViolation) {
		return nil, violation
	}

	if violation != nil {
		if err = recomputeProjection(ctx, uow, h.projector, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return violation, nil
}
