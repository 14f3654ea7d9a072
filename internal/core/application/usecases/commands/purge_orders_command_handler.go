package commands

import (
	"context"
)

// PurgeOrdersCommandHandler deletes every order in a single transaction.
// The cascade takes the whole status event ledger with it.
type PurgeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeOrdersCommandHandler creates a handler for purging all orders.
func NewPurgeOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeOrdersCommandHandler {
	return PurgeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command. Purging an already-empty store is not
// an error.
func (h *PurgeOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeOrdersCommand) error {
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

	if err := uow.OrderRepository().DeleteAll(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
