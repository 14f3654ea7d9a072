package commands

import (
	"errors"

	"ordertracking/internal/pkg/guard"
)

var (
	ErrPurgeOrdersCommandIsNotConstructed = errors.New(
		"PurgeOrdersCommand must be created via NewPurgeOrdersCommand constructor",
	)
)

// PurgeOrdersCommand represents a request to delete every order in the store.
// Cascade deletion empties the status event ledger as well. Used by the bulk
// sample-data generator before seeding a fresh data set.
type PurgeOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeOrdersCommand creates a command to delete all orders.
// This is a parameterless command.
func NewPurgeOrdersCommand() PurgeOrdersCommand {
	return PurgeOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeOrdersCommandIsNotConstructed if validation fails.
func (c PurgeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrdersCommandIsNotConstructed)
}
