package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and binds repositories to the transaction.
// Client code must explicitly manage transaction lifecycle.
//
// Recording or deleting a status event and recomputing the owning order's
// projected status always happen inside one unit of work: both succeed or
// both roll back.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// StatusEventRepository returns a StatusEventRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	StatusEventRepository() StatusEventRepository
}
