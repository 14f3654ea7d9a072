// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordertracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EventRepoFactory provides access to the status event ledger within a transaction.
	EventRepoFactory interface {
		StatusEventRepository() ports.StatusEventRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands never touch the event ledger directly.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that span the order projection and the event
	// ledger. Every ledger mutation recomputes the owning order's projection
	// inside the same unit of work, so these commands always need both
	// repositories.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   eventRepo := uow.StatusEventRepository()
	//   // ... mutate ledger, recompute projection
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
	}

	// UoWFactory creates new unit of work instances for ledger-and-projection operations.
	UoWFactory interface {
		Create() UoW
	}
)
