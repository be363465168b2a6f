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
// Client code must explicitly manage the transaction lifecycle.
//
// The lifecycle transitions do not rely on the transaction for correctness:
// each guarded write is a single atomic conditional statement. The unit of
// work exists so multi-statement operations, when they appear, share one
// consistent boundary.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction started by Begin().
	DeliveryRepository() DeliveryRepository
}
