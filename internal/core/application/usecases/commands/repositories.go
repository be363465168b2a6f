// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence, outcome
// reported as an error value the transport layer can classify.
package commands

import (
	"context"

	"deliveries/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within
	// the current transaction boundary.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DeliveryUoW manages transactions for delivery operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances, one per
	// command execution.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
