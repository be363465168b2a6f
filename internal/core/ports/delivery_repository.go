package ports

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
// Expected business outcomes are ordinary error values: a duplicate insert
// reports delivery.ErrOrderAlreadyExists, a transition whose precondition did
// not hold reports delivery.ErrInvalidTransition. Any other error is a
// storage fault, surfaced verbatim and never retried at this layer.
type DeliveryRepository interface {
	// Add inserts a new delivery record. The order identifier is the primary
	// key; inserting an existing key reports delivery.ErrOrderAlreadyExists
	// and writes nothing, so a duplicate create never overwrites the first.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery record by its order identifier.
	// Returns *errs.ObjectNotFoundError when no record exists.
	Get(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error)

	// GetAll retrieves every delivery record. The result is an unordered,
	// one-shot materialization of the full collection.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// ApplyTransition executes a lifecycle transition as a single atomic
	// conditional write: the transition's preconditions and its field
	// assignment run as one storage operation, never as a read followed by a
	// write. Exactly one record is modified when the preconditions hold;
	// zero records modified (the key is absent or a guard failed) reports
	// delivery.ErrInvalidTransition.
	ApplyTransition(ctx context.Context, orderID kernel.OrderID, transition delivery.Transition) error
}
