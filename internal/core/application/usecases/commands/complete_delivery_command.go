package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to mark a delivery as
// completed. Completion requires a prior approval and no cancellation.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete the delivery
// identified by orderID.
func NewCompleteDeliveryCommand(orderID kernel.OrderID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivery to complete.
func (c CompleteDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}
