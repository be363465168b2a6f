package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a request to cancel a delivery.
// Cancellation is reachable from both the Created and Approved states; only a
// completed delivery can no longer be cancelled.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel the delivery
// identified by orderID.
func NewCancelDeliveryCommand(orderID kernel.OrderID) (CancelDeliveryCommand, error) {
	cmd := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivery to cancel.
func (c CancelDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}
