package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrApproveDeliveryCommandIsNotConstructed = errors.New(
	"ApproveDeliveryCommand must be created via NewApproveDeliveryCommand constructor",
)

// ApproveDeliveryCommand represents a request to approve a delivery.
// Approval succeeds only when the delivery carries no lifecycle timestamps
// yet and its access window has elapsed.
type ApproveDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewApproveDeliveryCommand creates a command to approve the delivery
// identified by orderID.
func NewApproveDeliveryCommand(orderID kernel.OrderID) (ApproveDeliveryCommand, error) {
	cmd := ApproveDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ApproveDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivery to approve.
func (c ApproveDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}
