package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery.
// Carries the full intake payload: the caller-supplied order identifier, the
// sender, the recipient and the access window.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("order-1042")
//	cmd, err := NewCreateDeliveryCommand(orderID, "Acme Corp", recipient, window)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	sender    string
	recipient kernel.Recipient
	window    kernel.AccessWindow

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates that the order identifier, recipient and access window were
// properly constructed and that the sender is not empty.
func NewCreateDeliveryCommand(
	orderID kernel.OrderID,
	sender string,
	recipient kernel.Recipient,
	window kernel.AccessWindow,
) (CreateDeliveryCommand, error) {
	deliveryCommand := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setSender(sender),
		deliveryCommand.setRecipient(recipient),
		deliveryCommand.setWindow(window),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order identifier.
func (c CreateDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Sender returns the party that scheduled the delivery.
func (c CreateDeliveryCommand) Sender() string {
	return c.sender
}

// Recipient returns the delivery recipient.
func (c CreateDeliveryCommand) Recipient() kernel.Recipient {
	return c.recipient
}

// Window returns the delivery access window.
func (c CreateDeliveryCommand) Window() kernel.AccessWindow {
	return c.window
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}

	c.sender = sender
	return nil
}

func (c *CreateDeliveryCommand) setRecipient(recipient kernel.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *CreateDeliveryCommand) setWindow(window kernel.AccessWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	c.window = window
	return nil
}
