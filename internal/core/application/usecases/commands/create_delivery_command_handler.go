package commands

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// registration. A new delivery starts with no lifecycle timestamps; its
// observable state is Created until a transition or window expiry changes it.
//
// A duplicate order identifier surfaces as delivery.ErrOrderAlreadyExists and
// never overwrites the existing record.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery registration command.
// Builds the aggregate from the command payload and persists it within a
// transaction; on any error the transaction is rolled back.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(cmd.OrderID(), cmd.Sender(), cmd.Recipient(), cmd.Window())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
