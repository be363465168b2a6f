package commands

import (
	"context"
	"time"

	"deliveries/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler handles delivery cancellation. Cancellation
// stamps cancellationTime, which makes the delivery's derived state Cancelled
// and permanently blocks completion.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command as a single guarded write.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	transition := delivery.NewCancelTransition(time.Now().UTC())

	return uow.DeliveryRepository().ApplyTransition(ctx, cmd.OrderID(), transition)
}
