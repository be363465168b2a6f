package commands

import (
	"context"
	"time"

	"deliveries/internal/core/domain/model/delivery"
)

// CompleteDeliveryCommandHandler handles delivery completion. Completion
// stamps completedTime, which makes the delivery's derived state Completed
// and permanently blocks cancellation.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command as a single guarded write.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	transition := delivery.NewCompleteTransition(time.Now().UTC())

	return uow.DeliveryRepository().ApplyTransition(ctx, cmd.OrderID(), transition)
}
