package commands

import (
	"context"
	"time"

	"deliveries/internal/core/domain/model/delivery"
)

// ApproveDeliveryCommandHandler handles delivery approval. The transition is
// a single guarded write; no surrounding transaction is needed because the
// storage layer evaluates precondition and assignment atomically.
//
// When the preconditions do not hold the handler reports
// delivery.ErrInvalidTransition; the stored record is untouched.
type ApproveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewApproveDeliveryCommandHandler creates a handler for delivery approval.
func NewApproveDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ApproveDeliveryCommandHandler {
	return ApproveDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command, stamping approvalTime with the
// current instant when the transition wins.
func (h *ApproveDeliveryCommandHandler) Handle(ctx context.Context, cmd ApproveDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	transition := delivery.NewApproveTransition(time.Now().UTC())

	return uow.DeliveryRepository().ApplyTransition(ctx, cmd.OrderID(), transition)
}
