package queries

import (
	"errors"
	"time"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery by its order identifier.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("order-1042")
//	query, _ := NewGetDeliveryQuery(orderID)
//	handler := NewGetDeliveryQueryHandler(db)
//
//	d, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery: %w", err)
//	}
//	fmt.Printf("%s is %s\n", d.OrderID, d.State)
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for the delivery identified by orderID.
func NewGetDeliveryQuery(orderID kernel.OrderID) (GetDeliveryQuery, error) {
	query := GetDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryQueryIsNotConstructed if validation fails.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// OrderID returns the identifier of the delivery to retrieve.
func (q GetDeliveryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetDeliveryQueryResponse represents a single delivery lookup result.
// State is derived from the timestamps against the wall clock at query time.
type GetDeliveryQueryResponse struct {
	OrderID   kernel.OrderID
	Sender    string
	Recipient kernel.Recipient
	Window    kernel.AccessWindow
	State     delivery.State

	ApprovalTime     *time.Time
	CompletedTime    *time.Time
	CancellationTime *time.Time
}
