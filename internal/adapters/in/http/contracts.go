package http

import (
	"time"

	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

// OrderContract identifies the order a delivery fulfills and the party that
// scheduled it.
type OrderContract struct {
	OrderNumber string `json:"orderNumber" validate:"required"`
	Sender      string `json:"sender"      validate:"required"`
}

// RecipientContract carries the recipient's contact details.
type RecipientContract struct {
	Name        string `json:"name"        validate:"required"`
	Address     string `json:"address"     validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// AccessWindowContract carries the delivery access window boundaries.
type AccessWindowContract struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime"   validate:"required,gtfield=StartTime"`
}

// CreateDeliveryRequest is the intake payload for registering a delivery.
type CreateDeliveryRequest struct {
	Order        OrderContract        `json:"order"`
	Recipient    RecipientContract    `json:"recipient"`
	AccessWindow AccessWindowContract `json:"accessWindow"`
}

// DeliveryResponse is the full view of a delivery, including the lifecycle
// state derived at response time.
type DeliveryResponse struct {
	State        string               `json:"state"`
	Order        OrderContract        `json:"order"`
	Recipient    RecipientContract    `json:"recipient"`
	AccessWindow AccessWindowContract `json:"accessWindow"`
}

// ErrorResponse is the error body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toCreateDeliveryParts converts the request contract into kernel value
// objects, surfacing the first validation failure.
func (r CreateDeliveryRequest) toCreateDeliveryParts() (kernel.OrderID, kernel.Recipient, kernel.AccessWindow, error) {
	orderID, err := kernel.NewOrderID(r.Order.OrderNumber)
	if err != nil {
		return kernel.OrderID{}, kernel.Recipient{}, kernel.AccessWindow{}, err
	}

	recipient, err := kernel.NewRecipient(
		r.Recipient.Name,
		r.Recipient.Address,
		r.Recipient.Email,
		r.Recipient.PhoneNumber,
	)
	if err != nil {
		return kernel.OrderID{}, kernel.Recipient{}, kernel.AccessWindow{}, err
	}

	window, err := kernel.NewAccessWindow(r.AccessWindow.StartTime, r.AccessWindow.EndTime)
	if err != nil {
		return kernel.OrderID{}, kernel.Recipient{}, kernel.AccessWindow{}, err
	}

	return orderID, recipient, window, nil
}

// deliveryResponseFromAggregate builds the response view for a freshly
// registered delivery, deriving the state at the given instant.
func deliveryResponseFromAggregate(aggregate *delivery.Delivery, now time.Time) DeliveryResponse {
	return DeliveryResponse{
		State: aggregate.State(now).String(),
		Order: OrderContract{
			OrderNumber: aggregate.OrderID().String(),
			Sender:      aggregate.Sender(),
		},
		Recipient: RecipientContract{
			Name:        aggregate.Recipient().Name(),
			Address:     aggregate.Recipient().Address(),
			Email:       aggregate.Recipient().Email(),
			PhoneNumber: aggregate.Recipient().Phone(),
		},
		AccessWindow: AccessWindowContract{
			StartTime: aggregate.Window().Start(),
			EndTime:   aggregate.Window().End(),
		},
	}
}

// deliveryResponseFromQueryItem builds the response view for one listing item.
func deliveryResponseFromQueryItem(item queries.GetAllDeliveriesQueryResponse) DeliveryResponse {
	return DeliveryResponse{
		State: item.State.String(),
		Order: OrderContract{
			OrderNumber: item.OrderID.String(),
			Sender:      item.Sender,
		},
		Recipient: RecipientContract{
			Name:        item.Recipient.Name(),
			Address:     item.Recipient.Address(),
			Email:       item.Recipient.Email(),
			PhoneNumber: item.Recipient.Phone(),
		},
		AccessWindow: AccessWindowContract{
			StartTime: item.Window.Start(),
			EndTime:   item.Window.End(),
		},
	}
}
