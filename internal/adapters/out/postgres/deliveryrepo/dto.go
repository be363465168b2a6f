// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, handling the conversion between domain entities and
// database rows, and executes the lifecycle engine's guarded writes as
// single conditional UPDATE statements.
package deliveryrepo

import (
	"time"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database row for a delivery record. The
// caller-supplied order identifier is the primary key; the end_time index
// supports the window-elapsed clause of the guarded updates. The derived
// lifecycle state is deliberately not a column.
type DeliveryDTO struct {
	OrderID   string       `gorm:"primaryKey"`
	Sender    string       `gorm:"not null"`
	Recipient RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	StartTime time.Time    `gorm:"not null"`
	EndTime   time.Time    `gorm:"not null;index"`

	ApprovalTime     *time.Time
	CompletedTime    *time.Time
	CancellationTime *time.Time
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// RecipientDTO represents the embedded recipient columns within the
// deliveries table.
type RecipientDTO struct {
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Phone   string `gorm:"not null"`
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		OrderID: aggregate.OrderID().String(),
		Sender:  aggregate.Sender(),
		Recipient: RecipientDTO{
			Name:    aggregate.Recipient().Name(),
			Address: aggregate.Recipient().Address(),
			Email:   aggregate.Recipient().Email(),
			Phone:   aggregate.Recipient().Phone(),
		},
		StartTime:        aggregate.Window().Start(),
		EndTime:          aggregate.Window().End(),
		ApprovalTime:     aggregate.ApprovalTime(),
		CompletedTime:    aggregate.CompletedTime(),
		CancellationTime: aggregate.CancellationTime(),
	}
}

// toDomain converts a database row to a delivery aggregate, re-running the
// domain's restore invariants.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	orderID, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	recipient, err := kernel.NewRecipient(
		dto.Recipient.Name,
		dto.Recipient.Address,
		dto.Recipient.Email,
		dto.Recipient.Phone,
	)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewAccessWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		orderID,
		dto.Sender,
		recipient,
		window,
		dto.ApprovalTime,
		dto.CompletedTime,
		dto.CancellationTime,
	)
}
