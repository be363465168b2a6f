package queries

import (
	"context"
	"time"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllDeliveriesQueryHandler retrieves all delivery records from the
// database. Each row is rehydrated into the domain model so the lifecycle
// state is derived by the same code that governs transitions.
type GetAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveriesQueryHandler creates a handler for delivery listings.
// Requires a GORM database connection for query execution.
func NewGetAllDeliveriesQueryHandler(db *gorm.DB) GetAllDeliveriesQueryHandler {
	return GetAllDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliveries.
// Results are sorted by order identifier for consistent output; the derived
// state of every row is evaluated against a single wall clock reading.
func (h GetAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveriesQuery,
) ([]GetAllDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAllDeliveriesQueryResponse, 0)
	now := time.Now().UTC()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			sender,
			recipient_name,
			recipient_address,
			recipient_email,
			recipient_phone,
			start_time,
			end_time,
			approval_time,
			completed_time,
			cancellation_time
		FROM deliveries
		ORDER BY order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDeliveryRow(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// deliveryRowScanner abstracts *sql.Rows and *sql.Row scanning.
type deliveryRowScanner interface {
	Scan(dest ...any) error
}

// scanDeliveryRow maps one deliveries row onto a response, rebuilding the
// domain aggregate to derive the lifecycle state at the given instant.
func scanDeliveryRow(row deliveryRowScanner, now time.Time) (GetAllDeliveriesQueryResponse, error) {
	var (
		id, sender                  string
		name, address, email, phone string
		startTime, endTime          time.Time
		approvalTime, completedTime *time.Time
		cancellationTime            *time.Time
	)

	if err := row.Scan(
		&id,
		&sender,
		&name,
		&address,
		&email,
		&phone,
		&startTime,
		&endTime,
		&approvalTime,
		&completedTime,
		&cancellationTime,
	); err != nil {
		return GetAllDeliveriesQueryResponse{}, err
	}

	orderID, err := kernel.NewOrderID(id)
	if err != nil {
		return GetAllDeliveriesQueryResponse{}, err
	}

	recipient, err := kernel.NewRecipient(name, address, email, phone)
	if err != nil {
		return GetAllDeliveriesQueryResponse{}, err
	}

	window, err := kernel.NewAccessWindow(startTime, endTime)
	if err != nil {
		return GetAllDeliveriesQueryResponse{}, err
	}

	aggregate, err := delivery.RestoreDelivery(
		orderID, sender, recipient, window,
		approvalTime, completedTime, cancellationTime,
	)
	if err != nil {
		return GetAllDeliveriesQueryResponse{}, err
	}

	return GetAllDeliveriesQueryResponse{
		OrderID:          aggregate.OrderID(),
		Sender:           aggregate.Sender(),
		Recipient:        aggregate.Recipient(),
		Window:           aggregate.Window(),
		State:            aggregate.State(now),
		ApprovalTime:     aggregate.ApprovalTime(),
		CompletedTime:    aggregate.CompletedTime(),
		CancellationTime: aggregate.CancellationTime(),
	}, nil
}
