package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveries/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves a single delivery record by its order
// identifier, deriving the lifecycle state at read time.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Returns *errs.ObjectNotFoundError when no
// record exists for the identifier.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanDeliveryRow(row, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryQueryResponse{},
				errs.NewObjectNotFoundError("delivery", query.OrderID().String())
		}
		return GetDeliveryQueryResponse{}, err
	}

	return GetDeliveryQueryResponse(resp), nil
}
