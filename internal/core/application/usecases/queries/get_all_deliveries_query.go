// Package queries contains read-only operations for the CQRS architecture.
// Query handlers read the database directly and derive the observable
// lifecycle state at read time; no state column exists to fall out of sync.
package queries

import (
	"errors"
	"time"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
	"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
)

// GetAllDeliveriesQuery retrieves every delivery record with its derived
// lifecycle state.
//
// Example:
//
//	query := NewGetAllDeliveriesQuery()
//	handler := NewGetAllDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list deliveries: %w", err)
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("%s: %s\n", d.OrderID, d.State)
//	}
type GetAllDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query to retrieve all deliveries.
// This is a parameterless query fetching the full collection.
func NewGetAllDeliveriesQuery() GetAllDeliveriesQuery {
	return GetAllDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllDeliveriesQueryIsNotConstructed if validation fails.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}

// GetAllDeliveriesQueryResponse represents one delivery in the listing.
// State is derived from the timestamps against the wall clock at query time.
type GetAllDeliveriesQueryResponse struct {
	OrderID   kernel.OrderID
	Sender    string
	Recipient kernel.Recipient
	Window    kernel.AccessWindow
	State     delivery.State

	ApprovalTime     *time.Time
	CompletedTime    *time.Time
	CancellationTime *time.Time
}
