package kernel

import (
	"strings"

	"deliveries/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// the NewOrderID constructor. It is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object for the caller-supplied unique order identifier.
// It acts as the primary key of a delivery record and is immutable once
// created. The zero value is invalid; construct through NewOrderID.
//
// Example:
//
//	id, err := kernel.NewOrderID("ORD-2024-0001")
//	if err != nil {
//	    // handle validation error
//	}
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its string representation.
// Surrounding whitespace is rejected rather than trimmed so the key stored
// and the key the caller holds never diverge.
func NewOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if strings.TrimSpace(value) != value {
		return OrderID{}, errs.NewValueIsInvalidError("orderId")
	}
	return OrderID{value: value}, nil
}

// String returns the identifier as supplied by the caller.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
