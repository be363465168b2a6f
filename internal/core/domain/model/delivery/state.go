package delivery

import (
	"fmt"

	"deliveries/internal/pkg/errs"
)

// State is the derived lifecycle state of a delivery. It is computed from the
// stored timestamps and the current time on every read (see Delivery.State)
// and is never persisted, so stored data can never contradict it.
//
// Lifecycle:
//
//	Created ──> Approved ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Expired is a read-time-only classification for a closed window with no
// recorded terminal decision; no transition ever writes it.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Created is the initial state: the record exists and no lifecycle
	// timestamp is set while the access window is still open.
	Created

	// Approved indicates the recipient approved the delivery.
	Approved

	// Completed indicates the delivery was carried out. Terminal.
	Completed

	// Cancelled indicates the delivery was called off. Terminal.
	Cancelled

	// Expired indicates the access window closed with no approval and no
	// terminal write. Derived at read time, never stored.
	Expired
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Approved:  "Approved",
		Completed: "Completed",
		Cancelled: "Cancelled",
		Expired:   "Expired",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Created:   "Created",
		Approved:  "Approved",
		Completed: "Completed",
		Cancelled: "Cancelled",
		Expired:   "Expired",
	}
}

// Validate checks if the State value is one of the five derivable states.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
