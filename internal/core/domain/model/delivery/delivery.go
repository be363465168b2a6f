package delivery

import (
	"errors"
	"time"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrOrderAlreadyExists reports that a delivery record already exists for
	// the order identifier. It is the expected outcome of a duplicate create,
	// not a storage fault.
	ErrOrderAlreadyExists = errors.New("delivery already exists for order")

	// ErrInvalidTransition reports that a transition's precondition did not
	// hold against the stored record. By design it covers "record missing",
	// "wrong state" and "already applied" alike; callers that need to tell
	// these apart must perform a separate read.
	ErrInvalidTransition = errors.New("delivery is not in a valid state for transition")
)

// Delivery is the aggregate root for a scheduled delivery. It carries the
// immutable intake payload (order id, sender, recipient, access window) and
// the three optional lifecycle timestamps, each written at most once by
// exactly one winning transition.
//
// The observable lifecycle state is never stored; it is derived from the
// timestamps and the current time via State. This removes the class of bugs
// where a stored state field and the timestamps disagree.
//
// Invariants:
//   - at most one of completedTime and cancellationTime is ever set
//   - completedTime is only set when approvalTime is set
//   - the access window satisfies end > start (enforced by kernel.AccessWindow)
type Delivery struct {
	orderID   kernel.OrderID
	sender    string
	recipient kernel.Recipient
	window    kernel.AccessWindow

	approvalTime     *time.Time
	completedTime    *time.Time
	cancellationTime *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery record at intake. The lifecycle timestamps
// start unset; the record's derived state is Created until a transition or
// window expiry changes it.
func NewDelivery(
	orderID kernel.OrderID,
	sender string,
	recipient kernel.Recipient,
	window kernel.AccessWindow,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setSender(sender),
		d.setRecipient(recipient),
		d.setWindow(window),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rehydrates a delivery from persistence, re-checking the
// invariants that the transition preconditions guarantee for records written
// through this engine.
func RestoreDelivery(
	orderID kernel.OrderID,
	sender string,
	recipient kernel.Recipient,
	window kernel.AccessWindow,
	approvalTime *time.Time,
	completedTime *time.Time,
	cancellationTime *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(orderID, sender, recipient, window)
	if err != nil {
		return nil, err
	}

	if completedTime != nil && cancellationTime != nil {
		return nil, errs.NewValueIsInvalidError("completedTime and cancellationTime are both set")
	}
	if completedTime != nil && approvalTime == nil {
		return nil, errs.NewValueIsInvalidError("completedTime is set without approvalTime")
	}

	d.approvalTime = cloneTime(approvalTime)
	d.completedTime = cloneTime(completedTime)
	d.cancellationTime = cloneTime(cancellationTime)
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their order identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.orderID.IsEqual(other.orderID)
}

// OrderID returns the caller-supplied unique order identifier.
func (d *Delivery) OrderID() kernel.OrderID {
	return d.orderID
}

// Sender returns the party that scheduled the delivery.
func (d *Delivery) Sender() string {
	return d.sender
}

// Recipient returns the delivery recipient.
func (d *Delivery) Recipient() kernel.Recipient {
	return d.recipient
}

// Window returns the delivery access window.
func (d *Delivery) Window() kernel.AccessWindow {
	return d.window
}

// ApprovalTime returns when the delivery was approved, or nil.
func (d *Delivery) ApprovalTime() *time.Time {
	return cloneTime(d.approvalTime)
}

// CompletedTime returns when the delivery was completed, or nil.
func (d *Delivery) CompletedTime() *time.Time {
	return cloneTime(d.completedTime)
}

// CancellationTime returns when the delivery was cancelled, or nil.
func (d *Delivery) CancellationTime() *time.Time {
	return cloneTime(d.cancellationTime)
}

// State derives the observable lifecycle state at the given instant.
// Evaluation order is a precedence rule, first match wins:
//
//  1. completedTime set              -> Completed
//  2. cancellationTime set           -> Cancelled
//  3. endTime < now                  -> Expired
//  4. approvalTime set               -> Approved
//  5. otherwise                      -> Created
//
// A recorded terminal decision always outranks window expiry; Expired is a
// read-time classification and is never written. The function is total and
// side-effect free: callers must pass the wall clock so derivation stays
// deterministic under test.
func (d *Delivery) State(now time.Time) State {
	switch {
	case d.completedTime != nil:
		return Completed
	case d.cancellationTime != nil:
		return Cancelled
	case d.window.End().Before(now):
		return Expired
	case d.approvalTime != nil:
		return Approved
	default:
		return Created
	}
}

// timestamp returns the stored value of one of the mutable timestamp fields.
func (d *Delivery) timestamp(field TimestampField) *time.Time {
	switch field {
	case FieldApprovalTime:
		return d.approvalTime
	case FieldCompletedTime:
		return d.completedTime
	case FieldCancellationTime:
		return d.cancellationTime
	default:
		return nil
	}
}

func (d *Delivery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	d.sender = sender
	return nil
}

func (d *Delivery) setRecipient(recipient kernel.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	d.recipient = recipient
	return nil
}

func (d *Delivery) setWindow(window kernel.AccessWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	d.window = window
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
