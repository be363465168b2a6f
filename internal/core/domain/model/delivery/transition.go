package delivery

import (
	"time"
)

// TimestampField identifies one of the three mutable timestamp fields of a
// delivery record. These are the only fields ever written after intake, each
// at most once.
type TimestampField int

const (
	// FieldApprovalTime is the approvalTime field.
	FieldApprovalTime TimestampField = iota + 1

	// FieldCompletedTime is the completedTime field.
	FieldCompletedTime

	// FieldCancellationTime is the cancellationTime field.
	FieldCancellationTime
)

// String returns the field's name in the record's wire vocabulary.
func (f TimestampField) String() string {
	switch f {
	case FieldApprovalTime:
		return "approvalTime"
	case FieldCompletedTime:
		return "completedTime"
	case FieldCancellationTime:
		return "cancellationTime"
	default:
		return "unknown"
	}
}

// FieldGuard is a single precondition over a timestamp field: the field must
// be set, or must be absent, for the transition to apply.
type FieldGuard struct {
	Field     TimestampField
	MustBeSet bool
}

// Transition describes one guarded single-field write of the lifecycle
// engine: the preconditions a stored record must satisfy and the field to
// assign when they hold. A Transition is pure data plus a pure evaluation
// function; executing it atomically against storage is the repository's job,
// which must run precondition check and write as one conditional operation,
// never as a read followed by a write.
//
// Two concurrent callers racing the same transition on the same record can
// therefore never both win: every transition requires its assigned field to
// be absent, so the first winning write falsifies the precondition for all
// others.
type Transition struct {
	name          string
	occurredAt    time.Time
	guards        []FieldGuard
	windowElapsed bool
	assigns       TimestampField
}

// NewApproveTransition describes approving a delivery at occurredAt.
// Preconditions: no terminal timestamp set, not already approved, and the
// access window has elapsed. On success approvalTime is assigned.
func NewApproveTransition(occurredAt time.Time) Transition {
	return Transition{
		name:       "approve",
		occurredAt: occurredAt.UTC(),
		guards: []FieldGuard{
			{Field: FieldCompletedTime, MustBeSet: false},
			{Field: FieldCancellationTime, MustBeSet: false},
			{Field: FieldApprovalTime, MustBeSet: false},
		},
		windowElapsed: true,
		assigns:       FieldApprovalTime,
	}
}

// NewCompleteTransition describes completing a delivery at occurredAt.
// Preconditions: approved, not cancelled, not already completed, and the
// access window has elapsed. On success completedTime is assigned.
func NewCompleteTransition(occurredAt time.Time) Transition {
	return Transition{
		name:       "complete",
		occurredAt: occurredAt.UTC(),
		guards: []FieldGuard{
			{Field: FieldApprovalTime, MustBeSet: true},
			{Field: FieldCancellationTime, MustBeSet: false},
			{Field: FieldCompletedTime, MustBeSet: false},
		},
		windowElapsed: true,
		assigns:       FieldCompletedTime,
	}
}

// NewCancelTransition describes cancelling a delivery at occurredAt.
// Preconditions: not completed, not already cancelled, and the access window
// has elapsed. Cancellation is reachable from both Created and Approved, so
// approvalTime is not guarded. On success cancellationTime is assigned.
func NewCancelTransition(occurredAt time.Time) Transition {
	return Transition{
		name:       "cancel",
		occurredAt: occurredAt.UTC(),
		guards: []FieldGuard{
			{Field: FieldCompletedTime, MustBeSet: false},
			{Field: FieldCancellationTime, MustBeSet: false},
		},
		windowElapsed: true,
		assigns:       FieldCancellationTime,
	}
}

// Name returns the transition's name for logging.
func (t Transition) Name() string {
	return t.name
}

// OccurredAt returns the instant the transition was requested. It is both
// the value assigned to the target field and the reference point for the
// window-elapsed precondition.
func (t Transition) OccurredAt() time.Time {
	return t.occurredAt
}

// Guards returns the field preconditions. The slice is a copy.
func (t Transition) Guards() []FieldGuard {
	guards := make([]FieldGuard, len(t.guards))
	copy(guards, t.guards)
	return guards
}

// RequiresElapsedWindow reports whether the transition additionally requires
// endTime <= occurredAt.
func (t Transition) RequiresElapsedWindow() bool {
	return t.windowElapsed
}

// Assigns returns the field written when the preconditions hold.
func (t Transition) Assigns() TimestampField {
	return t.assigns
}

// AppliesTo evaluates the preconditions against an in-memory record. It is
// the pure reference semantics of the transition; the storage adapter must
// implement exactly this predicate inside its atomic conditional write.
func (t Transition) AppliesTo(d *Delivery) bool {
	if d == nil {
		return false
	}

	for _, g := range t.guards {
		set := d.timestamp(g.Field) != nil
		if set != g.MustBeSet {
			return false
		}
	}

	if t.windowElapsed && !d.Window().ElapsedAt(t.occurredAt) {
		return false
	}

	return true
}
