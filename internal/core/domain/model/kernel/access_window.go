package kernel

import (
	"errors"
	"fmt"
	"time"

	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

// ErrAccessWindowIsNotConstructed is returned when an AccessWindow instance
// was not created through the NewAccessWindow constructor.
var ErrAccessWindowIsNotConstructed = errors.New("AccessWindow must be created via NewAccessWindow constructor")

// AccessWindow is the [start, end) interval during which delivery access is
// valid. The window is immutable after creation and always satisfies
// end > start.
//
// Example:
//
//	window, err := kernel.NewAccessWindow(start, start.Add(2*time.Hour))
//	if err != nil {
//	    // handle validation error
//	}
//	if window.ElapsedAt(time.Now()) {
//	    // window has closed
//	}
type AccessWindow struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewAccessWindow creates an access window after validating that both bounds
// are set and that end is strictly after start. Bounds are normalized to UTC.
func NewAccessWindow(start, end time.Time) (AccessWindow, error) {
	if start.IsZero() {
		return AccessWindow{}, errs.NewValueIsRequiredError("startTime")
	}
	if end.IsZero() {
		return AccessWindow{}, errs.NewValueIsRequiredError("endTime")
	}
	if !end.After(start) {
		return AccessWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"endTime",
			fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}

	return AccessWindow{
		start: start.UTC(),
		end:   end.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Start returns the opening bound of the window.
func (w AccessWindow) Start() time.Time {
	return w.start
}

// End returns the closing bound of the window.
func (w AccessWindow) End() time.Time {
	return w.end
}

// ElapsedAt reports whether the window has already closed at the given
// instant, i.e. end <= now.
func (w AccessWindow) ElapsedAt(now time.Time) bool {
	return !w.end.After(now)
}

// Validate ensures the window was created through NewAccessWindow.
func (w AccessWindow) Validate() error {
	return w.guard.Validate(ErrAccessWindowIsNotConstructed)
}
