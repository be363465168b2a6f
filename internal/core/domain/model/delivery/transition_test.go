package delivery_test

import (
	"testing"
	"time"

	"deliveries/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
)

func TestTimestampField_String(t *testing.T) {
	assert.Equal(t, "approvalTime", delivery.FieldApprovalTime.String())
	assert.Equal(t, "completedTime", delivery.FieldCompletedTime.String())
	assert.Equal(t, "cancellationTime", delivery.FieldCancellationTime.String())
	assert.Equal(t, "unknown", delivery.TimestampField(0).String())
}

func TestTransitionDescriptors(t *testing.T) {
	now := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	t.Run("approve", func(t *testing.T) {
		tr := delivery.NewApproveTransition(now)

		assert.Equal(t, "approve", tr.Name())
		assert.True(t, tr.OccurredAt().Equal(now))
		assert.Equal(t, delivery.FieldApprovalTime, tr.Assigns())
		assert.True(t, tr.RequiresElapsedWindow())
		assert.ElementsMatch(t, []delivery.FieldGuard{
			{Field: delivery.FieldCompletedTime, MustBeSet: false},
			{Field: delivery.FieldCancellationTime, MustBeSet: false},
			{Field: delivery.FieldApprovalTime, MustBeSet: false},
		}, tr.Guards())
	})

	t.Run("complete_assigns_completed_time", func(t *testing.T) {
		tr := delivery.NewCompleteTransition(now)

		assert.Equal(t, "complete", tr.Name())
		assert.Equal(t, delivery.FieldCompletedTime, tr.Assigns())
		assert.True(t, tr.RequiresElapsedWindow())
		assert.ElementsMatch(t, []delivery.FieldGuard{
			{Field: delivery.FieldApprovalTime, MustBeSet: true},
			{Field: delivery.FieldCancellationTime, MustBeSet: false},
			{Field: delivery.FieldCompletedTime, MustBeSet: false},
		}, tr.Guards())
	})

	t.Run("cancel_does_not_guard_approval", func(t *testing.T) {
		tr := delivery.NewCancelTransition(now)

		assert.Equal(t, "cancel", tr.Name())
		assert.Equal(t, delivery.FieldCancellationTime, tr.Assigns())
		assert.True(t, tr.RequiresElapsedWindow())
		assert.ElementsMatch(t, []delivery.FieldGuard{
			{Field: delivery.FieldCompletedTime, MustBeSet: false},
			{Field: delivery.FieldCancellationTime, MustBeSet: false},
		}, tr.Guards())
	})

	t.Run("guards_returns_a_copy", func(t *testing.T) {
		tr := delivery.NewApproveTransition(now)
		guards := tr.Guards()
		guards[0] = delivery.FieldGuard{Field: delivery.FieldApprovalTime, MustBeSet: true}

		assert.NotEqual(t, guards[0], tr.Guards()[0])
	})

	t.Run("occurred_at_is_normalized_to_utc", func(t *testing.T) {
		zone := time.FixedZone("UTC+3", 3*60*60)
		tr := delivery.NewCancelTransition(now.In(zone))

		assert.Equal(t, time.UTC, tr.OccurredAt().Location())
		assert.True(t, tr.OccurredAt().Equal(now))
	})
}

func TestTransition_AppliesTo(t *testing.T) {
	windowEnd := windowStart.Add(4 * time.Hour)
	afterWindow := windowEnd.Add(time.Hour)
	insideWindow := windowStart.Add(time.Hour)
	ts := windowStart.Add(30 * time.Minute)

	t.Run("approve", func(t *testing.T) {
		testCases := []struct {
			name       string
			record     *delivery.Delivery
			occurredAt time.Time
			applies    bool
		}{
			{name: "fresh record after window", record: restore(t, nil, nil, nil), occurredAt: afterWindow, applies: true},
			{name: "window still open", record: restore(t, nil, nil, nil), occurredAt: insideWindow, applies: false},
			{name: "exactly at window end", record: restore(t, nil, nil, nil), occurredAt: windowEnd, applies: true},
			{name: "already approved", record: restore(t, &ts, nil, nil), occurredAt: afterWindow, applies: false},
			{name: "already cancelled", record: restore(t, nil, nil, &ts), occurredAt: afterWindow, applies: false},
			{name: "already completed", record: restore(t, &ts, &ts, nil), occurredAt: afterWindow, applies: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tr := delivery.NewApproveTransition(tc.occurredAt)
				assert.Equal(t, tc.applies, tr.AppliesTo(tc.record))
			})
		}
	})

	t.Run("complete", func(t *testing.T) {
		testCases := []struct {
			name       string
			record     *delivery.Delivery
			occurredAt time.Time
			applies    bool
		}{
			{name: "approved record after window", record: restore(t, &ts, nil, nil), occurredAt: afterWindow, applies: true},
			{name: "no prior approval", record: restore(t, nil, nil, nil), occurredAt: afterWindow, applies: false},
			{name: "already cancelled", record: restore(t, &ts, nil, &ts), occurredAt: afterWindow, applies: false},
			{name: "already completed", record: restore(t, &ts, &ts, nil), occurredAt: afterWindow, applies: false},
			{name: "window still open", record: restore(t, &ts, nil, nil), occurredAt: insideWindow, applies: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tr := delivery.NewCompleteTransition(tc.occurredAt)
				assert.Equal(t, tc.applies, tr.AppliesTo(tc.record))
			})
		}
	})

	t.Run("cancel", func(t *testing.T) {
		testCases := []struct {
			name       string
			record     *delivery.Delivery
			occurredAt time.Time
			applies    bool
		}{
			{name: "fresh record after window", record: restore(t, nil, nil, nil), occurredAt: afterWindow, applies: true},
			{name: "approved record after window", record: restore(t, &ts, nil, nil), occurredAt: afterWindow, applies: true},
			{name: "already cancelled", record: restore(t, nil, nil, &ts), occurredAt: afterWindow, applies: false},
			{name: "already completed", record: restore(t, &ts, &ts, nil), occurredAt: afterWindow, applies: false},
			{name: "window still open", record: restore(t, nil, nil, nil), occurredAt: insideWindow, applies: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tr := delivery.NewCancelTransition(tc.occurredAt)
				assert.Equal(t, tc.applies, tr.AppliesTo(tc.record))
			})
		}
	})

	t.Run("nil_record_never_applies", func(t *testing.T) {
		tr := delivery.NewApproveTransition(afterWindow)
		assert.False(t, tr.AppliesTo(nil))
	})

	// Once one terminal transition applied, the other can never apply: every
	// transition guards both terminal fields (complete requires cancellation
	// absent, cancel requires completion absent), and the winner sets one of
	// them.
	t.Run("terminal_transitions_are_mutually_exclusive", func(t *testing.T) {
		cancelled := restore(t, nil, nil, &ts)
		completed := restore(t, &ts, &ts, nil)

		assert.False(t, delivery.NewCompleteTransition(afterWindow).AppliesTo(cancelled))
		assert.False(t, delivery.NewApproveTransition(afterWindow).AppliesTo(cancelled))
		assert.False(t, delivery.NewCancelTransition(afterWindow).AppliesTo(completed))
		assert.False(t, delivery.NewApproveTransition(afterWindow).AppliesTo(completed))
	})
}
