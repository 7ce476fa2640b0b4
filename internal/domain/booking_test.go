package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Interval(t *testing.T) {
	booking := &Booking{StartTime: MustTimeOfDay("10:00"), DurationMinutes: 90}

	interval := booking.Interval()
	assert.Equal(t, MustTimeOfDay("10:00"), interval.Start)
	assert.Equal(t, MustTimeOfDay("11:30"), interval.End)
}

// The storage layer filters on ActiveStatuses / InactiveStatuses while the
// engine filters with IsActive; both views must agree on every status.
func TestStatusLists_MatchIsActive(t *testing.T) {
	all := append(append([]BookingStatus{}, ActiveStatuses...), InactiveStatuses...)
	assert.Len(t, all, 6, "every status belongs to exactly one list")

	for _, status := range ActiveStatuses {
		booking := &Booking{Status: status}
		assert.True(t, booking.IsActive(), string(status))
		assert.NotContains(t, InactiveStatuses, status)
	}
	for _, status := range InactiveStatuses {
		booking := &Booking{Status: status}
		assert.False(t, booking.IsActive(), string(status))
		assert.NotContains(t, ActiveStatuses, status)
	}
}

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status     BookingStatus
		active     bool
		cancelable bool
	}{
		{StatusPending, true, true},
		{StatusConfirmed, true, true},
		{StatusInProgress, true, false},
		{StatusCompleted, false, false},
		{StatusCancelled, false, false},
		{StatusNoShow, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			booking := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, booking.IsActive())
			assert.Equal(t, tt.cancelable, booking.CanBeCancelled())
		})
	}
}
