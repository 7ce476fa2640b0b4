package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garage-ms/availability-service/internal/domain"
)

func activeBooking(technicianID int64, start string, duration int) *domain.Booking {
	return &domain.Booking{
		TechnicianID:    technicianID,
		StartTime:       domain.MustTimeOfDay(start),
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, len(slots))
	for i, slot := range slots {
		starts[i] = slot.Start.String()
	}
	return starts
}

func TestGenerateCandidateSlots(t *testing.T) {
	t.Run("steps through the working interval", func(t *testing.T) {
		working := mkInterval(t, "09:00", "11:00")

		slots := generateCandidateSlots(working, nil, 30, 30)

		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(slots))
	})

	t.Run("break containment is half-open", func(t *testing.T) {
		working := mkInterval(t, "09:00", "17:00")
		breaks := []domain.Interval{mkInterval(t, "12:00", "13:00")}

		slots := generateCandidateSlots(working, breaks, 30, 30)
		starts := slotStarts(slots)

		// 12:00 and 12:30 start inside the break; 13:00 is the break's
		// end and therefore a candidate again.
		assert.NotContains(t, starts, "12:00")
		assert.NotContains(t, starts, "12:30")
		assert.Contains(t, starts, "11:30")
		assert.Contains(t, starts, "13:00")
	})

	t.Run("overrunning candidates are still emitted", func(t *testing.T) {
		working := mkInterval(t, "09:00", "10:00")

		slots := generateCandidateSlots(working, nil, 30, 60)

		require.Len(t, slots, 2)
		assert.Equal(t, domain.MustTimeOfDay("09:30"), slots[1].Start)
		assert.Equal(t, domain.MustTimeOfDay("10:30"), slots[1].End)
	})

	t.Run("empty working interval yields no slots", func(t *testing.T) {
		slots := generateCandidateSlots(domain.Interval{}, nil, 30, 30)
		assert.Empty(t, slots)
	})
}

func TestEvaluateSlot_Reasons(t *testing.T) {
	working := mkInterval(t, "09:00", "17:00")
	breaks := []domain.Interval{mkInterval(t, "12:00", "13:00")}

	evaluate := func(start string, duration int, bookings []*domain.Booking, maxPerSlot int) domain.Slot {
		slot := domain.Slot{
			Start: domain.MustTimeOfDay(start),
			End:   domain.MustTimeOfDay(start).Add(duration),
		}
		evaluateSlot(&slot, working, breaks, bookings, bookings, maxPerSlot)
		return slot
	}

	t.Run("free slot is available", func(t *testing.T) {
		slot := evaluate("09:00", 60, nil, 3)

		assert.True(t, slot.Available)
		assert.Empty(t, slot.Reason)
		assert.Zero(t, slot.ConflictCount)
		assert.Zero(t, slot.ConcurrentCount)
	})

	t.Run("slot running past closing time", func(t *testing.T) {
		slot := evaluate("16:30", 60, nil, 3)

		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonPastClosing, slot.Reason)
	})

	t.Run("slot ending exactly at closing time is fine", func(t *testing.T) {
		slot := evaluate("16:00", 60, nil, 3)

		assert.True(t, slot.Available)
	})

	t.Run("slot crossing a break mid-interval", func(t *testing.T) {
		slot := evaluate("11:30", 60, nil, 3)

		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonOverlapsBreak, slot.Reason)
	})

	t.Run("slot ending exactly at break start is fine", func(t *testing.T) {
		slot := evaluate("11:00", 60, nil, 3)

		assert.True(t, slot.Available)
	})

	t.Run("overlapping booking marks the technician busy", func(t *testing.T) {
		bookings := []*domain.Booking{activeBooking(1, "09:30", 60)}

		slot := evaluate("09:00", 60, bookings, 3)

		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonTechnicianBusy, slot.Reason)
		assert.Equal(t, 1, slot.ConflictCount)
	})

	t.Run("booking ending at the slot start is not a conflict", func(t *testing.T) {
		bookings := []*domain.Booking{activeBooking(1, "08:00", 60)}

		slot := evaluate("09:00", 60, bookings, 3)

		assert.True(t, slot.Available)
		assert.Zero(t, slot.ConflictCount)
	})

	t.Run("inactive bookings never conflict", func(t *testing.T) {
		cancelled := activeBooking(1, "09:00", 60)
		cancelled.Status = domain.StatusCancelled
		completed := activeBooking(1, "09:00", 60)
		completed.Status = domain.StatusCompleted

		slot := evaluate("09:00", 60, []*domain.Booking{cancelled, completed}, 3)

		assert.True(t, slot.Available)
		assert.Zero(t, slot.ConflictCount)
	})

	t.Run("capacity cap marks the slot full", func(t *testing.T) {
		// Empty conflict set, busy concurrency pool.
		pool := []*domain.Booking{
			activeBooking(2, "09:00", 60),
			activeBooking(3, "09:00", 60),
		}
		slot := domain.Slot{
			Start: domain.MustTimeOfDay("09:00"),
			End:   domain.MustTimeOfDay("10:00"),
		}
		evaluateSlot(&slot, working, breaks, nil, pool, 2)

		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonSlotFull, slot.Reason)
		assert.Equal(t, 2, slot.ConcurrentCount)
	})

	t.Run("under the cap the slot stays available", func(t *testing.T) {
		pool := []*domain.Booking{activeBooking(2, "09:00", 60)}
		slot := domain.Slot{
			Start: domain.MustTimeOfDay("09:00"),
			End:   domain.MustTimeOfDay("10:00"),
		}
		evaluateSlot(&slot, working, breaks, nil, pool, 2)

		assert.True(t, slot.Available)
		assert.Equal(t, 1, slot.ConcurrentCount)
	})

	t.Run("conflict reason wins over the capacity cap", func(t *testing.T) {
		bookings := []*domain.Booking{
			activeBooking(1, "09:00", 60),
			activeBooking(1, "09:00", 60),
			activeBooking(1, "09:00", 60),
		}

		slot := evaluate("09:00", 60, bookings, 3)

		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonTechnicianBusy, slot.Reason)
		assert.Equal(t, 3, slot.ConflictCount)
		assert.Equal(t, 3, slot.ConcurrentCount)
	})
}

// The reference working day: 09:00-17:00 with a 12:00-13:00 lunch,
// 30-minute steps and 60-minute services.
func TestReferenceDayScenario(t *testing.T) {
	working := mkInterval(t, "09:00", "17:00")
	breaks := []domain.Interval{mkInterval(t, "12:00", "13:00")}

	slots := generateCandidateSlots(working, breaks, 30, 60)

	// 16 half-hour steps minus the 2 starting inside lunch.
	require.Len(t, slots, 14)

	available := 0
	for i := range slots {
		evaluateSlot(&slots[i], working, breaks, nil, nil, 3)
		if slots[i].Available {
			available++
		}
	}

	// 11:30 crosses into lunch, 16:30 runs past closing.
	assert.Equal(t, 12, available)

	byStart := make(map[string]domain.Slot, len(slots))
	for _, slot := range slots {
		byStart[slot.Start.String()] = slot
	}
	assert.Equal(t, domain.ReasonOverlapsBreak, byStart["11:30"].Reason)
	assert.Equal(t, domain.ReasonPastClosing, byStart["16:30"].Reason)
	assert.True(t, byStart["13:00"].Available)
	assert.True(t, byStart["16:00"].Available)
}
