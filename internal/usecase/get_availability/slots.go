package get_availability

import (
	"github.com/garage-ms/availability-service/internal/domain"
)

// generateCandidateSlots steps through the working interval in fixed
// stepMinutes increments, emitting a candidate slot of serviceDuration
// minutes at every step whose start does not fall inside a break.
//
// Break containment is half-open: a slot starting exactly at a break's end
// is a candidate, one starting exactly at a break's start is not.
//
// Candidates are emitted even when their end runs past the working
// interval; evaluateSlot flags those instead of silently offering them.
func generateCandidateSlots(working domain.Interval, breaks []domain.Interval, stepMinutes, serviceDuration int) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for current := working.Start; current.Before(working.End); current = current.Add(stepMinutes) {
		if startsInsideBreak(current, breaks) {
			continue
		}
		slots = append(slots, domain.Slot{
			Start: current,
			End:   current.Add(serviceDuration),
		})
	}

	return slots
}

func startsInsideBreak(start domain.TimeOfDay, breaks []domain.Interval) bool {
	for _, brk := range breaks {
		if brk.Contains(start) {
			return true
		}
	}
	return false
}

// evaluateSlot annotates one candidate slot with availability.
//
// Conflict counting uses strict half-open overlap against the technician's
// own active bookings: a booking ending exactly where the slot starts is
// not a conflict. Concurrency counts active bookings in the concurrency
// pool whose interval contains the slot's start.
//
// Reasons are assigned in fixed priority: a slot running past closing
// time, then a slot crossing a break mid-interval, then a direct booking
// conflict ("Technician busy"), then an exhausted capacity cap
// ("Slot full"). A conflicted slot at capacity therefore always reports
// "Technician busy".
func evaluateSlot(slot *domain.Slot, working domain.Interval, breaks []domain.Interval,
	technicianBookings []*domain.Booking, concurrencyPool []*domain.Booking, maxPerSlot int) {

	slotInterval := slot.Interval()

	slot.ConflictCount = countOverlappingBookings(slotInterval, technicianBookings)
	slot.ConcurrentCount = countConcurrentBookings(slot.Start, concurrencyPool)

	switch {
	case slot.End.After(working.End):
		slot.Available = false
		slot.Reason = domain.ReasonPastClosing
	case overlapsAnyBreak(slotInterval, breaks):
		slot.Available = false
		slot.Reason = domain.ReasonOverlapsBreak
	case slot.ConflictCount > 0:
		slot.Available = false
		slot.Reason = domain.ReasonTechnicianBusy
	case slot.ConcurrentCount >= maxPerSlot:
		slot.Available = false
		slot.Reason = domain.ReasonSlotFull
	default:
		slot.Available = true
		slot.Reason = ""
	}
}

func overlapsAnyBreak(slotInterval domain.Interval, breaks []domain.Interval) bool {
	for _, brk := range breaks {
		if slotInterval.Overlaps(brk) {
			return true
		}
	}
	return false
}

// countOverlappingBookings counts active bookings whose interval truly
// overlaps the slot. Touching endpoints do not count: a booking 11:00-11:30
// does not conflict with a slot starting at 11:30.
func countOverlappingBookings(slotInterval domain.Interval, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if slotInterval.Overlaps(booking.Interval()) {
			count++
		}
	}
	return count
}

// countConcurrentBookings counts active bookings running at the slot's
// start time (start inclusive, end exclusive)
func countConcurrentBookings(slotStart domain.TimeOfDay, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Interval().Contains(slotStart) {
			count++
		}
	}
	return count
}
