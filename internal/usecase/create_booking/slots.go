package create_booking

import (
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
)

// effectiveSchedule is the technician's resolved working window for the
// requested date
type effectiveSchedule struct {
	Working bool
	Hours   domain.Interval
	Breaks  []domain.Interval
}

// resolveEffectiveSchedule applies the weekly template and any date
// exception, mirroring the resolution the availability report uses: the
// exception always wins, and breaks stay template-level (or the workshop
// lunch break when the technician defines none).
func resolveEffectiveSchedule(tech *domain.Technician, date time.Time, defaults domain.WorkshopDefaults) effectiveSchedule {
	templateHours, worksToday := tech.Template.HoursFor(date.Weekday())
	if !worksToday {
		return effectiveSchedule{}
	}

	breaks := tech.Template.Breaks
	if len(breaks) == 0 {
		breaks = []domain.Interval{defaults.LunchBreak}
	}

	exception := tech.ExceptionFor(date)
	if exception != nil {
		if exception.IsNotWorking() {
			return effectiveSchedule{}
		}
		if exception.Type == domain.ExceptionAvailable && exception.OverrideInterval != nil {
			return effectiveSchedule{Working: true, Hours: *exception.OverrideInterval, Breaks: breaks}
		}
	}

	return effectiveSchedule{Working: true, Hours: templateHours, Breaks: breaks}
}

// countOverlappingBookings counts the technician's active bookings whose
// interval truly overlaps the requested window. Touching endpoints do not
// overlap.
func countOverlappingBookings(window domain.Interval, technicianID int64, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if booking.TechnicianID != technicianID || !booking.IsActive() {
			continue
		}
		if window.Overlaps(booking.Interval()) {
			count++
		}
	}
	return count
}

// countConcurrentBookings counts the technician's active bookings running
// at the requested start time
func countConcurrentBookings(start domain.TimeOfDay, technicianID int64, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if booking.TechnicianID != technicianID || !booking.IsActive() {
			continue
		}
		if booking.Interval().Contains(start) {
			count++
		}
	}
	return count
}
