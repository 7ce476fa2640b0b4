package create_booking

import (
	"fmt"

	"github.com/garage-ms/availability-service/internal/domain"
)

// validateRequest validates the booking-creation command
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.TechnicianID <= 0 {
		return fmt.Errorf("%w: technicianID must be positive", ErrInvalidInput)
	}

	if req.ServiceTypeID != nil && *req.ServiceTypeID <= 0 {
		return fmt.Errorf("%w: serviceTypeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime < 0 || req.StartTime > domain.TimeOfDay(23*60+59) {
		return fmt.Errorf("%w: startTime must be a valid time of day", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes > 0 &&
		(req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotWithinSchedule checks the requested window against the
// technician's effective schedule for the date: it must lie inside the
// working interval and must not cross a break.
func validateSlotWithinSchedule(slot domain.Interval, working domain.Interval, breaks []domain.Interval) error {
	if slot.Start < working.Start || slot.End > working.End {
		return fmt.Errorf("%w: %s is outside working hours %s", ErrInvalidTimeSlot, slot, working)
	}

	for _, brk := range breaks {
		if slot.Overlaps(brk) {
			return fmt.Errorf("%w: %s overlaps break %s", ErrInvalidTimeSlot, slot, brk)
		}
	}

	return nil
}
