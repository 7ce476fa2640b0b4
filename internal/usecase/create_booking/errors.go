package create_booking

import "errors"

var (
	// ErrTechnicianNotFound is returned when the technician does not exist or is inactive
	ErrTechnicianNotFound = errors.New("create_booking: technician not found")

	// ErrTechnicianNotWorking is returned when the technician does not work on the requested date
	ErrTechnicianNotWorking = errors.New("create_booking: technician is not working on this date")

	// ErrServiceTypeNotFound is returned when the service type does not exist
	ErrServiceTypeNotFound = errors.New("create_booking: service type not found")

	// ErrInvalidTimeSlot is returned when the requested time falls outside the
	// technician's working hours or inside a break
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when the requested slot conflicts with an
	// existing booking or the capacity cap is exhausted
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrLockBusy is returned when another request holds the booking lock for
	// this technician and date
	ErrLockBusy = errors.New("create_booking: booking in progress, try again")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_booking: internal error")
)
