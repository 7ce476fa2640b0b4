package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the caller may not act on the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking cannot be cancelled anymore
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned on an unknown booking status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
