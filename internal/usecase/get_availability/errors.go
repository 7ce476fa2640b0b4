package get_availability

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTechnicianNotFound is returned when the requested technician filter
	// matches no active technician
	ErrTechnicianNotFound = errors.New("technician not found")

	// ErrServiceTypeNotFound is returned when the requested service type
	// does not exist in the catalog
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("usecase: internal error")
)
