package servicecatalog

import "errors"

var (
	// ErrServiceTypeNotFound is returned when the catalog has no such service type
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("servicecatalog client: internal error")

	// ErrInvalidResponse is returned when the catalog responds with something unexpected
	ErrInvalidResponse = errors.New("servicecatalog client: invalid response")

	// ErrServiceDegraded is returned when the catalog is unreachable and the
	// caller should fall back to the default service duration
	ErrServiceDegraded = errors.New("servicecatalog unavailable: graceful degradation applied")
)
