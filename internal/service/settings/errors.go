package settings

import "errors"

var (
	// ErrUnknownSetting is returned when a key is not a recognized workshop setting
	ErrUnknownSetting = errors.New("unknown setting key")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
