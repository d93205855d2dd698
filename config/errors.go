package config

import "errors"

var (
	// ErrInvalidSettings is returned when global settings fail validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInvalidProcessor is returned when a processor config fails validation.
	ErrInvalidProcessor = errors.New("invalid processor config")
)
