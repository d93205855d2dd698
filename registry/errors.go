package registry

import "errors"

var (
	// ErrInsufficientEngines is returned by Initialize when too few engines
	// could be constructed.
	ErrInsufficientEngines = errors.New("insufficient engines")

	// ErrAlreadyInitialized is returned by Register after Initialize.
	ErrAlreadyInitialized = errors.New("registry already initialized")

	// ErrDuplicateEngine is returned when a name is registered twice.
	ErrDuplicateEngine = errors.New("engine already registered")

	// ErrInvalidName is returned for an empty engine name or nil factory.
	ErrInvalidName = errors.New("invalid engine registration")
)
