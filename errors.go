package scenic

import "errors"

var (
	// ErrNotStarted is returned when processing before a successful Start.
	ErrNotStarted = errors.New("service not started")

	// ErrServiceClosed is returned when using a closed service.
	ErrServiceClosed = errors.New("service closed")
)
