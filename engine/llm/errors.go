package llm

import "errors"

var (
	// ErrInvalidConfig is returned when the LLM settings are incomplete.
	ErrInvalidConfig = errors.New("invalid llm configuration")

	// ErrMalformedResponse is returned when the model answer cannot be parsed.
	ErrMalformedResponse = errors.New("malformed llm response")
)
