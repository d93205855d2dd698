package scoring

import "errors"

var (
	// ErrLexiconRequired is returned when no lexicon is given.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrInvalidWeights is returned when factor weights are negative or do not sum to 1.
	ErrInvalidWeights = errors.New("invalid scoring weights")

	// ErrInvalidFloors is returned when a factor floor is outside [0,1].
	ErrInvalidFloors = errors.New("invalid scoring floors")
)
