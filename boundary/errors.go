package boundary

import "errors"

var (
	// ErrLexiconRequired is returned when no lexicon is given.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrInvalidConfig is returned when detector thresholds are inconsistent.
	ErrInvalidConfig = errors.New("invalid boundary config")
)
