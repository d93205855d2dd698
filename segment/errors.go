package segment

import "errors"

var (
	// ErrLexiconRequired is returned when no lexicon is given.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrInvalidConfig is returned for negative thresholds.
	ErrInvalidConfig = errors.New("invalid segmenter config")
)
