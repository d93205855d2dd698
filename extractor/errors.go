package extractor

import "errors"

var (
	// ErrLexiconRequired is returned when no lexicon is given.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrInvalidConfidence is returned when a minimum confidence is outside [0,1].
	ErrInvalidConfidence = errors.New("minimum confidence must be within [0,1]")
)
