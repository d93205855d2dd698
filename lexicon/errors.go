package lexicon

import "errors"

var (
	// ErrLanguageRequired is returned when a definition has no language code.
	ErrLanguageRequired = errors.New("lexicon language required")

	// ErrNoVisualVocabulary is returned when a definition has no visual categories.
	ErrNoVisualVocabulary = errors.New("lexicon has no visual vocabulary")

	// ErrInvalidPattern is returned when a heading, epigraph or antipattern regex fails to compile.
	ErrInvalidPattern = errors.New("invalid lexicon pattern")

	// ErrUnknownLanguage is returned when no built-in lexicon exists for a language.
	ErrUnknownLanguage = errors.New("unknown lexicon language")
)
