package lexicon

import (
	"fmt"
	"strings"
	"sync"
)

// Language codes of the built-in lexicons.
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
	LanguageAuto    = "auto"
)

var (
	english = sync.OnceValue(func() *Lexicon { return MustNew(EnglishDefinition()) })
	russian = sync.OnceValue(func() *Lexicon { return MustNew(RussianDefinition()) })
)

// English returns the shared built-in English lexicon.
func English() *Lexicon { return english() }

// Russian returns the shared built-in Russian lexicon.
func Russian() *Lexicon { return russian() }

// ForLanguage returns the built-in lexicon for a language code.
func ForLanguage(code string) (*Lexicon, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case LanguageEnglish, "eng", "english":
		return English(), nil
	case LanguageRussian, "rus", "russian":
		return Russian(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
}

// BuiltinDefinition returns the definition of a built-in lexicon.
func BuiltinDefinition(code string) (Definition, error) {
	l, err := ForLanguage(code)
	if err != nil {
		return Definition{}, err
	}
	return l.Definition(), nil
}
