package engine

import (
	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/lexicon"
)

// SettingLanguage is the processor setting that overrides the global language.
const SettingLanguage = "language"

// Lexicons resolves the lexicon an engine runs with. A fixed language or a
// lexicon file always yields the same lexicon; "auto" detects the language
// of each text.
type Lexicons struct {
	language string
	fixed    *lexicon.Lexicon
	detector *lexicon.Detector
}

// ResolveLexicons builds the lexicon source for one engine from its
// processor settings and the global settings.
func ResolveLexicons(cfg config.ProcessorConfig, settings *config.Settings) (*Lexicons, error) {
	language := cfg.Setting(SettingLanguage, settings.Language)
	if settings.LexiconPath != "" {
		lex, err := lexicon.LoadFile(settings.LexiconPath)
		if err != nil {
			return nil, err
		}
		return &Lexicons{language: lex.Language(), fixed: lex}, nil
	}
	return NewLexicons(language)
}

// NewLexicons returns the built-in lexicon source for a language code.
func NewLexicons(language string) (*Lexicons, error) {
	if language == lexicon.LanguageAuto {
		return &Lexicons{language: language, detector: lexicon.NewDetector(nil)}, nil
	}
	lex, err := lexicon.ForLanguage(language)
	if err != nil {
		return nil, err
	}
	return &Lexicons{language: lex.Language(), fixed: lex}, nil
}

// Language returns the configured language code, "auto" when detecting.
func (l *Lexicons) Language() string {
	return l.language
}

// For returns the lexicon to analyze text with.
func (l *Lexicons) For(text string) *lexicon.Lexicon {
	if l.fixed != nil {
		return l.fixed
	}
	return l.detector.Select(text)
}

// All returns every lexicon For can return.
func (l *Lexicons) All() []*lexicon.Lexicon {
	if l.fixed != nil {
		return []*lexicon.Lexicon{l.fixed}
	}
	return []*lexicon.Lexicon{lexicon.English(), lexicon.Russian()}
}
