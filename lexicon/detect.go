package lexicon

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

// detectSampleRunes bounds how much text is handed to the detector.
const detectSampleRunes = 2000

// Detector picks a built-in lexicon by detecting the language of a text.
type Detector struct {
	once     sync.Once
	detector lingua.LanguageDetector
	fallback *Lexicon
}

// NewDetector creates a Detector that falls back to the given lexicon
// when the language cannot be told. A nil fallback means English.
func NewDetector(fallback *Lexicon) *Detector {
	if fallback == nil {
		fallback = English()
	}
	return &Detector{fallback: fallback}
}

// Select returns the lexicon matching the language of text.
func (d *Detector) Select(text string) *Lexicon {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Russian).
			WithMinimumRelativeDistance(0.1).
			Build()
	})

	lang, ok := d.detector.DetectLanguageOf(firstRunes(text, detectSampleRunes))
	if !ok {
		return d.fallback
	}
	switch lang {
	case lingua.Russian:
		return Russian()
	case lingua.English:
		return English()
	default:
		return d.fallback
	}
}
