package segment

import (
	"math"
	"strings"

	"github.com/poiesic/scenic/lexicon"
)

const (
	descriptiveCutoff    = 0.45
	visualSignalDensity  = 0.08
	visualDescDensity    = 0.10
	markerDescDensity    = 0.03
	sentenceWordsNorm    = 15.0
	mixedActionShare     = 0.3
	mixedActionMinimum   = 2
	dialogueQuoteMinimum = 2
)

const dialogueQuotes = `"«»“”„`

// Signals are the lexical counts a paragraph is classified from.
type Signals struct {
	Words          int
	VisualHits     int
	VisualWords    []string
	Descriptive    int
	Action         int
	DialogueQuotes int
	StartsDialogue bool
	MeanSentence   float64
}

// VisualDensity returns visual hits per word.
func (s Signals) VisualDensity() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.VisualHits) / float64(s.Words)
}

// DescriptiveDensity returns descriptive markers per word.
func (s Signals) DescriptiveDensity() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.Descriptive) / float64(s.Words)
}

// DescriptiveRatio returns the share of descriptive markers among
// descriptive and action markers, 0.5 when neither occurs.
func (s Signals) DescriptiveRatio() float64 {
	total := s.Descriptive + s.Action
	if total == 0 {
		return 0.5
	}
	return float64(s.Descriptive) / float64(total)
}

// HasDialogue reports whether the paragraph contains speech.
func (s Signals) HasDialogue() bool {
	return s.StartsDialogue || s.DialogueQuotes >= dialogueQuoteMinimum
}

// Analyze counts the classification signals of text.
func Analyze(lex *lexicon.Lexicon, text string) Signals {
	words := lexicon.Words(text)
	sig := Signals{
		Words:          len(words),
		StartsDialogue: lex.StartsWithDialogue(text),
		MeanSentence:   lexicon.MeanSentenceWords(text),
	}
	seen := make(map[string]struct{})
	for _, w := range words {
		if lex.IsVisual(w) {
			sig.VisualHits++
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				sig.VisualWords = append(sig.VisualWords, w)
			}
		}
		if lex.IsDescriptiveMarker(w) {
			sig.Descriptive++
		}
		if lex.IsActionMarker(w) {
			sig.Action++
		}
	}
	for _, r := range text {
		if strings.ContainsRune(dialogueQuotes, r) {
			sig.DialogueQuotes++
		}
	}
	return sig
}

func (s *Segmenter) classify(text string) Paragraph {
	p := Paragraph{Text: text}
	if s.lex.IsHeading(text) || s.lex.IsEpigraph(text) {
		p.Type = TypeMeta
		return p
	}

	sig := Analyze(s.lex, text)
	p.HasVisual = sig.VisualHits > 0
	p.HasDialogue = sig.HasDialogue()
	p.VisualWords = sig.VisualWords
	p.Type = classifyType(sig)
	p.Descriptiveness = Descriptiveness(sig)
	return p
}

func classifyType(sig Signals) ParagraphType {
	signal := 0.6*math.Min(1, sig.VisualDensity()/visualSignalDensity) + 0.4*sig.DescriptiveRatio()

	if sig.StartsDialogue {
		return TypeDialog
	}
	if sig.DialogueQuotes >= dialogueQuoteMinimum && signal < descriptiveCutoff {
		return TypeDialog
	}
	if signal < descriptiveCutoff {
		return TypeNarrative
	}

	actionShare := 1 - sig.DescriptiveRatio()
	if (sig.Action >= mixedActionMinimum && actionShare >= mixedActionShare) || sig.HasDialogue() {
		return TypeMixed
	}
	return TypeDescription
}

// Descriptiveness scores how descriptive a paragraph is in [0,1].
func Descriptiveness(sig Signals) float64 {
	if sig.Words == 0 {
		return 0
	}
	score := 0.4*math.Min(1, sig.VisualDensity()/visualDescDensity) +
		0.3*math.Min(1, sig.DescriptiveDensity()/markerDescDensity) +
		0.1*math.Min(1, sig.MeanSentence/sentenceWordsNorm)
	if !sig.HasDialogue() {
		score += 0.2
	}
	return math.Min(1, score)
}
