// Package scoring rates complete descriptions on five independent factors.
//
// Each factor lies in [0,1]. The overall score is their weighted sum and a
// description passes only when the overall score meets a length-dependent
// threshold and every factor clears its own floor.
package scoring

import (
	"math"

	"github.com/poiesic/scenic/boundary"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/lexicon"
)

// Factor names used in score breakdown maps.
const (
	FactorLinguistic = "linguistic_quality"
	FactorVisual     = "visual_richness"
	FactorStructural = "structural_completeness"
	FactorType       = "type_specificity"
	FactorLength     = "length_appropriateness"
	FactorOverall    = "overall"
)

// Breakdown is the scored view of one description.
type Breakdown struct {
	LinguisticQuality      float64
	VisualRichness         float64
	StructuralCompleteness float64
	TypeSpecificity        float64
	LengthAppropriateness  float64
	Overall                float64

	Type           core.DescriptionType
	PriorityWeight float64
	Threshold      float64
	Passes         bool
}

// Factors returns the five factors and the overall score keyed by name.
func (b Breakdown) Factors() map[string]float64 {
	return map[string]float64{
		FactorLinguistic: b.LinguisticQuality,
		FactorVisual:     b.VisualRichness,
		FactorStructural: b.StructuralCompleteness,
		FactorType:       b.TypeSpecificity,
		FactorLength:     b.LengthAppropriateness,
		FactorOverall:    b.Overall,
	}
}

// Priority returns the ranking score, overall times priority weight.
func (b Breakdown) Priority() float64 {
	return b.Overall * b.PriorityWeight
}

// Option configures a Scorer.
type Option func(*Scorer) error

// WithWeights replaces the factor weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) error {
		if err := w.Validate(); err != nil {
			return err
		}
		s.weights = w
		return nil
	}
}

// WithFloors replaces the per-factor floors.
func WithFloors(f Floors) Option {
	return func(s *Scorer) error {
		if err := f.Validate(); err != nil {
			return err
		}
		s.floors = f
		return nil
	}
}

// Scorer computes five-factor breakdowns. It is safe for concurrent use.
type Scorer struct {
	lex     *lexicon.Lexicon
	weights Weights
	floors  Floors
}

// New creates a Scorer.
func New(lex *lexicon.Lexicon, opts ...Option) (*Scorer, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	s := &Scorer{lex: lex, weights: DefaultWeights(), floors: DefaultFloors()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Floors returns the per-factor floors in use.
func (s *Scorer) Floors() Floors {
	return s.floors
}

// Score rates a complete description.
func (s *Scorer) Score(desc boundary.CompleteDescription) Breakdown {
	return s.ScorePassage(desc.Text, desc.ParagraphCount, desc.BoundaryConfidence)
}

// ScorePassage rates arbitrary text given its paragraph count and the
// confidence of its boundaries.
func (s *Scorer) ScorePassage(text string, paragraphs int, boundaryConfidence float64) Breakdown {
	words := lexicon.Words(text)
	length := lexicon.RuneLen(text)

	b := Breakdown{
		LinguisticQuality:      s.linguistic(text, words),
		VisualRichness:         s.visual(words),
		StructuralCompleteness: s.structural(text, paragraphs, boundaryConfidence),
		LengthAppropriateness:  LengthScore(length),
		PriorityWeight:         PriorityWeight(length),
		Threshold:              Threshold(length),
	}
	b.Type, b.TypeSpecificity = s.typeSpecificity(words)

	b.Overall = clamp01(s.weights.Linguistic*b.LinguisticQuality +
		s.weights.Visual*b.VisualRichness +
		s.weights.Structural*b.StructuralCompleteness +
		s.weights.Type*b.TypeSpecificity +
		s.weights.Length*b.LengthAppropriateness)
	b.Passes = b.Overall >= b.Threshold && s.clearsFloors(b)
	return b
}

func (s *Scorer) clearsFloors(b Breakdown) bool {
	return b.LinguisticQuality >= s.floors.Linguistic &&
		b.VisualRichness >= s.floors.Visual &&
		b.StructuralCompleteness >= s.floors.Structural &&
		b.TypeSpecificity >= s.floors.Type &&
		b.LengthAppropriateness >= s.floors.Length
}

func (s *Scorer) linguistic(text string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	adjectives, nouns := 0, 0
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
		if s.lex.IsStopWord(w) {
			continue
		}
		switch {
		case s.lex.IsAdjective(w):
			adjectives++
		case s.lex.IsVerbLike(w), s.lex.IsDescriptiveMarker(w), s.lex.IsActionMarker(w):
		default:
			nouns++
		}
	}

	ratioScore := 0.0
	if nouns > 0 {
		ratioScore = band(float64(adjectives)/float64(nouns), 0.3, 0.6, 0.3)
	}
	sentenceScore := band(lexicon.MeanSentenceWords(text), 12, 25, 0.3)
	diversity := float64(len(unique)) / float64(len(words))

	return clamp01(0.4*ratioScore + 0.3*sentenceScore + 0.3*diversity)
}

func (s *Scorer) visual(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	hits := 0
	categories := make(map[string]struct{})
	for _, w := range words {
		if cat, ok := s.lex.VisualCategory(w); ok {
			hits++
			categories[cat] = struct{}{}
		}
	}
	if hits == 0 {
		return 0
	}

	hitScore := band(float64(hits), 5, 15, 0.7)
	categoryScore := math.Min(1, float64(len(categories))/4)
	densityScore := band(float64(hits)/float64(len(words)), 0.05, 0.15, 0.5)
	return clamp01(0.4*hitScore + 0.3*categoryScore + 0.3*densityScore)
}

func (s *Scorer) structural(text string, paragraphs int, boundaryConfidence float64) float64 {
	score := 0.0
	if lexicon.StartsCapitalized(text) && !s.lex.StartsWithPronoun(text) {
		score += 0.3
	}
	if lexicon.EndsWithTerminal(text) {
		score += 0.3
	}
	switch {
	case paragraphs >= 3:
		score += 0.2
	case paragraphs == 2:
		score += 0.2 * 0.7
	default:
		score += 0.2 * 0.4
	}
	score += 0.2 * clamp01(boundaryConfidence)
	return clamp01(score)
}

func (s *Scorer) typeSpecificity(words []string) (core.DescriptionType, float64) {
	best, bestScore, second := s.lex.InferType(words, core.DescriptionTypes)
	if best == "" || bestScore == 0 {
		return core.DescriptionTypeAtmosphere, 0
	}
	value := math.Min(1, bestScore/2.0)
	if bestScore >= 1.5*second {
		value = math.Min(1, value*1.25)
	}
	return best, value
}

// LengthScore maps a description length in runes to its length factor.
func LengthScore(length int) float64 {
	switch {
	case length >= 2000 && length <= 3500:
		return 1.0
	case length >= 1000 && length < 2000:
		return 0.95
	case length > 3500 && length <= 4000:
		return 0.90
	case length >= 500 && length < 1000:
		return 0.80
	case length >= 100 && length < 500:
		return 0.50
	default:
		return 0.30
	}
}

// Threshold returns the overall score a description of the given length
// must reach. Longer descriptions get a more lenient threshold.
func Threshold(length int) float64 {
	switch {
	case length >= 2000:
		return 0.35
	case length >= 1000:
		return 0.40
	case length >= 500:
		return 0.45
	default:
		return 0.50
	}
}

// PriorityWeight returns the ranking multiplier for a description length.
func PriorityWeight(length int) float64 {
	switch {
	case length >= 2000:
		return 1.5
	case length >= 1000:
		return 1.3
	case length >= 500:
		return 1.1
	default:
		return 1.0
	}
}

// band scores v against the optimal range [lo,hi]: 1 inside, v/lo below,
// and a linear decay bounded by floor above.
func band(v, lo, hi, floor float64) float64 {
	switch {
	case v < lo:
		if lo <= 0 {
			return 1
		}
		return v / lo
	case v > hi:
		return math.Max(floor, 1-(v-hi)/hi)
	default:
		return 1
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
