package strategy

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/registry"
)

// Adaptive thresholds.
const (
	ComplexityThreshold = 0.6
	LongTextRunes       = 5000
)

// Analysis summarizes the text features Adaptive decides on.
type Analysis struct {
	Length     int
	Complexity float64
	HasNames   bool
	HasPlaces  bool
}

// Complex reports whether the text needs the full engine set.
func (a Analysis) Complex() bool {
	return a.Complexity > ComplexityThreshold || a.Length > LongTextRunes
}

// Adaptive picks the engine subset and the strategy from the text itself.
type Adaptive struct {
	lexicons sync.Map // language -> *engine.Lexicons
}

func (*Adaptive) Mode() core.Mode { return core.ModeAdaptive }

// Analyze measures text with the lexicon of the configured language.
func (a *Adaptive) Analyze(text string, settings *config.Settings) (Analysis, error) {
	lex, err := a.lexiconFor(text, settings.Language)
	if err != nil {
		return Analysis{}, err
	}
	return analyze(text, lex), nil
}

// Process analyzes text, selects engines and delegates to Ensemble,
// Parallel or Single.
func (a *Adaptive) Process(ctx context.Context, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error) {
	if len(entries) == 0 {
		return nil, ErrNoEngines
	}
	an, err := a.Analyze(text, settings)
	if err != nil {
		return nil, err
	}

	var (
		chosen  []registry.Entry
		trigger string
	)
	switch {
	case an.Complex():
		chosen = subset(entries, settings)
		trigger = fmt.Sprintf("complex text (complexity %.2f, %d runes)", an.Complexity, an.Length)
	case an.HasNames || an.HasPlaces:
		chosen = byWeight(entries, 2)
		trigger = "names or places mentioned"
	default:
		chosen = byWeight(entries, 1)
		trigger = "simple text"
	}

	var (
		result   *core.ProcessingResult
		delegate core.Mode
	)
	switch {
	case an.Complex() || len(chosen) > 2:
		delegate = core.ModeEnsemble
		result, err = runEnsemble(ctx, a.Mode(), text, chapterID, chosen, settings)
	case len(chosen) == 2:
		delegate = core.ModeParallel
		result, err = runParallel(ctx, a.Mode(), text, chapterID, chosen)
	default:
		delegate = core.ModeSingle
		result, err = runSingle(ctx, a.Mode(), text, chapterID, chosen[0])
	}
	if err != nil {
		return nil, err
	}
	result.AddRecommendation(fmt.Sprintf("adaptive: selected %s with %d engines for %s", delegate, len(chosen), trigger))
	return result, nil
}

func (a *Adaptive) lexiconFor(text, language string) (*lexicon.Lexicon, error) {
	if cached, ok := a.lexicons.Load(language); ok {
		return cached.(*engine.Lexicons).For(text), nil
	}
	lexicons, err := engine.NewLexicons(language)
	if err != nil {
		return nil, err
	}
	actual, _ := a.lexicons.LoadOrStore(language, lexicons)
	return actual.(*engine.Lexicons).For(text), nil
}

func analyze(text string, lex *lexicon.Lexicon) Analysis {
	words := lexicon.Words(text)
	an := Analysis{
		Length:   lexicon.RuneLen(text),
		HasNames: len(lex.Entities(text, 1)) > 0,
	}
	for _, w := range words {
		if lex.IsPlaceKeyword(w) {
			an.HasPlaces = true
			break
		}
	}
	if len(words) > 0 {
		an.Complexity = 0.5*min(1, lexicon.MeanWordLength(words)/7) +
			0.5*min(1, lexicon.MeanSentenceWords(text)/25)
	}
	return an
}

// byWeight returns the n heaviest entries in registration order. Equal
// weights go to the earlier registration.
func byWeight(entries []registry.Entry, n int) []registry.Entry {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(entries[b].Weight(), entries[a].Weight())
	})
	idx = idx[:min(n, len(idx))]
	slices.Sort(idx)

	chosen := make([]registry.Entry, 0, len(idx))
	for _, i := range idx {
		chosen = append(chosen, entries[i])
	}
	return chosen
}
