package lexicon

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/scenic/core"
)

// Definition is the data form of a lexicon. Word lists hold exact words;
// an entry ending in "*" is a stem and matches any word that starts with it
// and has at most MaxStemSuffix additional runes.
type Definition struct {
	Language            string                            `yaml:"language"`
	Extends             string                            `yaml:"extends,omitempty"`
	MaxStemSuffix       int                               `yaml:"max_stem_suffix"`
	VisualCategories    map[string][]string               `yaml:"visual_categories"`
	DescriptiveMarkers  []string                          `yaml:"descriptive_markers"`
	ActionMarkers       []string                          `yaml:"action_markers"`
	StopSignals         []string                          `yaml:"stop_signals"`
	ContinuationSignals []string                          `yaml:"continuation_signals"`
	Pronouns            []string                          `yaml:"pronouns"`
	TypeIndicators      map[core.DescriptionType][]string `yaml:"type_indicators"`
	Adjectives          []string                          `yaml:"adjectives"`
	AdjectiveSuffixes   []string                          `yaml:"adjective_suffixes"`
	VerbSuffixes        []string                          `yaml:"verb_suffixes"`
	StopWords           []string                          `yaml:"stop_words"`
	PlaceKeywords       []string                          `yaml:"place_keywords"`
	NameTitles          []string                          `yaml:"name_titles"`
	NameSuffixes        []string                          `yaml:"name_suffixes"`
	DialogueOpeners     []string                          `yaml:"dialogue_openers"`
	HeadingPatterns     []string                          `yaml:"heading_patterns"`
	EpigraphPatterns    []string                          `yaml:"epigraph_patterns"`
	Antipatterns        []string                          `yaml:"antipatterns"`
}

// wordSet matches words exactly or by stem.
type wordSet struct {
	exact     map[string]struct{}
	stems     map[string]struct{}
	maxSuffix int
	size      int
}

func newWordSet(entries []string, maxSuffix int) wordSet {
	ws := wordSet{
		exact:     make(map[string]struct{}),
		stems:     make(map[string]struct{}),
		maxSuffix: maxSuffix,
	}
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if stem, ok := strings.CutSuffix(e, "*"); ok {
			ws.stems[stem] = struct{}{}
		} else {
			ws.exact[e] = struct{}{}
		}
		ws.size++
	}
	return ws
}

// match reports whether the lower-cased word belongs to the set and returns
// the matched entry (the stem for stem matches).
func (ws wordSet) match(word string) (string, bool) {
	if _, ok := ws.exact[word]; ok {
		return word, true
	}
	if len(ws.stems) == 0 {
		return "", false
	}
	runes := []rune(word)
	for cut := len(runes); cut >= len(runes)-ws.maxSuffix && cut > 0; cut-- {
		prefix := string(runes[:cut])
		if _, ok := ws.stems[prefix]; ok {
			return prefix, true
		}
	}
	return "", false
}

func (ws wordSet) contains(word string) bool {
	_, ok := ws.match(word)
	return ok
}

// Lexicon is a compiled, immutable set of language-specific word tables.
// It is safe for concurrent use.
type Lexicon struct {
	language       string
	def            Definition
	visual         map[string]wordSet
	visualOrder    []string
	descriptive    wordSet
	action         wordSet
	stopSignals    wordSet
	stopPhrases    []string
	continuation   wordSet
	contPhrases    []string
	pronouns       wordSet
	typeIndicators map[core.DescriptionType]wordSet
	adjectives     wordSet
	adjSuffixes    []string
	verbSuffixes   []string
	stopWords      wordSet
	places         wordSet
	titles         wordSet
	nameSuffixes   []string
	openers        []string
	headings       []*regexp.Regexp
	epigraphs      []*regexp.Regexp
	antipatterns   []*regexp.Regexp
}

// New compiles a Definition into a Lexicon.
func New(def Definition) (*Lexicon, error) {
	if def.Language == "" {
		return nil, ErrLanguageRequired
	}
	if def.MaxStemSuffix <= 0 {
		def.MaxStemSuffix = 3
	}
	if len(def.VisualCategories) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVisualVocabulary, def.Language)
	}

	l := &Lexicon{
		language:       def.Language,
		def:            def,
		visual:         make(map[string]wordSet, len(def.VisualCategories)),
		typeIndicators: make(map[core.DescriptionType]wordSet, len(def.TypeIndicators)),
	}

	for cat, words := range def.VisualCategories {
		l.visual[cat] = newWordSet(words, def.MaxStemSuffix)
		l.visualOrder = append(l.visualOrder, cat)
	}
	sort.Strings(l.visualOrder)

	var single []string
	single, l.stopPhrases = splitPhrases(def.StopSignals)
	l.stopSignals = newWordSet(single, def.MaxStemSuffix)
	single, l.contPhrases = splitPhrases(def.ContinuationSignals)
	l.continuation = newWordSet(single, def.MaxStemSuffix)

	l.descriptive = newWordSet(def.DescriptiveMarkers, def.MaxStemSuffix)
	l.action = newWordSet(def.ActionMarkers, def.MaxStemSuffix)
	l.pronouns = newWordSet(def.Pronouns, 0)
	l.stopWords = newWordSet(def.StopWords, 0)
	l.places = newWordSet(def.PlaceKeywords, def.MaxStemSuffix)
	l.titles = newWordSet(def.NameTitles, 0)

	for t, words := range def.TypeIndicators {
		l.typeIndicators[t] = newWordSet(words, def.MaxStemSuffix)
	}

	// Colour, texture and form words double as adjectives.
	adjectives := append([]string{}, def.Adjectives...)
	for _, cat := range []string{"color", "texture", "form"} {
		adjectives = append(adjectives, def.VisualCategories[cat]...)
	}
	l.adjectives = newWordSet(adjectives, def.MaxStemSuffix)
	l.adjSuffixes = lowerAll(def.AdjectiveSuffixes)
	l.verbSuffixes = lowerAll(def.VerbSuffixes)
	l.nameSuffixes = lowerAll(def.NameSuffixes)
	l.openers = def.DialogueOpeners

	var err error
	if l.headings, err = compileAll(def.HeadingPatterns); err != nil {
		return nil, err
	}
	if l.epigraphs, err = compileAll(def.EpigraphPatterns); err != nil {
		return nil, err
	}
	if l.antipatterns, err = compileAll(def.Antipatterns); err != nil {
		return nil, err
	}

	return l, nil
}

// MustNew is like New but panics on error. Intended for built-in tables.
func MustNew(def Definition) *Lexicon {
	l, err := New(def)
	if err != nil {
		panic(err)
	}
	return l
}

func splitPhrases(entries []string) (words, phrases []string) {
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if strings.Contains(e, " ") {
			phrases = append(phrases, e)
		} else if e != "" {
			words = append(words, e)
		}
	}
	return words, phrases
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Language returns the language code of the lexicon.
func (l *Lexicon) Language() string {
	return l.language
}

// Definition returns a copy of the source definition.
func (l *Lexicon) Definition() Definition {
	return l.def
}

// VisualCategory returns the visual category of a lower-cased word.
func (l *Lexicon) VisualCategory(word string) (string, bool) {
	for _, cat := range l.visualOrder {
		if l.visual[cat].contains(word) {
			return cat, true
		}
	}
	return "", false
}

// IsVisual reports whether a lower-cased word is visual vocabulary.
func (l *Lexicon) IsVisual(word string) bool {
	_, ok := l.VisualCategory(word)
	return ok
}

// VisualCategoryCount returns the number of visual categories defined.
func (l *Lexicon) VisualCategoryCount() int {
	return len(l.visualOrder)
}

func (l *Lexicon) IsDescriptiveMarker(word string) bool { return l.descriptive.contains(word) }
func (l *Lexicon) IsActionMarker(word string) bool      { return l.action.contains(word) }
func (l *Lexicon) IsPronoun(word string) bool           { return l.pronouns.contains(word) }
func (l *Lexicon) IsStopWord(word string) bool          { return l.stopWords.contains(word) }
func (l *Lexicon) IsPlaceKeyword(word string) bool      { return l.places.contains(word) }
func (l *Lexicon) IsNameTitle(word string) bool         { return l.titles.contains(word) }

// IsAdjective reports whether a lower-cased word looks like an adjective,
// either by explicit listing or by suffix.
func (l *Lexicon) IsAdjective(word string) bool {
	if l.adjectives.contains(word) {
		return true
	}
	return hasSuffix(word, l.adjSuffixes, 2)
}

// IsVerbLike reports whether a lower-cased word carries a verb suffix.
func (l *Lexicon) IsVerbLike(word string) bool {
	return hasSuffix(word, l.verbSuffixes, 2)
}

// HasNameSuffix reports whether a lower-cased word ends in a name-forming
// suffix, e.g. a patronymic.
func (l *Lexicon) HasNameSuffix(word string) bool {
	return hasSuffix(word, l.nameSuffixes, 2)
}

// hasSuffix matches suffixes only when at least minStem runes remain.
func hasSuffix(word string, suffixes []string, minStem int) bool {
	n := utf8.RuneCountInString(word)
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) && n-utf8.RuneCountInString(s) >= minStem {
			return true
		}
	}
	return false
}

// ContainsStopSignal reports whether the text contains a stop-signal word or phrase.
func (l *Lexicon) ContainsStopSignal(text string) bool {
	for _, w := range Words(text) {
		if l.stopSignals.contains(w) {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, p := range l.stopPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// StartsWithContinuation reports whether the text opens with a continuation
// connective ("beyond", "nearby", "in the distance", ...).
func (l *Lexicon) StartsWithContinuation(text string) bool {
	words := Words(firstRunes(text, 120))
	if len(words) == 0 {
		return false
	}
	if l.continuation.contains(words[0]) {
		return true
	}
	opening := strings.Join(words, " ")
	for _, p := range l.contPhrases {
		if strings.HasPrefix(opening, p) {
			return true
		}
	}
	return false
}

// StartsWithPronoun reports whether the first word of the text is a pronoun.
func (l *Lexicon) StartsWithPronoun(text string) bool {
	w := FirstWord(text)
	return w != "" && l.IsPronoun(w)
}

// StartsWithDialogue reports whether the text opens with a dialogue marker.
func (l *Lexicon) StartsWithDialogue(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, o := range l.openers {
		if strings.HasPrefix(trimmed, o) {
			return true
		}
	}
	return false
}

// IsHeading reports whether a line is a chapter or section heading.
func (l *Lexicon) IsHeading(line string) bool {
	return matchAny(l.headings, strings.TrimSpace(line))
}

// IsEpigraph reports whether a line marks an epigraph.
func (l *Lexicon) IsEpigraph(line string) bool {
	return matchAny(l.epigraphs, strings.TrimSpace(line))
}

// IsAntipattern reports whether text is boilerplate that should be discarded.
func (l *Lexicon) IsAntipattern(text string) bool {
	return matchAny(l.antipatterns, strings.TrimSpace(text))
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// TypeHits counts type-indicator matches for each description type.
func (l *Lexicon) TypeHits(words []string) map[core.DescriptionType]int {
	hits := make(map[core.DescriptionType]int, len(l.typeIndicators))
	for t, ws := range l.typeIndicators {
		for _, w := range words {
			if ws.contains(w) {
				hits[t]++
			}
		}
	}
	return hits
}

// TypeLexiconSize returns the number of indicator entries for a type.
func (l *Lexicon) TypeLexiconSize(t core.DescriptionType) int {
	return l.typeIndicators[t].size
}

// InferType picks the description type with the most size-normalized
// indicator hits. It returns the winner, its normalized score and the
// runner-up's normalized score. Ties resolve in candidate order.
func (l *Lexicon) InferType(words []string, candidates []core.DescriptionType) (core.DescriptionType, float64, float64) {
	hits := l.TypeHits(words)
	best, bestScore, second := core.DescriptionType(""), 0.0, 0.0
	for _, t := range candidates {
		size := l.TypeLexiconSize(t)
		if size == 0 {
			continue
		}
		score := float64(hits[t]) / math.Sqrt(float64(size))
		switch {
		case score > bestScore:
			second = bestScore
			best, bestScore = t, score
		case score > second:
			second = score
		}
	}
	return best, bestScore, second
}
