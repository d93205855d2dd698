package lexicon

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	wordPattern     = regexp.MustCompile(`\p{L}+(?:['’\-]\p{L}+)*`)
	sentencePattern = regexp.MustCompile(`[^.!?…]+[.!?…]*`)
)

// Words returns the lower-cased word tokens of text.
func Words(text string) []string {
	matches := wordPattern.FindAllString(text, -1)
	for i, m := range matches {
		matches[i] = strings.ToLower(m)
	}
	return matches
}

// Sentences splits text on terminal punctuation. Fragments without any
// word are dropped.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.FindAllString(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" && wordPattern.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

// MeanSentenceWords returns the average number of words per sentence.
func MeanSentenceWords(text string) float64 {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	return float64(len(Words(text))) / float64(len(sentences))
}

// MeanWordLength returns the average word length in runes.
func MeanWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return float64(total) / float64(len(words))
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// FirstWord returns the first word of text, lower-cased.
func FirstWord(text string) string {
	m := wordPattern.FindString(firstRunes(text, 80))
	return strings.ToLower(m)
}

// StartsCapitalized reports whether the first letter of text is upper case.
func StartsCapitalized(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
		if unicode.IsDigit(r) {
			return false
		}
	}
	return false
}

// EndsWithTerminal reports whether text ends with sentence-terminal
// punctuation, ignoring trailing quotes and brackets.
func EndsWithTerminal(text string) bool {
	trimmed := strings.TrimRightFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`"'»”’)]`, r)
	})
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return strings.ContainsRune(".!?…", last)
}

func firstRunes(s string, n int) string {
	s = strings.TrimSpace(s)
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Entities returns proper-name-like tokens of text: capitalized words that
// do not open a sentence, words following a name title, and words carrying
// a name suffix. Results are deduplicated in order of first appearance.
func (l *Lexicon) Entities(text string, limit int) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	locs := wordPattern.FindAllStringIndex(text, -1)
	prevTitle := false
	for _, loc := range locs {
		if limit > 0 && len(out) >= limit {
			break
		}
		raw := text[loc[0]:loc[1]]
		lower := strings.ToLower(raw)
		capital := StartsCapitalized(raw)
		initial := sentenceInitial(text, loc[0])

		switch {
		case capital && prevTitle:
			add(raw)
		case capital && !initial && !l.IsStopWord(lower) && !l.IsPronoun(lower) && !l.IsNameTitle(lower):
			add(raw)
		case capital && l.HasNameSuffix(lower):
			add(raw)
		}
		prevTitle = l.IsNameTitle(strings.TrimSuffix(lower, "."))
	}
	return out
}

// sentenceInitial reports whether the byte offset starts a sentence: only
// spaces, quotes and dashes separate it from terminal punctuation or the
// start of the text.
func sentenceInitial(text string, offset int) bool {
	for i := offset; i > 0; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
		switch {
		case unicode.IsSpace(r), strings.ContainsRune(`"'«“„—–-(`, r):
			if r == '\n' {
				return true
			}
			continue
		case strings.ContainsRune(".!?…", r):
			return true
		default:
			return false
		}
	}
	return true
}
