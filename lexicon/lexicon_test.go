package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/scenic/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Run("language required", func(t *testing.T) {
		_, err := New(Definition{VisualCategories: map[string][]string{"color": {"red"}}})
		assert.ErrorIs(t, err, ErrLanguageRequired)
	})

	t.Run("visual vocabulary required", func(t *testing.T) {
		_, err := New(Definition{Language: "xx"})
		assert.ErrorIs(t, err, ErrNoVisualVocabulary)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := New(Definition{
			Language:         "xx",
			VisualCategories: map[string][]string{"color": {"red"}},
			HeadingPatterns:  []string{"("},
		})
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})
}

func TestStemMatching(t *testing.T) {
	l := MustNew(Definition{
		Language:         "xx",
		MaxStemSuffix:    3,
		VisualCategories: map[string][]string{"nature": {"tree*", "sea"}},
	})

	tests := []struct {
		word string
		want bool
	}{
		{"tree", true},
		{"trees", true},
		{"treetop", true},
		{"treehouse", false},
		{"sea", true},
		{"season", false},
		{"tre", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, l.IsVisual(tt.word))
		})
	}
}

func TestEnglishLexicon(t *testing.T) {
	l := English()
	require.Equal(t, LanguageEnglish, l.Language())
	assert.Same(t, l, English())

	cat, ok := l.VisualCategory("crimson")
	require.True(t, ok)
	assert.Equal(t, "color", cat)
	assert.True(t, l.IsVisual("shadows"))
	assert.False(t, l.IsVisual("telephone"))

	assert.True(t, l.IsDescriptiveMarker("seemed"))
	assert.True(t, l.IsActionMarker("grabbed"))
	assert.True(t, l.IsPronoun("she"))
	assert.True(t, l.IsAdjective("mysterious"))
	assert.True(t, l.IsAdjective("crimson"))
	assert.True(t, l.IsVerbLike("walked"))
	assert.False(t, l.IsAdjective("ic"))

	assert.True(t, l.ContainsStopSignal("Suddenly the door opened."))
	assert.True(t, l.ContainsStopSignal("And then, all of a sudden, it ended."))
	assert.False(t, l.ContainsStopSignal("The door was open."))

	assert.True(t, l.StartsWithContinuation("Beyond the wall lay the sea."))
	assert.True(t, l.StartsWithContinuation("In the distance a bell rang."))
	assert.False(t, l.StartsWithContinuation("The wall was high."))

	assert.True(t, l.StartsWithPronoun("It was dark."))
	assert.True(t, l.StartsWithDialogue(`"Come here," he said.`))
	assert.True(t, l.StartsWithDialogue("— Come here."))

	assert.True(t, l.IsHeading("Chapter 12"))
	assert.True(t, l.IsHeading("CHAPTER IV"))
	assert.True(t, l.IsHeading("* * *"))
	assert.False(t, l.IsHeading("Chapters of a life were written."))

	assert.True(t, l.IsAntipattern("42"))
	assert.True(t, l.IsAntipattern("Copyright 2020 Someone"))
	assert.False(t, l.IsAntipattern("The tower stood on the hill."))
}

func TestRussianLexicon(t *testing.T) {
	l := Russian()
	require.Equal(t, LanguageRussian, l.Language())

	assert.True(t, l.IsVisual("красный"))
	assert.True(t, l.IsVisual("тёмные"))
	assert.True(t, l.IsDescriptiveMarker("казалось"))
	assert.True(t, l.ContainsStopSignal("Вдруг дверь открылась."))
	assert.True(t, l.IsHeading("Глава 3"))
	assert.True(t, l.IsAdjective("высокая"))
	assert.True(t, l.HasNameSuffix("петрович"))
}

func TestInferType(t *testing.T) {
	l := English()
	order := core.DescriptionTypes

	t.Run("location wins", func(t *testing.T) {
		best, score, _ := l.InferType(Words("The castle stood above the valley and the river."), order)
		assert.Equal(t, core.DescriptionTypeLocation, best)
		assert.Greater(t, score, 0.0)
	})

	t.Run("character wins", func(t *testing.T) {
		best, _, _ := l.InferType(Words("Her face was pale, her eyes grey, her hair long."), order)
		assert.Equal(t, core.DescriptionTypeCharacter, best)
	})

	t.Run("no hits", func(t *testing.T) {
		best, score, second := l.InferType(Words("Nothing of note."), order)
		assert.Empty(t, best)
		assert.Zero(t, score)
		assert.Zero(t, second)
	})
}

func TestForLanguage(t *testing.T) {
	l, err := ForLanguage("RU")
	require.NoError(t, err)
	assert.Same(t, Russian(), l)

	_, err = ForLanguage("klingon")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestDetector(t *testing.T) {
	d := NewDetector(nil)

	assert.Same(t, Russian(), d.Select("Старый дом стоял на высоком холме, и его тёмные окна смотрели на реку."))
	assert.Same(t, English(), d.Select("The old house stood on a high hill and its dark windows looked at the river."))
	assert.Same(t, English(), d.Select(""))
}

func TestParse_Extends(t *testing.T) {
	data := []byte(`
language: en
extends: en
visual_categories:
  color:
    - vermilion
stop_words:
  - forsooth
`)
	l, err := Parse(data)
	require.NoError(t, err)

	assert.True(t, l.IsVisual("vermilion"))
	assert.True(t, l.IsVisual("crimson"))
	assert.True(t, l.IsStopWord("forsooth"))
	assert.True(t, l.IsHeading("Chapter 1"))
}

func TestLoadFile(t *testing.T) {
	t.Run("standalone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lex.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
language: xx
visual_categories:
  color: [ochre]
`), 0o644))

		l, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "xx", l.Language())
		assert.True(t, l.IsVisual("ochre"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown base", func(t *testing.T) {
		_, err := Parse([]byte("language: xx\nextends: zz\n"))
		assert.ErrorIs(t, err, ErrUnknownLanguage)
	})
}

func TestTextHelpers(t *testing.T) {
	assert.Equal(t, []string{"the", "old", "man's", "well-worn", "coat"}, Words("The old man's well-worn coat."))
	assert.Len(t, Sentences("One. Two! Three? ..."), 3)
	assert.InDelta(t, 2.0, MeanSentenceWords("One two. Three four."), 1e-9)
	assert.Equal(t, "beyond", FirstWord("  Beyond the hill"))
	assert.True(t, StartsCapitalized(`"The end`))
	assert.False(t, StartsCapitalized("the end"))
	assert.True(t, EndsWithTerminal(`He left."`))
	assert.False(t, EndsWithTerminal("He left,"))
	assert.Equal(t, 5, RuneLen("тишин"))
}

func TestEntities(t *testing.T) {
	l := English()
	got := l.Entities("The road led to Ravenholm. There Captain Morrow waited with Elena.", 0)
	assert.Equal(t, []string{"Ravenholm", "Morrow", "Elena"}, got)

	limited := l.Entities("The road led to Ravenholm. There Captain Morrow waited with Elena.", 1)
	assert.Equal(t, []string{"Ravenholm"}, limited)

	r := Russian()
	assert.Contains(t, r.Entities("Вечером пришёл Иван Петрович.", 0), "Петрович")
}
