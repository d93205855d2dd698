package segment

import (
	"strings"
	"testing"

	"github.com/poiesic/scenic/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	descriptive = "The old stone tower stood on the green hill above the river. " +
		"Its grey walls were covered with dark moss and the narrow windows glowed with pale golden light. " +
		"Beyond the tower the forest stretched toward the blue mountains, and the sky above them was soft with white clouds."

	narrative = "He had waited for the letter for three weeks, and when it finally came " +
		"he read it twice before he understood what his brother wanted from him."

	dialogue = `"Where are you going?" she asked. "To the market," he said, "before it closes for the night."`

	mixed = "The dark forest was silent and the pale moon hung above the trees, " +
		"but he ran through the ferns, grabbed the iron gate and pushed it open."
)

func newSegmenter(t *testing.T, opts ...Option) *Segmenter {
	t.Helper()
	s, err := New(lexicon.English(), opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrLexiconRequired)

	_, err = New(lexicon.English(), WithMinParagraphLength(-1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	s, err := New(lexicon.English(), WithConfig(Config{MinParagraphLength: 10, DialogueBreakLength: 20}))
	require.NoError(t, err)
	assert.Equal(t, 10, s.cfg.MinParagraphLength)
}

func TestSegment_Classification(t *testing.T) {
	s := newSegmenter(t)

	tests := []struct {
		name string
		text string
		want ParagraphType
	}{
		{"description", descriptive, TypeDescription},
		{"narrative", narrative, TypeNarrative},
		{"dialogue", dialogue, TypeDialog},
		{"mixed", mixed, TypeMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paras := s.Segment(tt.text)
			require.Len(t, paras, 1)
			assert.Equal(t, tt.want, paras[0].Type)
		})
	}
}

func TestSegment_Descriptiveness(t *testing.T) {
	s := newSegmenter(t)
	paras := s.Segment(descriptive + "\n\n" + narrative + "\n\n" + dialogue)
	require.Len(t, paras, 3)

	assert.InDelta(t, 1.0, paras[0].Descriptiveness, 1e-9)
	assert.True(t, paras[0].HasVisual)
	assert.False(t, paras[0].HasDialogue)
	assert.Contains(t, paras[0].VisualWords, "tower")

	assert.Less(t, paras[1].Descriptiveness, 0.4)
	assert.True(t, paras[2].HasDialogue)

	for _, p := range paras {
		assert.GreaterOrEqual(t, p.Descriptiveness, 0.0)
		assert.LessOrEqual(t, p.Descriptiveness, 1.0)
	}
}

func TestSegment_ShortParagraphsDropped(t *testing.T) {
	s := newSegmenter(t)
	paras := s.Segment("It was late.\n\nThe door creaked.\n\nShe slept.")
	assert.Empty(t, paras)
}

func TestSegment_EmptyText(t *testing.T) {
	s := newSegmenter(t)
	assert.Empty(t, s.Segment(""))
	assert.Empty(t, s.Segment("\n\n   \n"))
}

func TestSegment_HeadingIsMeta(t *testing.T) {
	s := newSegmenter(t)
	paras := s.Segment("Chapter 1\n\n" + descriptive)
	require.Len(t, paras, 2)

	assert.Equal(t, TypeMeta, paras[0].Type)
	assert.Equal(t, "Chapter 1", paras[0].Text)
	assert.Equal(t, 0, paras[0].Index)
	assert.Equal(t, TypeDescription, paras[1].Type)
	assert.Equal(t, 1, paras[1].Index)
}

func TestSegment_HeadingClosesBlock(t *testing.T) {
	s := newSegmenter(t)
	paras := s.Segment(descriptive + "\nChapter 2\n" + narrative)
	require.Len(t, paras, 3)
	assert.Equal(t, TypeDescription, paras[0].Type)
	assert.Equal(t, TypeMeta, paras[1].Type)
	assert.Equal(t, TypeNarrative, paras[2].Type)
}

func TestSegment_AntipatternDropped(t *testing.T) {
	s := newSegmenter(t)
	paras := s.Segment("Copyright 2024 Northwind Press. All rights reserved in every country.\n\n" + narrative)
	require.Len(t, paras, 1)
	assert.Equal(t, TypeNarrative, paras[0].Type)
	assert.Equal(t, 0, paras[0].Index)
}

func TestSegment_LinesJoined(t *testing.T) {
	s := newSegmenter(t)
	first := "The old stone tower stood on the green hill above the river."
	second := "Its grey walls were covered with dark moss."
	paras := s.Segment("  " + first + "\n" + second + "  \n")
	require.Len(t, paras, 1)

	p := paras[0]
	assert.Equal(t, first+" "+second, p.Text)
	assert.Equal(t, lexicon.RuneLen(p.Text), p.CharLength)
	assert.Equal(t, 1, p.StartLine)
	assert.Equal(t, 2, p.EndLine)
	assert.Equal(t, 2, p.StartOffset)
}

func TestSegment_DialogueBreak(t *testing.T) {
	s := newSegmenter(t)
	long := narrative + " " + narrative
	require.GreaterOrEqual(t, lexicon.RuneLen(long), DefaultDialogueBreakLength)

	paras := s.Segment(long + "\n" + dialogue)
	require.Len(t, paras, 2)
	assert.Equal(t, TypeNarrative, paras[0].Type)
	assert.Equal(t, TypeDialog, paras[1].Type)

	// A short block keeps the dialogue line.
	short := "He had waited three weeks for the letter to arrive at last."
	paras = s.Segment(short + "\n" + dialogue)
	require.Len(t, paras, 1)
}

func TestSegment_OffsetsOrdered(t *testing.T) {
	s := newSegmenter(t)
	text := strings.Join([]string{descriptive, narrative, dialogue, mixed}, "\n\n")
	runes := []rune(text)

	paras := s.Segment(text)
	require.Len(t, paras, 4)

	prevEnd := -1
	for i, p := range paras {
		assert.Equal(t, i, p.Index)
		assert.Greater(t, p.StartOffset, prevEnd)
		assert.Equal(t, p.Text, string(runes[p.StartOffset:p.EndOffset]))
		prevEnd = p.EndOffset
	}
}

func TestSegment_Russian(t *testing.T) {
	s, err := New(lexicon.Russian())
	require.NoError(t, err)

	text := "Старый каменный дом стоял на высоком холме над рекой. " +
		"Его серые стены были покрыты тёмным мхом, а узкие окна светились бледным золотым светом."
	paras := s.Segment(text)
	require.Len(t, paras, 1)
	assert.Equal(t, TypeDescription, paras[0].Type)
	assert.Greater(t, paras[0].Descriptiveness, 0.5)
}
