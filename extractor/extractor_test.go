package extractor

import (
	"context"
	"testing"

	"github.com/poiesic/scenic/boundary"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/internal/testtext"
	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()
	e, err := New(lexicon.English(), opts...)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrLexiconRequired)

	_, err = New(lexicon.English(), WithBoundaryOptions(boundary.WithLengthBounds(10, 5)))
	assert.ErrorIs(t, err, boundary.ErrInvalidConfig)

	e := newExtractor(t, WithLogger(nil))
	assert.Same(t, lexicon.English(), e.Lexicon())
}

func TestExtract_IsolatedPassage(t *testing.T) {
	e := newExtractor(t)

	result, err := e.Extract(context.Background(), testtext.IsolatedValley, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalExtracted)
	require.Len(t, result.Descriptions, 1)

	d := result.Descriptions[0]
	assert.GreaterOrEqual(t, d.Description.CharLength, 2000)
	assert.LessOrEqual(t, d.Description.CharLength, 3500)
	assert.Equal(t, 1.0, d.Score.LengthAppropriateness)
	assert.Equal(t, 1.5, d.Score.PriorityWeight)
	assert.Equal(t, core.DescriptionTypeLocation, d.Score.Type)
	assert.Equal(t, testtext.Valley, d.Description.Text)
	assert.Equal(t, 1, result.Statistics.LengthBands[BandVeryLong])
}

func TestExtract_ShortParagraphs(t *testing.T) {
	e := newExtractor(t)

	result, err := e.Extract(context.Background(), testtext.ShortLines, nil)
	require.NoError(t, err)
	assert.Zero(t, result.TotalExtracted)
	assert.Zero(t, result.Statistics.Paragraphs)
	assert.Empty(t, result.Descriptions)
}

func TestExtract_EmptyText(t *testing.T) {
	e := newExtractor(t)

	result, err := e.Extract(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Zero(t, result.TotalExtracted)
	assert.Zero(t, result.PassedThreshold)
}

func TestExtract_Chapter(t *testing.T) {
	e := newExtractor(t)

	result, err := e.Extract(context.Background(), testtext.Chapter, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalExtracted)
	assert.Equal(t, 3, result.PassedThreshold)

	stats := result.Statistics
	assert.Equal(t, 8, stats.Paragraphs)
	assert.Equal(t, 1, stats.ParagraphsByType[segment.TypeMeta])
	assert.Equal(t, 2, stats.ParagraphsByType[segment.TypeDialog])
	assert.Equal(t, 1, stats.ParagraphsByType[segment.TypeNarrative])
	assert.Equal(t, 4, stats.ParagraphsByType[segment.TypeDescription])
	assert.Equal(t, 3, stats.LengthBands[BandShort])
	assert.Greater(t, stats.AverageScore, 0.0)

	starts := make([]int, 0, len(result.Descriptions))
	for i, d := range result.Descriptions {
		starts = append(starts, d.Description.StartIndex)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Descriptions[i-1].Priority(), d.Priority())
		}
	}
	assert.ElementsMatch(t, []int{1, 3, 6}, starts)

	portrait := result.ByType(core.DescriptionTypeCharacter)
	require.Len(t, portrait, 1)
	assert.Equal(t, testtext.Portrait, portrait[0].Description.Text)

	castle := result.ByType(core.DescriptionTypeLocation)
	require.Len(t, castle, 1)
	assert.Equal(t, 1, castle[0].Description.StartIndex)

	hall := result.MinLength(400)
	require.Len(t, hall, 1)
	assert.Equal(t, 2, hall[0].Description.ParagraphCount)

	assert.Len(t, result.TopN(2), 2)
	assert.Len(t, result.TopN(10), 3)
	assert.Empty(t, result.TopN(0))
}

func TestExtract_RankingIdempotent(t *testing.T) {
	e := newExtractor(t)
	ctx := context.Background()

	first, err := e.Extract(ctx, testtext.Chapter, nil)
	require.NoError(t, err)
	second, err := e.Extract(ctx, testtext.Chapter, nil)
	require.NoError(t, err)

	require.Len(t, second.Descriptions, len(first.Descriptions))
	for i := range first.Descriptions {
		assert.Equal(t, first.Descriptions[i].Description.Text, second.Descriptions[i].Description.Text)
		assert.Equal(t, first.Descriptions[i].Score, second.Descriptions[i].Score)
	}
}

func TestExtract_MinConfidence(t *testing.T) {
	e := newExtractor(t)
	ctx := context.Background()

	high := 0.99
	result, err := e.Extract(ctx, testtext.Chapter, &high)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalExtracted)
	assert.Empty(t, result.Descriptions)

	zero := 0.0
	result, err = e.Extract(ctx, testtext.Chapter, &zero)
	require.NoError(t, err)
	assert.Len(t, result.Descriptions, 3)

	bad := 1.5
	_, err = e.Extract(ctx, testtext.Chapter, &bad)
	assert.ErrorIs(t, err, ErrInvalidConfidence)
}

func TestExtract_Cancelled(t *testing.T) {
	e := newExtractor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, testtext.Chapter, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtract_Entities(t *testing.T) {
	e := newExtractor(t)
	text := "The old house of Captain Morrow stood above the grey harbor of Ravenholm, its white walls bright in the sun. " +
		"Tall windows looked over the blue water, and a garden of red roses climbed the stone stairs to the door."

	result, err := e.Extract(context.Background(), text, nil)
	require.NoError(t, err)
	require.Len(t, result.Descriptions, 1)
	assert.Contains(t, result.Descriptions[0].Entities, "Morrow")
	assert.Contains(t, result.Descriptions[0].Entities, "Ravenholm")
}
