package boundary

import (
	"strings"
	"testing"

	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func para(index int, typ segment.ParagraphType, descr float64, length int, text string, visual ...string) segment.Paragraph {
	return segment.Paragraph{
		Text:            text,
		Type:            typ,
		Index:           index,
		CharLength:      length,
		Descriptiveness: descr,
		HasVisual:       len(visual) > 0,
		VisualWords:     visual,
	}
}

func newDetector(t *testing.T, opts ...Option) *Detector {
	t.Helper()
	d, err := New(lexicon.English(), opts...)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrLexiconRequired)

	_, err = New(lexicon.English(), WithLengthBounds(500, 100))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	d, err := New(lexicon.English(), WithLengthBounds(100, 500))
	require.NoError(t, err)
	assert.Equal(t, 100, d.Config().MinCharLength)
	assert.Equal(t, 500, d.Config().MaxCharLength)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Lookahead = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.MaxCharLength = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestDetect_SingleParagraph(t *testing.T) {
	d := newDetector(t)
	p := para(0, segment.TypeDescription, 1.0, 200, "The tower stood on the hill above the river.", "tower", "hill", "river")

	got := d.Detect([]segment.Paragraph{p})
	require.Len(t, got, 1)

	desc := got[0]
	assert.Equal(t, p.Text, desc.Text)
	assert.Equal(t, 200, desc.CharLength)
	assert.Equal(t, 1, desc.ParagraphCount)
	assert.Equal(t, 0, desc.StartIndex)
	assert.Equal(t, 0, desc.EndIndex)
	assert.InDelta(t, 1.0, desc.Coherence, 1e-9)
	assert.InDelta(t, 1.0, desc.BoundaryConfidence, 1e-9)
}

func TestDetect_ExtendsCoherentRun(t *testing.T) {
	d := newDetector(t)
	paras := []segment.Paragraph{
		para(0, segment.TypeDescription, 0.9, 200, "The tower stood on the hill.", "stone", "tower", "hill"),
		para(1, segment.TypeDescription, 0.8, 150, "Beyond the tower the forest rose.", "tower", "hill", "forest"),
		para(2, segment.TypeMixed, 0.7, 120, "It was dark there, and the trees were old.", "dark", "trees"),
	}

	got := d.Detect(paras)
	require.Len(t, got, 1)

	desc := got[0]
	assert.Equal(t, 3, desc.ParagraphCount)
	assert.Equal(t, 0, desc.StartIndex)
	assert.Equal(t, 2, desc.EndIndex)
	assert.Equal(t, 200+150+120+2*2, desc.CharLength)
	assert.Equal(t, strings.Join([]string{paras[0].Text, paras[1].Text, paras[2].Text}, Separator), desc.Text)

	// (0.4 + 0.2 + 0.2*2/3) and (0.1 + 0.2) averaged.
	assert.InDelta(t, (0.4+0.2+0.2*2.0/3.0+0.1+0.2)/2, desc.Coherence, 1e-9)
}

func TestDetect_HardStops(t *testing.T) {
	start := para(0, segment.TypeDescription, 0.9, 200, "The tower stood on the hill.", "tower", "hill")

	tests := []struct {
		name string
		next segment.Paragraph
	}{
		{"dialogue", para(1, segment.TypeDialog, 0.2, 100, `"Beyond the tower," she said.`, "tower", "hill")},
		{"meta", para(1, segment.TypeMeta, 0, 10, "Chapter 2")},
		{"stop signal", para(1, segment.TypeDescription, 0.9, 150, "Beyond it, suddenly, the tower fell.", "tower", "hill")},
		{"dialogue opener", para(1, segment.TypeDescription, 0.9, 150, "— Beyond the tower lies the hill.", "tower", "hill")},
		{"incoherent", para(1, segment.TypeDescription, 0.9, 150, "Nobody remembered the name.")},
		{"weak narrative", para(1, segment.TypeNarrative, 0.2, 150, "Beyond the tower he had a house.", "tower", "hill")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDetector(t)
			got := d.Detect([]segment.Paragraph{start, tt.next})
			for _, desc := range got {
				assert.Equal(t, 1, desc.ParagraphCount)
			}
			require.NotEmpty(t, got)
			assert.Equal(t, 0, got[0].StartIndex)
		})
	}
}

func TestDetect_LengthBand(t *testing.T) {
	d := newDetector(t)

	t.Run("too short", func(t *testing.T) {
		p := para(0, segment.TypeDescription, 1.0, 100, "The tower stood on the hill.", "tower")
		assert.Empty(t, d.Detect([]segment.Paragraph{p}))
	})

	t.Run("max length stops extension", func(t *testing.T) {
		paras := []segment.Paragraph{
			para(0, segment.TypeDescription, 1.0, 100, "The tower stood on the hill.", "tower", "hill", "river"),
			para(1, segment.TypeDescription, 1.0, 3950, "Beyond the tower the river ran.", "tower", "hill", "river"),
		}
		got := d.Detect(paras)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].StartIndex)
		assert.Equal(t, 3950, got[0].CharLength)
	})
}

func TestDetect_RequiresPeak(t *testing.T) {
	d := newDetector(t)
	p := para(0, segment.TypeDescription, 0.55, 300, "The tower stood on the hill.", "tower")
	assert.Empty(t, d.Detect([]segment.Paragraph{p}))
}

func TestDetect_StartCandidates(t *testing.T) {
	d := newDetector(t)
	paras := []segment.Paragraph{
		para(0, segment.TypeNarrative, 0.9, 300, "The tower stood on the hill.", "tower"),
		para(1, segment.TypeDescription, 0.4, 300, "The tower stood on the hill.", "tower"),
	}
	assert.Empty(t, d.Detect(paras))
}

func TestDetect_LookaheadBound(t *testing.T) {
	d := newDetector(t, WithConfig(Config{
		Lookahead:                1,
		MinCharLength:            150,
		MaxCharLength:            4000,
		MinPairCoherence:         0.3,
		MinOverallCoherence:      0.4,
		MinBoundaryConfidence:    0.5,
		StartDescriptiveness:     0.5,
		NarrativeDescriptiveness: 0.4,
		RequiredPeak:             0.6,
		WeakInterior:             0.3,
	}))
	var paras []segment.Paragraph
	for i := range 3 {
		paras = append(paras, para(i, segment.TypeDescription, 0.9, 200, "Beyond the hill the tower rose.", "tower", "hill", "river"))
	}

	got := d.Detect(paras)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ParagraphCount)
	assert.Equal(t, 1, got[1].ParagraphCount)
	assert.Equal(t, 2, got[1].StartIndex)
}

func TestDetect_SortedAndDisjoint(t *testing.T) {
	lex := lexicon.English()
	seg, err := segment.New(lex)
	require.NoError(t, err)
	d := newDetector(t)

	short := "The old stone tower stood on the green hill above the river. " +
		"Its grey walls were covered with dark moss and the narrow windows glowed with pale golden light."
	long := short + " Beyond the tower the forest stretched toward the blue mountains, " +
		"and the sky above them was soft with white clouds and the pale light of the evening."
	text := short + "\n\n\"Come inside,\" she said. \"It is getting cold out here tonight.\"\n\n" + long

	got := d.Detect(seg.Segment(text))
	require.Len(t, got, 2)
	assert.Greater(t, got[0].CharLength, got[1].CharLength)
	assert.Equal(t, 2, got[0].StartIndex)
	assert.Equal(t, 0, got[1].StartIndex)

	used := make(map[int]bool)
	for _, desc := range got {
		assert.GreaterOrEqual(t, desc.CharLength, d.Config().MinCharLength)
		assert.LessOrEqual(t, desc.CharLength, d.Config().MaxCharLength)
		assert.Equal(t, lexicon.RuneLen(desc.Text), desc.CharLength)
		for i := desc.StartIndex; i <= desc.EndIndex; i++ {
			assert.False(t, used[i], "paragraph %d reused", i)
			used[i] = true
		}
	}
}

func TestDetect_Empty(t *testing.T) {
	d := newDetector(t)
	assert.Empty(t, d.Detect(nil))
}
