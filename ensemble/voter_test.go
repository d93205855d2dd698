package ensemble

import (
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const castle = "The old stone castle stood on the green hill above the wide river, its grey walls covered with dark moss."

func entries(weights ...float64) []registry.Entry {
	out := make([]registry.Entry, len(weights))
	for i, w := range weights {
		out[i] = registry.Entry{
			Name:   string(rune('a' + i)),
			Config: config.ProcessorConfig{Enabled: true, Weight: w},
		}
	}
	return out
}

func desc(content string, typ core.DescriptionType, confidence float64, position int) core.RawDescription {
	return core.RawDescription{
		Content:         content,
		Type:            typ,
		ConfidenceScore: confidence,
		PriorityScore:   confidence,
		Position:        position,
	}
}

func outcome(engine string, descs ...core.RawDescription) core.EngineOutcome {
	for i := range descs {
		descs[i].SourceEngine = engine
	}
	return core.EngineOutcome{Engine: engine, Descriptions: descs}
}

func TestVote_TwoEnginesAgree(t *testing.T) {
	v := NewVoter(DefaultVotingThreshold, DefaultAgreementOverride)
	es := entries(1.0, 1.2)

	result := v.Vote([]core.EngineOutcome{
		outcome("a", desc(castle, core.DescriptionTypeLocation, 0.7, 10)),
		outcome("b", desc(castle, core.DescriptionTypeLocation, 0.6, 10)),
	}, es)

	require.Len(t, result, 1)
	d := result[0]
	assert.Equal(t, 1.0, d.ConsensusRatio)
	assert.Equal(t, core.QualityHigh, d.QualityIndicator)
	assert.Equal(t, []string{"a", "b"}, d.ContributingEngines)
	// b weighs 0.6*1.2 = 0.72 against a's 0.7.
	assert.Equal(t, "b", d.SourceEngine)
	assert.InDelta(t, 0.6*1.5, d.PriorityScore, 1e-9)
}

func TestVote_KeyNormalization(t *testing.T) {
	v := NewVoter(DefaultVotingThreshold, DefaultAgreementOverride)

	spaced := strings.ToUpper(strings.ReplaceAll(castle, " ", "  \n"))
	longer := castle + " Beyond the gate a long road wound down into the valley."
	result := v.Vote([]core.EngineOutcome{
		outcome("a", desc(castle, core.DescriptionTypeLocation, 0.7, 0)),
		outcome("b", desc(spaced, core.DescriptionTypeLocation, 0.7, 0)),
		outcome("c", desc(longer, core.DescriptionTypeLocation, 0.7, 0)),
	}, entries(1, 1, 1))

	require.Len(t, result, 1)
	assert.Len(t, result[0].ContributingEngines, 3)

	assert.Equal(t, KeyOf(&core.RawDescription{Content: castle}), KeyOf(&core.RawDescription{Content: longer}))
	assert.NotEqual(t,
		KeyOf(&core.RawDescription{Content: castle, Type: core.DescriptionTypeLocation}),
		KeyOf(&core.RawDescription{Content: castle, Type: core.DescriptionTypeObject}))
}

func TestVote_Filtering(t *testing.T) {
	es := entries(1.0, 1.0, 2.0)

	tests := []struct {
		name      string
		threshold float64
		override  int
		outcomes  []core.EngineOutcome
		want      int
		consensus float64
	}{
		{
			name:      "single light engine below threshold",
			threshold: 0.6, override: 2,
			outcomes: []core.EngineOutcome{
				outcome("a", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
				outcome("b"),
				outcome("c"),
			},
			want: 0,
		},
		{
			name:      "heavy engine alone reaches threshold",
			threshold: 0.5, override: 2,
			outcomes: []core.EngineOutcome{
				outcome("a"),
				outcome("b"),
				outcome("c", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
			},
			want: 1, consensus: 0.5,
		},
		{
			name:      "agreement override keeps group under threshold",
			threshold: 0.6, override: 2,
			outcomes: []core.EngineOutcome{
				outcome("a", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
				outcome("b", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
				outcome("c"),
			},
			want: 1, consensus: 0.5,
		},
		{
			name:      "failed engine stays in the denominator",
			threshold: 0.6, override: 2,
			outcomes: []core.EngineOutcome{
				outcome("a", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
				outcome("b"),
				{Engine: "c", Err: errors.New("boom")},
			},
			want: 0,
		},
		{
			name:      "lone survivor among failures",
			threshold: 0.6, override: 2,
			outcomes: []core.EngineOutcome{
				outcome("a", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
				{Engine: "b", Err: errors.New("boom")},
				{Engine: "c", Err: errors.New("boom")},
			},
			want: 0,
		},
		{
			name:      "failed heavy engine still weighs",
			threshold: 0.2, override: 2,
			outcomes: []core.EngineOutcome{
				outcome("a", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
				outcome("b"),
				{Engine: "c", Err: errors.New("boom")},
			},
			want: 1, consensus: 0.25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewVoter(tt.threshold, tt.override).Vote(tt.outcomes, es)
			require.Len(t, result, tt.want)
			if tt.want > 0 {
				assert.InDelta(t, tt.consensus, result[0].ConsensusRatio, 1e-9)
			}
		})
	}
}

func TestVote_FailedEngineCounts(t *testing.T) {
	v := NewVoter(DefaultVotingThreshold, DefaultAgreementOverride)
	es := entries(2.0, 1.0, 1.0)
	outcomes := []core.EngineOutcome{
		outcome("a", desc(castle, core.DescriptionTypeLocation, 0.9, 0)),
		outcome("b"),
		{Engine: "c", Err: errors.New("timeout")},
	}

	assert.Empty(t, v.Vote(outcomes, es), "2 of 4 weight is under the threshold")

	merged := Merge(outcomes, es)
	require.Len(t, merged, 1)
	assert.InDelta(t, 0.5, merged[0].ConsensusRatio, 1e-9)
	assert.Equal(t, core.QualityLow, merged[0].QualityIndicator)
	assert.Equal(t, []string{"a"}, merged[0].ContributingEngines)
}

func TestVote_Monotonicity(t *testing.T) {
	outcomes := []core.EngineOutcome{
		outcome("a", desc(castle, core.DescriptionTypeLocation, 0.8, 0)),
		outcome("b", desc(castle, core.DescriptionTypeLocation, 0.8, 0)),
		outcome("c", desc("A red door.", core.DescriptionTypeObject, 0.8, 0)),
	}

	previous := 0.0
	for _, w := range []float64{0.1, 0.5, 1.0, 1.5, 3.0, 10.0} {
		m := Merge(outcomes, entries(w, 1.0, 1.0))
		var ratio float64
		for _, d := range m {
			if d.Type == core.DescriptionTypeLocation {
				ratio = d.ConsensusRatio
			}
		}
		assert.GreaterOrEqual(t, ratio, previous, "weight %.1f", w)
		previous = ratio
	}
}

func TestVote_Ordering(t *testing.T) {
	v := NewVoter(0, DefaultAgreementOverride)
	es := entries(1.0, 1.0)

	result := v.Vote([]core.EngineOutcome{
		outcome("a",
			desc("Second by position.", core.DescriptionTypeObject, 0.5, 200),
			desc("High score.", core.DescriptionTypeObject, 0.9, 300),
		),
		outcome("b",
			desc("First by position.", core.DescriptionTypeObject, 0.5, 100),
			desc("Tie from the later engine.", core.DescriptionTypeObject, 0.5, 0),
		),
	}, es)

	require.Len(t, result, 4)
	assert.Equal(t, "High score.", result[0].Content)
	assert.Equal(t, "Second by position.", result[1].Content)
	assert.Equal(t, "Tie from the later engine.", result[2].Content)
	assert.Equal(t, "First by position.", result[3].Content)

	again := v.Vote([]core.EngineOutcome{
		outcome("a",
			desc("Second by position.", core.DescriptionTypeObject, 0.5, 200),
			desc("High score.", core.DescriptionTypeObject, 0.9, 300),
		),
		outcome("b",
			desc("First by position.", core.DescriptionTypeObject, 0.5, 100),
			desc("Tie from the later engine.", core.DescriptionTypeObject, 0.5, 0),
		),
	}, es)
	assert.Equal(t, result, again)
}

func TestVote_RepresentativeTies(t *testing.T) {
	v := NewVoter(DefaultVotingThreshold, DefaultAgreementOverride)
	a := desc(castle, core.DescriptionTypeLocation, 0.5, 40)
	a.EntitiesMentioned = []string{"Ravenholm"}
	b := desc(castle, core.DescriptionTypeLocation, 0.5, 10)
	b.EntitiesMentioned = []string{"Morrow", "Ravenholm"}

	result := v.Vote([]core.EngineOutcome{outcome("a", a), outcome("b", b)}, entries(1, 1))
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].SourceEngine)
	assert.Equal(t, []string{"Ravenholm", "Morrow"}, result[0].EntitiesMentioned)
}

func TestMerge(t *testing.T) {
	es := entries(1.0, 1.0, 1.0)
	result := Merge([]core.EngineOutcome{
		outcome("a", desc(castle, core.DescriptionTypeLocation, 0.7, 0)),
		outcome("b", desc(castle, core.DescriptionTypeLocation, 0.6, 0)),
		outcome("c", desc("A red door.", core.DescriptionTypeObject, 0.4, 500)),
	}, es)

	require.Len(t, result, 2)
	assert.Equal(t, 0.7, result[0].PriorityScore, "merge does not boost")
	assert.InDelta(t, 2.0/3.0, result[0].ConsensusRatio, 1e-9)
	assert.Equal(t, core.QualityMedium, result[0].QualityIndicator)
	assert.InDelta(t, 1.0/3.0, result[1].ConsensusRatio, 1e-9)
	assert.Equal(t, core.QualityLow, result[1].QualityIndicator)
	assert.Equal(t, []string{"c"}, result[1].ContributingEngines)
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil, entries(1, 1)))
	assert.Empty(t, NewVoter(0.6, 2).Vote([]core.EngineOutcome{{Engine: "a", Err: errors.New("x")}}, entries(1, 1)))
}

func TestQuality(t *testing.T) {
	assert.Equal(t, core.QualityHigh, Quality(0.8))
	assert.Equal(t, core.QualityMedium, Quality(0.6))
	assert.Equal(t, core.QualityLow, Quality(0.59))
}

func TestNewVoter_Defaults(t *testing.T) {
	v := NewVoter(2, 0)
	assert.Equal(t, DefaultVotingThreshold, v.threshold)
	assert.Equal(t, DefaultAgreementOverride, v.agreementOverride)
}
