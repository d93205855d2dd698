package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	a := IDFromContent("forest path")
	b := IDFromContent("forest path")
	c := IDFromContent("forest road")

	assert.Equal(t, a, b, "same content should produce same ID")
	assert.NotEqual(t, a, c, "different content should produce different IDs")
}

func TestRawDescription_ID(t *testing.T) {
	d1 := RawDescription{Content: "A quiet room.", Type: DescriptionTypeLocation}
	d2 := RawDescription{Content: "A quiet room.", Type: DescriptionTypeAtmosphere}
	assert.NotEqual(t, d1.ID(), d2.ID(), "type participates in the ID")
}

func TestRawDescription_CharLength(t *testing.T) {
	d := RawDescription{Content: "Тихая комната."}
	assert.Equal(t, 14, d.CharLength(), "length counts runes, not bytes")
}

func TestNewProcessingResult(t *testing.T) {
	r := NewProcessingResult("run-1", "ch-7", ModeEnsemble)

	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, "ch-7", r.ChapterID)
	assert.Equal(t, ModeEnsemble, r.Mode)
	assert.NotNil(t, r.Descriptions)
	assert.Empty(t, r.Descriptions)
	assert.NotNil(t, r.ProcessorResults)
	assert.NotNil(t, r.Failures)
	assert.NotNil(t, r.QualityMetrics)

	r.AddRecommendation("note")
	assert.Equal(t, []string{"note"}, r.Recommendations)
}

func TestEngineOutcome_Failed(t *testing.T) {
	ok := EngineOutcome{Engine: "a"}
	failed := EngineOutcome{Engine: "b", Err: errors.New("boom")}

	assert.False(t, ok.Failed())
	assert.True(t, failed.Failed())
}
