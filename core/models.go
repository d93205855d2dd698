package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DescriptionType categorizes what a description depicts.
type DescriptionType string

const (
	DescriptionTypeLocation   DescriptionType = "location"
	DescriptionTypeCharacter  DescriptionType = "character"
	DescriptionTypeAtmosphere DescriptionType = "atmosphere"
	DescriptionTypeObject     DescriptionType = "object"
	DescriptionTypeAction     DescriptionType = "action"
)

// DescriptionTypes lists every valid description type in canonical order.
var DescriptionTypes = []DescriptionType{
	DescriptionTypeLocation,
	DescriptionTypeCharacter,
	DescriptionTypeAtmosphere,
	DescriptionTypeObject,
	DescriptionTypeAction,
}

// Mode names a multi-engine processing strategy.
type Mode string

const (
	ModeSingle     Mode = "single"
	ModeParallel   Mode = "parallel"
	ModeSequential Mode = "sequential"
	ModeEnsemble   Mode = "ensemble"
	ModeAdaptive   Mode = "adaptive"
)

// Modes lists every known processing mode.
var Modes = []Mode{ModeSingle, ModeParallel, ModeSequential, ModeEnsemble, ModeAdaptive}

// QualityLevel is a coarse consensus indicator attached by ensemble voting.
type QualityLevel string

const (
	QualityHigh   QualityLevel = "high"
	QualityMedium QualityLevel = "medium"
	QualityLow    QualityLevel = "low"
)

// Metadata carries engine-specific details for a description.
type Metadata struct {
	// ScoreBreakdown holds named factor scores, e.g. the five quality factors
	// produced by the advanced pipeline.
	ScoreBreakdown map[string]float64
	// Attributes holds free-form string annotations.
	Attributes map[string]string
}

// RawDescription is the engine-agnostic unit every extraction engine emits.
type RawDescription struct {
	Content           string
	Type              DescriptionType
	ConfidenceScore   float64 // 0-1
	PriorityScore     float64 // ranking weight, may exceed 1
	SourceEngine      string
	EntitiesMentioned []string
	Position          int // start rune offset in the source text
	EndPosition       int // end rune offset in the source text
	ChapterID         string
	Metadata          Metadata

	// Populated by ensemble voting and merging.
	ConsensusRatio      float64
	QualityIndicator    QualityLevel
	ContributingEngines []string
}

// ID returns the content-derived identifier of the description.
func (d *RawDescription) ID() ID {
	return IDFromContent(string(d.Type) + ":" + d.Content)
}

// CharLength returns the length of the content in runes.
func (d *RawDescription) CharLength() int {
	return len([]rune(d.Content))
}

// EngineOutcome is the result of running one engine for one request.
// Exactly one of Descriptions or Err is meaningful: a failed engine
// contributes no descriptions.
type EngineOutcome struct {
	Engine       string
	Descriptions []RawDescription
	Err          error
	Duration     time.Duration
}

// Failed reports whether the engine call failed.
func (o *EngineOutcome) Failed() bool {
	return o.Err != nil
}

// ProcessingResult is the combined artifact of one multi-engine extraction call.
type ProcessingResult struct {
	RunID            string
	ChapterID        string
	Mode             Mode
	Descriptions     []RawDescription
	ProcessorResults map[string][]RawDescription // per-engine output for audit
	Failures         map[string]string           // engine name -> failure reason
	ProcessingTime   time.Duration
	ProcessorsUsed   []string
	QualityMetrics   map[string]float64 // engine name -> quality score
	Recommendations  []string
}

// NewProcessingResult creates an empty result with initialized maps.
func NewProcessingResult(runID, chapterID string, mode Mode) *ProcessingResult {
	return &ProcessingResult{
		RunID:            runID,
		ChapterID:        chapterID,
		Mode:             mode,
		Descriptions:     []RawDescription{},
		ProcessorResults: make(map[string][]RawDescription),
		Failures:         make(map[string]string),
		QualityMetrics:   make(map[string]float64),
	}
}

// AddRecommendation appends a human-readable note to the result.
func (r *ProcessingResult) AddRecommendation(note string) {
	r.Recommendations = append(r.Recommendations, note)
}
