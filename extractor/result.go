package extractor

import (
	"time"

	"github.com/poiesic/scenic/boundary"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/scoring"
	"github.com/poiesic/scenic/segment"
)

// Length band names used in Statistics.LengthBands.
const (
	BandVeryLong = "very_long" // 2000 runes and up
	BandLong     = "long"      // 1000-1999
	BandMedium   = "medium"    // 500-999
	BandShort    = "short"     // below 500
)

// Scored is a complete description with its score breakdown.
type Scored struct {
	Description boundary.CompleteDescription
	Score       scoring.Breakdown
	Entities    []string
}

// Priority returns the ranking score of the description.
func (s Scored) Priority() float64 {
	return s.Score.Priority()
}

// Statistics summarizes one extraction run.
type Statistics struct {
	Paragraphs           int
	ParagraphsByType     map[segment.ParagraphType]int
	CompleteDescriptions int
	AverageScore         float64 // mean overall score of all complete descriptions
	AverageLength        float64 // mean rune length of all complete descriptions
	LengthBands          map[string]int
}

// ExtractionResult is the ranked output of one extraction run.
type ExtractionResult struct {
	Descriptions    []Scored
	TotalExtracted  int
	PassedThreshold int
	Statistics      Statistics
	ProcessingTime  time.Duration
}

// TopN returns the n highest ranked descriptions.
func (r *ExtractionResult) TopN(n int) []Scored {
	if n <= 0 {
		return nil
	}
	if n > len(r.Descriptions) {
		n = len(r.Descriptions)
	}
	return r.Descriptions[:n]
}

// ByType returns the descriptions of the given type in rank order.
func (r *ExtractionResult) ByType(t core.DescriptionType) []Scored {
	var out []Scored
	for _, d := range r.Descriptions {
		if d.Score.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// MinLength returns the descriptions of at least n runes in rank order.
func (r *ExtractionResult) MinLength(n int) []Scored {
	var out []Scored
	for _, d := range r.Descriptions {
		if d.Description.CharLength >= n {
			out = append(out, d)
		}
	}
	return out
}

func lengthBand(length int) string {
	switch {
	case length >= 2000:
		return BandVeryLong
	case length >= 1000:
		return BandLong
	case length >= 500:
		return BandMedium
	default:
		return BandShort
	}
}
