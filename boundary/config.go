package boundary

import "fmt"

// Config holds the boundary detection thresholds.
type Config struct {
	Lookahead                int     // paragraphs examined past the start
	MinCharLength            int     // shortest accepted description, in runes
	MaxCharLength            int     // longest accepted description, in runes
	MinPairCoherence         float64 // per-paragraph extension threshold
	MinOverallCoherence      float64 // mean coherence of an accepted run
	MinBoundaryConfidence    float64
	StartDescriptiveness     float64 // start candidates need at least this
	NarrativeDescriptiveness float64 // narrative paragraphs need at least this to extend
	RequiredPeak             float64 // some paragraph must exceed this
	WeakInterior             float64 // interior paragraphs below this lower boundary confidence
}

// DefaultConfig returns the default detector thresholds.
func DefaultConfig() Config {
	return Config{
		Lookahead:                20,
		MinCharLength:            150,
		MaxCharLength:            4000,
		MinPairCoherence:         0.3,
		MinOverallCoherence:      0.4,
		MinBoundaryConfidence:    0.5,
		StartDescriptiveness:     0.5,
		NarrativeDescriptiveness: 0.4,
		RequiredPeak:             0.6,
		WeakInterior:             0.3,
	}
}

// Validate checks the thresholds for consistency.
func (c Config) Validate() error {
	if c.Lookahead < 0 {
		return fmt.Errorf("%w: lookahead must not be negative", ErrInvalidConfig)
	}
	if c.MinCharLength < 0 || c.MaxCharLength <= 0 {
		return fmt.Errorf("%w: character lengths must be positive", ErrInvalidConfig)
	}
	if c.MinCharLength > c.MaxCharLength {
		return fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidConfig, c.MinCharLength, c.MaxCharLength)
	}
	return nil
}
