package config

import (
	"fmt"

	"github.com/poiesic/scenic/core"
)

// ProcessorConfig is the per-engine configuration.
type ProcessorConfig struct {
	// Enabled gates whether the engine is constructed at all.
	Enabled bool `yaml:"enabled"`

	// Weight is the engine's vote weight in ensemble consensus.
	Weight float64 `yaml:"weight"`

	// ConfidenceThreshold drops engine output below this confidence.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// MinLength and MaxLength bound kept descriptions, in runes.
	// A zero MaxLength means no upper bound.
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`

	// Settings holds engine-specific options, e.g. "language".
	Settings map[string]string `yaml:"settings,omitempty"`
}

// Accepts reports whether a description passes the confidence and length filters.
func (p ProcessorConfig) Accepts(d *core.RawDescription) bool {
	if d.ConfidenceScore < p.ConfidenceThreshold {
		return false
	}
	n := d.CharLength()
	if n < p.MinLength {
		return false
	}
	return p.MaxLength == 0 || n <= p.MaxLength
}

// Setting returns an engine-specific option or def when unset.
func (p ProcessorConfig) Setting(key, def string) string {
	if v, ok := p.Settings[key]; ok && v != "" {
		return v
	}
	return def
}

// Validate checks the processor config for consistency.
func (p ProcessorConfig) Validate() error {
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive (got %.3f)", ErrInvalidProcessor, p.Weight)
	}
	if p.ConfidenceThreshold < 0 || p.ConfidenceThreshold > 1 {
		return fmt.Errorf("%w: confidence threshold must be within [0,1] (got %.3f)", ErrInvalidProcessor, p.ConfidenceThreshold)
	}
	if p.MinLength < 0 || p.MaxLength < 0 {
		return fmt.Errorf("%w: lengths must not be negative", ErrInvalidProcessor)
	}
	if p.MaxLength != 0 && p.MinLength > p.MaxLength {
		return fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidProcessor, p.MinLength, p.MaxLength)
	}
	return nil
}

// Clone returns a deep copy.
func (p ProcessorConfig) Clone() ProcessorConfig {
	out := p
	if p.Settings != nil {
		out.Settings = make(map[string]string, len(p.Settings))
		for k, v := range p.Settings {
			out.Settings[k] = v
		}
	}
	return out
}
