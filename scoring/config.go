package scoring

import (
	"fmt"
	"math"
)

// Weights are the contributions of the five factors to the overall score.
type Weights struct {
	Linguistic float64 `yaml:"linguistic"`
	Visual     float64 `yaml:"visual"`
	Structural float64 `yaml:"structural"`
	Type       float64 `yaml:"type"`
	Length     float64 `yaml:"length"`
}

// DefaultWeights returns the default factor weights. They sum to 1.
func DefaultWeights() Weights {
	return Weights{
		Linguistic: 0.30,
		Visual:     0.25,
		Structural: 0.20,
		Type:       0.15,
		Length:     0.10,
	}
}

func (w Weights) sum() float64 {
	return w.Linguistic + w.Visual + w.Structural + w.Type + w.Length
}

// Floors are the per-factor minimums a passing description must clear.
type Floors struct {
	Linguistic float64 `yaml:"linguistic"`
	Visual     float64 `yaml:"visual"`
	Structural float64 `yaml:"structural"`
	Type       float64 `yaml:"type"`
	Length     float64 `yaml:"length"`
}

// DefaultFloors returns the default per-factor minimums.
func DefaultFloors() Floors {
	return Floors{
		Linguistic: 0.2,
		Visual:     0.15,
		Structural: 0.2,
		Type:       0.05,
		Length:     0.3,
	}
}

// Validate checks that the weights are usable.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Linguistic, w.Visual, w.Structural, w.Type, w.Length} {
		if v < 0 {
			return fmt.Errorf("%w: negative weight %.3f", ErrInvalidWeights, v)
		}
	}
	if math.Abs(w.sum()-1) > 1e-6 {
		return fmt.Errorf("%w: weights sum to %.3f", ErrInvalidWeights, w.sum())
	}
	return nil
}

// Validate checks that every floor lies in [0,1].
func (f Floors) Validate() error {
	for _, v := range []float64{f.Linguistic, f.Visual, f.Structural, f.Type, f.Length} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: floor %.3f out of range", ErrInvalidFloors, v)
		}
	}
	return nil
}
