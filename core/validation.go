// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"fmt"
	"strings"
)

// ValidateRawDescription validates a RawDescription according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Type must be a known DescriptionType
//   - ConfidenceScore must be within [0,1]
//   - Position must be non-negative and not after EndPosition
//
// NOT validated (populated by voting):
//   - ConsensusRatio, QualityIndicator, ContributingEngines
func ValidateRawDescription(d *RawDescription) error {
	if d == nil {
		return fmt.Errorf("%w: description is nil", ErrInvalidDescription)
	}

	if strings.TrimSpace(d.Content) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDescription, ErrEmptyContent)
	}

	if _, err := ParseDescriptionType(string(d.Type)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}

	if d.ConfidenceScore < 0 || d.ConfidenceScore > 1 {
		return fmt.Errorf("%w: %w (got %.3f)", ErrInvalidDescription, ErrInvalidScore, d.ConfidenceScore)
	}

	if d.Position < 0 || (d.EndPosition != 0 && d.EndPosition < d.Position) {
		return fmt.Errorf("%w: %w (%d..%d)", ErrInvalidDescription, ErrInvalidPosition, d.Position, d.EndPosition)
	}

	return nil
}

// ParseDescriptionType converts a string to a DescriptionType.
// Matching is case-insensitive.
func ParseDescriptionType(s string) (DescriptionType, error) {
	norm := DescriptionType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range DescriptionTypes {
		if t == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDescriptionType, s)
}

// ParseMode converts a string to a Mode.
// Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	norm := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range Modes {
		if m == norm {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// QualityForConsensus maps a consensus ratio to a coarse quality level.
func QualityForConsensus(ratio float64) QualityLevel {
	switch {
	case ratio >= 0.8:
		return QualityHigh
	case ratio >= 0.6:
		return QualityMedium
	default:
		return QualityLow
	}
}
