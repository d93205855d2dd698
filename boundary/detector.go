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

// Package boundary groups consecutive paragraphs into complete descriptions.
package boundary

import (
	"cmp"
	"slices"
	"strings"

	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/segment"
)

// Separator joins paragraph texts of a description.
const Separator = "\n\n"

// CompleteDescription is a contiguous run of paragraphs forming one passage.
type CompleteDescription struct {
	Paragraphs         []segment.Paragraph
	Text               string
	StartIndex         int // Index of the first paragraph
	EndIndex           int // Index of the last paragraph, inclusive
	CharLength         int
	ParagraphCount     int
	Coherence          float64
	BoundaryConfidence float64
}

// StartOffset returns the rune offset of the description in the source text.
func (d CompleteDescription) StartOffset() int {
	if len(d.Paragraphs) == 0 {
		return 0
	}
	return d.Paragraphs[0].StartOffset
}

// EndOffset returns the exclusive end rune offset in the source text.
func (d CompleteDescription) EndOffset() int {
	if len(d.Paragraphs) == 0 {
		return 0
	}
	return d.Paragraphs[len(d.Paragraphs)-1].EndOffset
}

// Option configures a Detector.
type Option func(*Detector) error

// WithConfig replaces the detector thresholds.
func WithConfig(cfg Config) Option {
	return func(d *Detector) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		d.cfg = cfg
		return nil
	}
}

// WithLengthBounds sets the accepted description length band.
func WithLengthBounds(minLen, maxLen int) Option {
	return func(d *Detector) error {
		cfg := d.cfg
		cfg.MinCharLength, cfg.MaxCharLength = minLen, maxLen
		if err := cfg.Validate(); err != nil {
			return err
		}
		d.cfg = cfg
		return nil
	}
}

// Detector finds description boundaries with a bounded lookahead.
// It is stateless and safe for concurrent use.
type Detector struct {
	lex *lexicon.Lexicon
	cfg Config
}

// New creates a Detector.
func New(lex *lexicon.Lexicon, opts ...Option) (*Detector, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	d := &Detector{lex: lex, cfg: DefaultConfig()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Config returns the detector thresholds.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect returns the accepted descriptions, longest first. Paragraphs of
// an accepted description are never reused by a later one.
func (d *Detector) Detect(paras []segment.Paragraph) []CompleteDescription {
	consumed := make([]bool, len(paras))
	var out []CompleteDescription

	for i := range paras {
		if consumed[i] || !d.isStart(paras[i]) {
			continue
		}
		desc, end, ok := d.grow(paras, consumed, i)
		if !ok {
			continue
		}
		for k := i; k < end; k++ {
			consumed[k] = true
		}
		out = append(out, desc)
	}

	slices.SortStableFunc(out, func(a, b CompleteDescription) int {
		if c := cmp.Compare(b.CharLength, a.CharLength); c != 0 {
			return c
		}
		return cmp.Compare(a.StartIndex, b.StartIndex)
	})
	return out
}

func (d *Detector) isStart(p segment.Paragraph) bool {
	return p.IsDescriptive() && p.Descriptiveness >= d.cfg.StartDescriptiveness
}

// grow extends a run from start and reports the exclusive end of the run
// and whether it was accepted.
func (d *Detector) grow(paras []segment.Paragraph, consumed []bool, start int) (CompleteDescription, int, bool) {
	run := []segment.Paragraph{paras[start]}
	length := paras[start].CharLength
	visual := make(map[string]struct{})
	addVisual(visual, paras[start])

	var coherences []float64
	end := start + 1
	for ; end < len(paras) && end-start <= d.cfg.Lookahead; end++ {
		next := paras[end]
		if consumed[end] {
			break
		}
		if length+len(Separator)+next.CharLength > d.cfg.MaxCharLength {
			break
		}
		if next.Type == segment.TypeDialog || next.Type == segment.TypeMeta {
			break
		}
		if d.lex.ContainsStopSignal(next.Text) || d.lex.StartsWithDialogue(next.Text) {
			break
		}
		c := d.pairCoherence(run[len(run)-1], next, visual)
		if c < d.cfg.MinPairCoherence {
			break
		}
		if next.Type == segment.TypeNarrative && next.Descriptiveness < d.cfg.NarrativeDescriptiveness {
			break
		}
		coherences = append(coherences, c)
		run = append(run, next)
		length += len(Separator) + next.CharLength
		addVisual(visual, next)
	}

	coherence := 1.0
	if len(coherences) > 0 {
		sum := 0.0
		for _, c := range coherences {
			sum += c
		}
		coherence = sum / float64(len(coherences))
	}

	var after *segment.Paragraph
	if end < len(paras) {
		after = &paras[end]
	}
	confidence := d.boundaryConfidence(run, after)

	if length < d.cfg.MinCharLength || length > d.cfg.MaxCharLength {
		return CompleteDescription{}, end, false
	}
	if coherence < d.cfg.MinOverallCoherence || confidence < d.cfg.MinBoundaryConfidence {
		return CompleteDescription{}, end, false
	}
	if !d.hasPeak(run) {
		return CompleteDescription{}, end, false
	}

	texts := make([]string, len(run))
	for k, p := range run {
		texts[k] = p.Text
	}
	return CompleteDescription{
		Paragraphs:         run,
		Text:               strings.Join(texts, Separator),
		StartIndex:         run[0].Index,
		EndIndex:           run[len(run)-1].Index,
		CharLength:         length,
		ParagraphCount:     len(run),
		Coherence:          coherence,
		BoundaryConfidence: confidence,
	}, end, true
}

func (d *Detector) hasPeak(run []segment.Paragraph) bool {
	for _, p := range run {
		if p.Descriptiveness > d.cfg.RequiredPeak {
			return true
		}
	}
	return false
}

func addVisual(set map[string]struct{}, p segment.Paragraph) {
	for _, w := range p.VisualWords {
		set[w] = struct{}{}
	}
}
