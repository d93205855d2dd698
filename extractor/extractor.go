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

package extractor

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/poiesic/scenic/boundary"
	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/scoring"
	"github.com/poiesic/scenic/segment"
)

// maxEntities bounds the entities collected per description.
const maxEntities = 10

// Extractor runs segmentation, boundary detection and scoring in sequence.
type Extractor struct {
	lex         *lexicon.Lexicon
	segmenter   *segment.Segmenter
	detector    *boundary.Detector
	scorer      *scoring.Scorer
	segmentOpts []segment.Option
	detectOpts  []boundary.Option
	scoreOpts   []scoring.Option
	logger      *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithSegmentOptions passes options to the paragraph segmenter.
func WithSegmentOptions(opts ...segment.Option) Option {
	return func(e *Extractor) error {
		e.segmentOpts = append(e.segmentOpts, opts...)
		return nil
	}
}

// WithBoundaryOptions passes options to the boundary detector.
func WithBoundaryOptions(opts ...boundary.Option) Option {
	return func(e *Extractor) error {
		e.detectOpts = append(e.detectOpts, opts...)
		return nil
	}
}

// WithScoringOptions passes options to the scorer.
func WithScoringOptions(opts ...scoring.Option) Option {
	return func(e *Extractor) error {
		e.scoreOpts = append(e.scoreOpts, opts...)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// New creates an Extractor for the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) (*Extractor, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	e := &Extractor{lex: lex, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	var err error
	if e.segmenter, err = segment.New(lex, e.segmentOpts...); err != nil {
		return nil, err
	}
	if e.detector, err = boundary.New(lex, e.detectOpts...); err != nil {
		return nil, err
	}
	if e.scorer, err = scoring.New(lex, e.scoreOpts...); err != nil {
		return nil, err
	}
	e.logger = e.logger.With("component", "extractor", "language", lex.Language())
	return e, nil
}

// Lexicon returns the lexicon the extractor runs with.
func (e *Extractor) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Extract finds, scores and ranks the descriptions of text. A nil
// minConfidence applies the scorer's length-dependent threshold and factor
// floors; otherwise only the overall score is compared.
func (e *Extractor) Extract(ctx context.Context, text string, minConfidence *float64) (*ExtractionResult, error) {
	if minConfidence != nil && (*minConfidence < 0 || *minConfidence > 1) {
		return nil, ErrInvalidConfidence
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	result := &ExtractionResult{
		Statistics: Statistics{
			ParagraphsByType: make(map[segment.ParagraphType]int),
			LengthBands:      make(map[string]int),
		},
	}

	paras := e.segmenter.Segment(text)
	result.Statistics.Paragraphs = len(paras)
	for _, p := range paras {
		result.Statistics.ParagraphsByType[p.Type]++
	}
	if len(paras) == 0 {
		result.ProcessingTime = time.Since(started)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	found := e.detector.Detect(paras)
	result.TotalExtracted = len(found)
	result.Statistics.CompleteDescriptions = len(found)
	if len(found) == 0 {
		result.ProcessingTime = time.Since(started)
		e.logger.Debug("no complete descriptions", "paragraphs", len(paras))
		return result, nil
	}

	var sumScore, sumLength float64
	for _, desc := range found {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := e.scorer.Score(desc)
		sumScore += b.Overall
		sumLength += float64(desc.CharLength)
		result.Statistics.LengthBands[lengthBand(desc.CharLength)]++

		if !accept(b, minConfidence) {
			continue
		}
		result.Descriptions = append(result.Descriptions, Scored{
			Description: desc,
			Score:       b,
			Entities:    e.lex.Entities(desc.Text, maxEntities),
		})
	}
	result.PassedThreshold = len(result.Descriptions)
	result.Statistics.AverageScore = sumScore / float64(len(found))
	result.Statistics.AverageLength = sumLength / float64(len(found))

	rank(result.Descriptions)
	result.ProcessingTime = time.Since(started)

	e.logger.Debug("extraction complete",
		"paragraphs", len(paras),
		"found", result.TotalExtracted,
		"passed", result.PassedThreshold,
		"duration", result.ProcessingTime)
	return result, nil
}

func accept(b scoring.Breakdown, minConfidence *float64) bool {
	if minConfidence != nil {
		return b.Overall >= *minConfidence
	}
	return b.Passes
}

// rank orders descriptions by priority, ties by source position.
func rank(descs []Scored) {
	slices.SortStableFunc(descs, func(a, b Scored) int {
		if c := cmp.Compare(b.Priority(), a.Priority()); c != 0 {
			return c
		}
		return cmp.Compare(a.Description.StartIndex, b.Description.StartIndex)
	})
}
