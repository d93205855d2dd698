// Package lexical implements a paragraph-level keyword engine. It scores
// every descriptive paragraph on its own, without boundary detection, and
// so gives an opinion independent of the advanced pipeline.
package lexical

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/scoring"
	"github.com/poiesic/scenic/segment"
)

const (
	// SettingMinDescriptiveness is the processor setting for the minimum
	// paragraph descriptiveness considered.
	SettingMinDescriptiveness = "min_descriptiveness"

	// DefaultMinDescriptiveness is used when the setting is absent.
	DefaultMinDescriptiveness = 0.5
)

type pipeline struct {
	segmenter *segment.Segmenter
	scorer    *scoring.Scorer
}

// Engine extracts single descriptive paragraphs.
type Engine struct {
	lexicons           *engine.Lexicons
	pipelines          map[*lexicon.Lexicon]pipeline
	minDescriptiveness float64
	logger             *slog.Logger
}

var _ engine.Engine = (*Engine)(nil)

// New creates the engine for a lexicon source.
func New(lexicons *engine.Lexicons, minDescriptiveness float64, logger *slog.Logger) (*Engine, error) {
	if minDescriptiveness < 0 || minDescriptiveness > 1 {
		return nil, fmt.Errorf("%w: %s must be within [0,1]", config.ErrInvalidProcessor, SettingMinDescriptiveness)
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		lexicons:           lexicons,
		pipelines:          make(map[*lexicon.Lexicon]pipeline),
		minDescriptiveness: minDescriptiveness,
		logger:             logger.With("component", "engine", "engine", config.EngineLexical),
	}
	for _, lex := range lexicons.All() {
		seg, err := segment.New(lex)
		if err != nil {
			return nil, err
		}
		sc, err := scoring.New(lex)
		if err != nil {
			return nil, err
		}
		e.pipelines[lex] = pipeline{segmenter: seg, scorer: sc}
	}
	return e, nil
}

// Factory builds the engine from configuration.
func Factory(logger *slog.Logger) engine.Factory {
	return func(ctx context.Context, cfg config.ProcessorConfig, settings *config.Settings) (engine.Engine, error) {
		lexicons, err := engine.ResolveLexicons(cfg, settings)
		if err != nil {
			return nil, err
		}
		minDescr := DefaultMinDescriptiveness
		if raw := cfg.Setting(SettingMinDescriptiveness, ""); raw != "" {
			if minDescr, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", config.ErrInvalidProcessor, SettingMinDescriptiveness, err)
			}
		}
		return New(lexicons, minDescr, logger)
	}
}

// Name returns "lexical".
func (e *Engine) Name() string {
	return config.EngineLexical
}

// Available always reports true.
func (e *Engine) Available(context.Context) bool {
	return true
}

// Fingerprint identifies the engine configuration for result caching.
func (e *Engine) Fingerprint() string {
	return e.lexicons.Language() + ":" + strconv.FormatFloat(e.minDescriptiveness, 'f', -1, 64)
}

// Extract scores every descriptive paragraph of text.
func (e *Engine) Extract(ctx context.Context, text string) ([]core.RawDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lex := e.lexicons.For(text)
	p := e.pipelines[lex]

	var out []core.RawDescription
	for _, para := range p.segmenter.Segment(text) {
		if !para.IsDescriptive() || para.Descriptiveness < e.minDescriptiveness {
			continue
		}
		b := p.scorer.ScorePassage(para.Text, 1, para.Descriptiveness)
		out = append(out, core.RawDescription{
			Content:           para.Text,
			Type:              b.Type,
			ConfidenceScore:   b.Overall,
			PriorityScore:     b.Priority(),
			SourceEngine:      config.EngineLexical,
			EntitiesMentioned: lex.Entities(para.Text, 10),
			Position:          para.StartOffset,
			EndPosition:       para.EndOffset,
			Metadata: core.Metadata{
				ScoreBreakdown: b.Factors(),
				Attributes: map[string]string{
					"paragraph_type":  string(para.Type),
					"descriptiveness": strconv.FormatFloat(para.Descriptiveness, 'f', 3, 64),
					"language":        lex.Language(),
				},
			},
		})
	}

	slices.SortStableFunc(out, func(a, b core.RawDescription) int {
		if c := cmp.Compare(b.PriorityScore, a.PriorityScore); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})
	e.logger.Debug("extracted", "language", lex.Language(), "descriptions", len(out))
	return out, nil
}
