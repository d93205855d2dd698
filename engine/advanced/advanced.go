// Package advanced wraps the single-engine extraction pipeline as an engine.
package advanced

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/extractor"
	"github.com/poiesic/scenic/lexicon"
)

// SettingMinConfidence is the processor setting that replaces the adaptive
// threshold with a fixed minimum overall score.
const SettingMinConfidence = "min_confidence"

// Attribute keys set on every description.
const (
	AttrParagraphCount     = "paragraph_count"
	AttrCoherence          = "coherence"
	AttrBoundaryConfidence = "boundary_confidence"
	AttrLanguage           = "language"
)

// Engine runs segmentation, boundary detection and scoring.
type Engine struct {
	lexicons      *engine.Lexicons
	extractors    map[*lexicon.Lexicon]*extractor.Extractor
	minConfidence *float64
	logger        *slog.Logger
}

var _ engine.Engine = (*Engine)(nil)

// New creates the engine for a lexicon source.
func New(lexicons *engine.Lexicons, minConfidence *float64, logger *slog.Logger, opts ...extractor.Option) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		lexicons:      lexicons,
		extractors:    make(map[*lexicon.Lexicon]*extractor.Extractor),
		minConfidence: minConfidence,
		logger:        logger.With("component", "engine", "engine", config.EngineAdvanced),
	}
	for _, lex := range lexicons.All() {
		x, err := extractor.New(lex, append([]extractor.Option{extractor.WithLogger(logger)}, opts...)...)
		if err != nil {
			return nil, err
		}
		e.extractors[lex] = x
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
		var minConfidence *float64
		if raw := cfg.Setting(SettingMinConfidence, ""); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", config.ErrInvalidProcessor, SettingMinConfidence, err)
			}
			minConfidence = &v
		}
		return New(lexicons, minConfidence, logger)
	}
}

// Name returns "advanced".
func (e *Engine) Name() string {
	return config.EngineAdvanced
}

// Available always reports true; the engine has no external dependencies.
func (e *Engine) Available(context.Context) bool {
	return true
}

// Fingerprint identifies the engine configuration for result caching.
func (e *Engine) Fingerprint() string {
	fp := e.lexicons.Language()
	if e.minConfidence != nil {
		fp += ":" + strconv.FormatFloat(*e.minConfidence, 'f', -1, 64)
	}
	return fp
}

// Extract returns the ranked descriptions of text.
func (e *Engine) Extract(ctx context.Context, text string) ([]core.RawDescription, error) {
	lex := e.lexicons.For(text)
	result, err := e.extractors[lex].Extract(ctx, text, e.minConfidence)
	if err != nil {
		return nil, err
	}

	out := make([]core.RawDescription, 0, len(result.Descriptions))
	for _, s := range result.Descriptions {
		out = append(out, toRaw(s, lex.Language()))
	}
	e.logger.Debug("extracted", "language", lex.Language(), "descriptions", len(out))
	return out, nil
}

func toRaw(s extractor.Scored, language string) core.RawDescription {
	d := s.Description
	return core.RawDescription{
		Content:           d.Text,
		Type:              s.Score.Type,
		ConfidenceScore:   s.Score.Overall,
		PriorityScore:     s.Priority(),
		SourceEngine:      config.EngineAdvanced,
		EntitiesMentioned: s.Entities,
		Position:          d.StartOffset(),
		EndPosition:       d.EndOffset(),
		Metadata: core.Metadata{
			ScoreBreakdown: s.Score.Factors(),
			Attributes: map[string]string{
				AttrParagraphCount:     strconv.Itoa(d.ParagraphCount),
				AttrCoherence:          strconv.FormatFloat(d.Coherence, 'f', 3, 64),
				AttrBoundaryConfidence: strconv.FormatFloat(d.BoundaryConfidence, 'f', 3, 64),
				AttrLanguage:           language,
			},
		},
	}
}
