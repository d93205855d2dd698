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

package llm

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/scoring"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultBaseDelay    = 500 * time.Millisecond
	availabilityTimeout = 2 * time.Second

	// attrLocated records whether the answer was found verbatim in the text.
	attrLocated = "located"
)

// Engine extracts descriptions with a chat model.
type Engine struct {
	client        llms.Model
	httpClient    *http.Client
	host          string
	model         string
	minLength     int
	maxInputRunes int
	maxAttempts   int
	baseDelay     time.Duration
	logger        *slog.Logger
}

var _ engine.Engine = (*Engine)(nil)

// description is an internal type used for JSON unmarshaling.
// It matches the structure expected by the LLM.
type description struct {
	Content    string   `json:"content"`
	Type       string   `json:"type"`
	Confidence float64  `json:"confidence"`
	Entities   []string `json:"entities"`
}

// analysis is the wrapper structure for the LLM's JSON response.
type analysis struct {
	Descriptions []description `json:"descriptions"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithClient replaces the OpenAI client, typically with a fake in tests.
func WithClient(client llms.Model) Option {
	return func(e *Engine) {
		e.client = client
	}
}

// WithHTTPClient sets the client used for availability checks.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Engine) {
		e.httpClient = client
	}
}

// WithBaseDelay sets the first retry delay.
func WithBaseDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.baseDelay = d
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates the engine. minLength is passed to the model as the shortest
// passage worth returning.
func New(cfg config.LLMConfig, minLength int, opts ...Option) (*Engine, error) {
	if cfg.Host == "" || cfg.Model == "" {
		return nil, fmt.Errorf("%w: host and model are required", ErrInvalidConfig)
	}
	if cfg.MaxInputRunes <= 0 {
		return nil, fmt.Errorf("%w: max input runes must be positive", ErrInvalidConfig)
	}

	e := &Engine{
		httpClient:    &http.Client{Timeout: availabilityTimeout},
		host:          strings.TrimSuffix(cfg.Host, "/"),
		model:         cfg.Model,
		minLength:     minLength,
		maxInputRunes: cfg.MaxInputRunes,
		maxAttempts:   max(cfg.MaxRetries, 1),
		baseDelay:     defaultBaseDelay,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.client == nil {
		// Use "none" as token for local OpenAI-compatible services that don't require authentication
		token := cfg.Token
		if token == "" {
			token = "none"
		}
		client, err := openai.New(
			openai.WithBaseURL(e.host),
			openai.WithToken(token),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, err
		}
		e.client = client
	}
	e.logger = e.logger.With("component", "engine", "engine", config.EngineLLM, "model", cfg.Model)
	return e, nil
}

// Factory builds the engine from configuration.
func Factory(logger *slog.Logger) engine.Factory {
	return func(ctx context.Context, cfg config.ProcessorConfig, settings *config.Settings) (engine.Engine, error) {
		return New(settings.LLM, cfg.MinLength, WithLogger(logger))
	}
}

// Name returns "llm".
func (e *Engine) Name() string {
	return config.EngineLLM
}

// Fingerprint identifies the engine configuration for result caching.
func (e *Engine) Fingerprint() string {
	return fmt.Sprintf("%s:%s:%d:%d", e.host, e.model, e.minLength, e.maxInputRunes)
}

// Available reports whether the service answers its model listing.
func (e *Engine) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.host+"/models", nil)
	if err != nil {
		return false
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Debug("llm service unreachable", "host", e.host, "error", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Close releases idle availability-check connections.
func (e *Engine) Close() error {
	e.httpClient.CloseIdleConnections()
	return nil
}

// Extract asks the model for the descriptions of each chunk of text.
func (e *Engine) Extract(ctx context.Context, text string) ([]core.RawDescription, error) {
	if strings.TrimSpace(text) == "" {
		return []core.RawDescription{}, nil
	}

	var out []core.RawDescription
	seen := make(map[string]int)
	for _, c := range splitChunks(text, e.maxInputRunes) {
		var result analysis
		err := engine.RetryWithBackoff(ctx, func() error {
			var err error
			result, err = e.complete(ctx, c.text)
			return err
		}, e.maxAttempts, e.baseDelay)
		if err != nil {
			e.logger.Error("llm extraction failed", "offset", c.offset, "err", err)
			return nil, err
		}

		for _, d := range result.Descriptions {
			raw, ok := e.toRaw(d, c)
			if !ok {
				continue
			}
			// Chunks may repeat an answer; keep the copy found in the source.
			if i, dup := seen[raw.Content]; dup {
				if !located(out[i]) && located(raw) {
					out[i] = raw
				}
				continue
			}
			seen[raw.Content] = len(out)
			out = append(out, raw)
		}
	}

	slices.SortStableFunc(out, func(a, b core.RawDescription) int {
		if c := cmp.Compare(b.PriorityScore, a.PriorityScore); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})
	e.logger.Debug("extracted descriptions", "total", len(out))
	return out, nil
}

// complete runs one chat completion and parses its answer.
func (e *Engine) complete(ctx context.Context, text string) (analysis, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt(e.minLength)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	var result analysis
	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		return result, err
	}
	if len(response.Choices) < 1 {
		e.logger.Debug("no choices returned from model")
		return result, nil
	}

	responseText := repairJSON(stripCodeFence(response.Choices[0].Content))
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		e.logger.Warn("error parsing model response", "response", responseText, "err", err)
		return result, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return result, nil
}

func located(d core.RawDescription) bool {
	return d.Metadata.Attributes[attrLocated] == "true"
}

// toRaw validates one model answer and locates it in the source chunk.
func (e *Engine) toRaw(d description, c chunk) (core.RawDescription, bool) {
	content := strings.TrimSpace(d.Content)
	if content == "" {
		return core.RawDescription{}, false
	}
	typ, err := core.ParseDescriptionType(strings.ReplaceAll(d.Type, " ", "_"))
	if err != nil {
		e.logger.Debug("dropping description with unknown type", "type", d.Type)
		return core.RawDescription{}, false
	}
	confidence := min(max(d.Confidence, 0), 1)
	length := lexicon.RuneLen(content)

	raw := core.RawDescription{
		Content:           content,
		Type:              typ,
		ConfidenceScore:   confidence,
		PriorityScore:     confidence * scoring.PriorityWeight(length),
		SourceEngine:      config.EngineLLM,
		EntitiesMentioned: d.Entities,
		Metadata: core.Metadata{
			Attributes: map[string]string{attrLocated: "true"},
		},
	}
	if idx := strings.Index(c.text, content); idx >= 0 {
		raw.Position = c.offset + lexicon.RuneLen(c.text[:idx])
		raw.EndPosition = raw.Position + length
	} else {
		raw.Position = c.offset
		raw.Metadata.Attributes[attrLocated] = "false"
	}
	return raw, true
}
