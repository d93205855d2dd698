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

package config

import (
	"fmt"
	"strings"

	"github.com/poiesic/scenic/core"
)

// Names of the built-in engines.
const (
	EngineAdvanced = "advanced"
	EngineLexical  = "lexical"
	EngineLLM      = "llm"
)

// LLMConfig configures the OpenAI-compatible LLM engine.
type LLMConfig struct {
	// Host is the base URL of the service.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	Host string `yaml:"host"`

	// Model is the chat model identifier.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string `yaml:"model"`

	// Token is sent as the API key. Local servers accept any value.
	Token string `yaml:"token,omitempty"`

	// MaxRetries bounds retries of a failed completion call.
	MaxRetries int `yaml:"max_retries"`

	// MaxInputRunes truncates chapter text sent to the model.
	MaxInputRunes int `yaml:"max_input_runes"`
}

// Settings is the global configuration of the multi-engine layer.
type Settings struct {
	// DefaultMode is the strategy used when a request names none.
	DefaultMode core.Mode `yaml:"default_mode"`

	// DefaultEngine is the engine used by the single strategy.
	// Empty means the first registered engine.
	DefaultEngine string `yaml:"default_engine,omitempty"`

	// MaxParallel bounds the engines run by one request.
	MaxParallel int `yaml:"max_parallel"`

	// VotingThreshold is the consensus a voting group must reach.
	VotingThreshold float64 `yaml:"voting_threshold"`

	// AgreementOverride keeps a group agreed on by this many engines
	// even under the voting threshold.
	AgreementOverride int `yaml:"agreement_override"`

	// LiteMode allows running with a single engine.
	LiteMode bool `yaml:"lite_mode"`

	// Language selects the lexicon: "en", "ru" or "auto".
	Language string `yaml:"language"`

	// LexiconPath optionally points at a YAML lexicon overriding the built-in one.
	LexiconPath string `yaml:"lexicon_path,omitempty"`

	// CachePath enables the engine result cache when set.
	CachePath string `yaml:"cache_path,omitempty"`

	LLM LLMConfig `yaml:"llm"`

	Processors map[string]ProcessorConfig `yaml:"processors"`
}

// Option is a functional option for configuring Settings.
type Option func(*Settings)

// WithMode sets the default processing mode.
func WithMode(mode core.Mode) Option {
	return func(s *Settings) {
		s.DefaultMode = mode
	}
}

// WithDefaultEngine sets the engine used by the single strategy.
func WithDefaultEngine(name string) Option {
	return func(s *Settings) {
		s.DefaultEngine = name
	}
}

// WithMaxParallel sets the maximum number of engines per request.
func WithMaxParallel(n int) Option {
	return func(s *Settings) {
		s.MaxParallel = n
	}
}

// WithVotingThreshold sets the ensemble consensus threshold.
func WithVotingThreshold(threshold float64) Option {
	return func(s *Settings) {
		s.VotingThreshold = threshold
	}
}

// WithLiteMode allows a registry with a single engine.
func WithLiteMode(lite bool) Option {
	return func(s *Settings) {
		s.LiteMode = lite
	}
}

// WithLanguage sets the lexicon language.
func WithLanguage(lang string) Option {
	return func(s *Settings) {
		s.Language = lang
	}
}

// WithLexiconPath sets a YAML lexicon override.
func WithLexiconPath(path string) Option {
	return func(s *Settings) {
		s.LexiconPath = path
	}
}

// WithCachePath enables the engine result cache at path.
func WithCachePath(path string) Option {
	return func(s *Settings) {
		s.CachePath = path
	}
}

// WithLLMHost sets the LLM service host URL.
func WithLLMHost(host string) Option {
	return func(s *Settings) {
		s.LLM.Host = host
	}
}

// WithLLMModel sets the LLM model identifier.
func WithLLMModel(model string) Option {
	return func(s *Settings) {
		s.LLM.Model = model
	}
}

// WithProcessor replaces the configuration of one engine.
func WithProcessor(name string, cfg ProcessorConfig) Option {
	return func(s *Settings) {
		if s.Processors == nil {
			s.Processors = make(map[string]ProcessorConfig)
		}
		s.Processors[name] = cfg
	}
}

// WithEngineEnabled toggles one engine, keeping the rest of its config.
func WithEngineEnabled(name string, enabled bool) Option {
	return func(s *Settings) {
		cfg := s.Processors[name]
		cfg.Enabled = enabled
		if cfg.Weight == 0 {
			cfg.Weight = 1.0
		}
		WithProcessor(name, cfg)(s)
	}
}

// DefaultProcessors returns the default configuration of the built-in engines.
func DefaultProcessors() map[string]ProcessorConfig {
	return map[string]ProcessorConfig{
		EngineAdvanced: {
			Enabled:             true,
			Weight:              1.2,
			ConfidenceThreshold: 0.3,
			MinLength:           150,
			MaxLength:           4000,
		},
		EngineLexical: {
			Enabled:             true,
			Weight:              1.0,
			ConfidenceThreshold: 0.3,
			MinLength:           100,
			MaxLength:           4000,
		},
		EngineLLM: {
			Enabled:             false,
			Weight:              1.0,
			ConfidenceThreshold: 0.5,
			MinLength:           150,
			MaxLength:           4000,
		},
	}
}

// DefaultSettings returns Settings with defaults for two local engines and
// a disabled LLM engine pointed at a local OpenAI-compatible server.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultMode:       core.ModeEnsemble,
		MaxParallel:       3,
		VotingThreshold:   0.6,
		AgreementOverride: 2,
		Language:          "en",
		LLM: LLMConfig{
			Host:          "http://localhost:11434/v1",
			Model:         "qwen2.5:3b",
			Token:         "none",
			MaxRetries:    3,
			MaxInputRunes: 12000,
		},
		Processors: DefaultProcessors(),
	}
}

// NewSettings creates Settings with the default values and applies the
// provided options.
//
// Example:
//
//	s := NewSettings(
//	    WithMode(core.ModeParallel),
//	    WithEngineEnabled(EngineLLM, true),
//	)
func NewSettings(opts ...Option) *Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Processor returns the configuration of an engine and whether it is known.
func (s *Settings) Processor(name string) (ProcessorConfig, bool) {
	cfg, ok := s.Processors[name]
	return cfg, ok
}

// Normalize puts the settings in canonical form. The LLM host gets the /v1
// suffix that OpenAI-compatible servers expect.
func (s *Settings) Normalize() {
	s.DefaultMode = core.Mode(strings.ToLower(strings.TrimSpace(string(s.DefaultMode))))
	s.Language = strings.ToLower(strings.TrimSpace(s.Language))
	if s.LLM.Host != "" && !strings.HasSuffix(s.LLM.Host, "/v1") {
		s.LLM.Host = strings.TrimSuffix(s.LLM.Host, "/") + "/v1"
	}
}

// Validate checks that the settings are valid and complete.
// It normalizes the settings first.
func (s *Settings) Validate() error {
	s.Normalize()

	if _, err := core.ParseMode(string(s.DefaultMode)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if s.MaxParallel < 1 {
		return fmt.Errorf("%w: max parallel must be at least 1", ErrInvalidSettings)
	}
	if s.VotingThreshold < 0 || s.VotingThreshold > 1 {
		return fmt.Errorf("%w: voting threshold must be within [0,1]", ErrInvalidSettings)
	}
	if s.AgreementOverride < 1 {
		return fmt.Errorf("%w: agreement override must be at least 1", ErrInvalidSettings)
	}
	switch s.Language {
	case "en", "ru", "auto":
	default:
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidSettings, s.Language)
	}
	if len(s.Processors) == 0 {
		return fmt.Errorf("%w: no processors configured", ErrInvalidSettings)
	}
	for name, p := range s.Processors {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("processor %s: %w", name, err)
		}
	}
	if llm, ok := s.Processors[EngineLLM]; ok && llm.Enabled {
		if s.LLM.Host == "" || s.LLM.Model == "" {
			return fmt.Errorf("%w: llm engine requires host and model", ErrInvalidSettings)
		}
	}
	return nil
}
