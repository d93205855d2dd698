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

// Package scenic extracts visual descriptions from book chapters with a
// registry of engines run under a processing strategy.
//
// A Service owns the settings, the engine registry and the optional result
// cache:
//
//	svc, err := scenic.New(config.DefaultSettings())
//	if err != nil { ... }
//	defer svc.Close()
//	if err := svc.Start(ctx); err != nil { ... }
//	result, err := svc.Process(ctx, text, "chapter-1", core.ModeEnsemble)
package scenic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
	"github.com/poiesic/scenic/engine/advanced"
	"github.com/poiesic/scenic/engine/lexical"
	"github.com/poiesic/scenic/engine/llm"
	"github.com/poiesic/scenic/registry"
	"github.com/poiesic/scenic/storage"
	"github.com/poiesic/scenic/storage/badger"
	"github.com/poiesic/scenic/strategy"
)

// Service is the process-wide entry point: it owns the settings, the engine
// registry and the result cache, and runs strategies over chapters.
type Service struct {
	settings *config.Settings
	registry *registry.Registry
	cache    storage.DescriptionCache
	ownCache bool
	closed   atomic.Bool
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*serviceOptions)

type namedFactory struct {
	name    string
	factory engine.Factory
}

type serviceOptions struct {
	logger    *slog.Logger
	cache     storage.DescriptionCache
	factories []namedFactory
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCache caches engine results in cache. The caller keeps ownership.
// Without it, Settings.CachePath opens a badger cache owned by the service.
func WithCache(cache storage.DescriptionCache) Option {
	return func(o *serviceOptions) {
		o.cache = cache
	}
}

// WithEngine registers an engine factory. A built-in name replaces the
// built-in engine.
func WithEngine(name string, factory engine.Factory) Option {
	return func(o *serviceOptions) {
		o.factories = append(o.factories, namedFactory{name: name, factory: factory})
	}
}

// New validates settings and creates a Service. Nil settings means
// config.DefaultSettings(). Engines are built by Start.
func New(settings *config.Settings, opts ...Option) (*Service, error) {
	options := &serviceOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		settings: settings,
		cache:    options.cache,
		logger:   options.logger.With("component", "scenic"),
	}
	if s.cache == nil && settings.CachePath != "" {
		cache, err := badger.NewDescriptionCache(settings.CachePath, badger.WithLogger(options.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		s.cache, s.ownCache = cache, true
	}

	regOpts := []registry.Option{
		registry.WithLogger(options.logger),
		registry.WithDecorator(engine.RetryDecorator),
	}
	if s.cache != nil {
		regOpts = append(regOpts, registry.WithDecorator(s.cacheDecorator(options.logger)))
	}
	s.registry = registry.New(settings, regOpts...)

	if err := s.register(options); err != nil {
		s.closeCache()
		return nil, err
	}
	return s, nil
}

func (s *Service) register(options *serviceOptions) error {
	builtins := []namedFactory{
		{config.EngineAdvanced, advanced.Factory(options.logger)},
		{config.EngineLexical, lexical.Factory(options.logger)},
		{config.EngineLLM, llm.Factory(options.logger)},
	}
	custom := make(map[string]engine.Factory, len(options.factories))
	for _, f := range options.factories {
		custom[f.name] = f.factory
	}
	for _, b := range builtins {
		factory := b.factory
		if f, ok := custom[b.name]; ok {
			factory = f
			delete(custom, b.name)
		}
		if err := s.registry.Register(b.name, factory); err != nil {
			return err
		}
	}
	for _, f := range options.factories {
		if _, ok := custom[f.name]; !ok {
			continue
		}
		if err := s.registry.Register(f.name, f.factory); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) cacheDecorator(logger *slog.Logger) registry.Decorator {
	return func(e engine.Engine, _ config.ProcessorConfig) (engine.Engine, error) {
		cached, err := engine.WithCache(e, s.cache, engine.FingerprintOf(e), logger)
		if err != nil {
			return nil, err
		}
		return cached, nil
	}
}

// Start initializes the engine registry. It fails with
// registry.ErrInsufficientEngines when too few engines come up.
func (s *Service) Start(ctx context.Context) error {
	if s.closed.Load() {
		return ErrServiceClosed
	}
	if err := s.registry.Initialize(ctx); err != nil {
		return err
	}
	s.logger.Info("service started", "engines", len(s.registry.Entries()), "mode", s.settings.DefaultMode)
	return nil
}

// Process extracts descriptions from one chapter. An empty mode selects
// Settings.DefaultMode.
func (s *Service) Process(ctx context.Context, text, chapterID string, mode core.Mode) (*core.ProcessingResult, error) {
	if s.closed.Load() {
		return nil, ErrServiceClosed
	}
	if !s.registry.Initialized() {
		return nil, ErrNotStarted
	}
	if err := s.registry.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotStarted, err)
	}
	if mode == "" {
		mode = s.settings.DefaultMode
	}
	st, err := strategy.ForMode(mode)
	if err != nil {
		return nil, err
	}

	result, err := st.Process(ctx, text, chapterID, s.registry.Entries(), s.settings)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("chapter processed",
		"chapter", chapterID,
		"mode", mode,
		"descriptions", len(result.Descriptions),
		"failures", len(result.Failures),
		"duration", result.ProcessingTime)
	return result, nil
}

// Settings returns the validated settings.
func (s *Service) Settings() *config.Settings {
	return s.settings
}

// Engines returns the initialized engines in registration order.
func (s *Service) Engines() []registry.Entry {
	return s.registry.Entries()
}

// Registered returns the names of all registered engine factories.
func (s *Service) Registered() []string {
	return s.registry.Registered()
}

// Cache returns the result cache, or nil when caching is off.
func (s *Service) Cache() storage.DescriptionCache {
	return s.cache
}

// Close releases the engines and the owned cache.
func (s *Service) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	err := s.registry.Close()
	if cerr := s.closeCache(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return err
}

func (s *Service) closeCache() error {
	if !s.ownCache {
		return nil
	}
	if err := s.cache.Close(); err != nil {
		s.logger.Error("error closing cache", "err", err)
		return err
	}
	return nil
}
