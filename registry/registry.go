// Package registry builds the set of extraction engines a process runs with.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/engine"
)

// Entry is one initialized engine with the configuration it runs under.
type Entry struct {
	Name   string
	Engine engine.Engine
	Config config.ProcessorConfig
}

// Weight returns the voting weight of the engine.
func (e Entry) Weight() float64 {
	return e.Config.Weight
}

type registration struct {
	name    string
	factory engine.Factory
}

// Decorator wraps an engine after construction, e.g. with a cache.
type Decorator func(e engine.Engine, cfg config.ProcessorConfig) (engine.Engine, error)

// Registry holds engine factories and, once initialized, the engines built
// from them. It is written once under its init lock and read-only afterward.
type Registry struct {
	settings   *config.Settings
	decorators []Decorator
	logger     *slog.Logger

	mu            sync.Mutex
	registrations []registration
	entries       []Entry
	byName        map[string]int
	initialized   atomic.Bool
	initErr       error
}

// Option configures a Registry.
type Option func(*Registry)

// WithDecorator adds a decorator applied to every constructed engine.
func WithDecorator(d Decorator) Option {
	return func(r *Registry) {
		r.decorators = append(r.decorators, d)
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry for the given settings.
func New(settings *config.Settings, opts ...Option) *Registry {
	r := &Registry{
		settings: settings,
		logger:   slog.Default(),
		byName:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "registry")
	return r
}

// Register adds an engine factory. Engines are initialized and reported in
// registration order.
func (r *Registry) Register(name string, factory engine.Factory) error {
	if name == "" || factory == nil {
		return ErrInvalidName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized.Load() {
		return fmt.Errorf("%w: cannot register %s", ErrAlreadyInitialized, name)
	}
	for _, reg := range r.registrations {
		if reg.name == name {
			return fmt.Errorf("%w: %s", ErrDuplicateEngine, name)
		}
	}
	r.registrations = append(r.registrations, registration{name: name, factory: factory})
	return nil
}

// Initialize constructs every enabled engine once. Engines whose factory
// fails or that report unavailable are logged and omitted. Later calls
// return the result of the first. A failed build keeps no engines; a build
// interrupted by ctx is not recorded and may be retried.
func (r *Registry) Initialize(ctx context.Context) error {
	if r.initialized.Load() {
		return r.initErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized.Load() {
		return r.initErr
	}

	err := r.build(ctx)
	if err != nil {
		r.reset()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	r.initErr = err
	r.initialized.Store(true)
	return err
}

// reset closes and forgets the engines of a failed build.
// Must be called with the lock held.
func (r *Registry) reset() {
	for _, e := range r.entries {
		closeEngine(e.Engine, r.logger)
	}
	r.entries = nil
	r.byName = make(map[string]int)
}

func (r *Registry) build(ctx context.Context) error {
	for _, reg := range r.registrations {
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg, ok := r.settings.Processor(reg.name)
		if !ok || !cfg.Enabled {
			r.logger.Debug("engine disabled", "engine", reg.name)
			continue
		}

		e, err := reg.factory(ctx, cfg.Clone(), r.settings)
		if err != nil {
			r.logger.Warn("engine construction failed", "engine", reg.name, "error", err)
			continue
		}
		if !e.Available(ctx) {
			r.logger.Warn("engine unavailable", "engine", reg.name)
			closeEngine(e, r.logger)
			continue
		}
		if e, err = r.decorate(e, cfg); err != nil {
			r.logger.Warn("engine decoration failed", "engine", reg.name, "error", err)
			continue
		}

		r.byName[reg.name] = len(r.entries)
		r.entries = append(r.entries, Entry{Name: reg.name, Engine: e, Config: cfg.Clone()})
		r.logger.Info("engine initialized", "engine", reg.name, "weight", cfg.Weight)
	}

	required := 2
	if r.settings.LiteMode {
		required = 1
	}
	if len(r.entries) < required {
		return fmt.Errorf("%w: %d initialized, %d required", ErrInsufficientEngines, len(r.entries), required)
	}
	return nil
}

func (r *Registry) decorate(e engine.Engine, cfg config.ProcessorConfig) (engine.Engine, error) {
	for _, d := range r.decorators {
		var err error
		if e, err = d(e, cfg); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Initialized reports whether Initialize has run, successfully or not.
func (r *Registry) Initialized() bool {
	return r.initialized.Load()
}

// Err returns the error of the recorded Initialize call, nil before it.
func (r *Registry) Err() error {
	if !r.initialized.Load() {
		return nil
	}
	return r.initErr
}

func (r *Registry) ready() bool {
	return r.initialized.Load() && r.initErr == nil
}

// Settings returns the settings the registry was built with.
func (r *Registry) Settings() *config.Settings {
	return r.settings
}

// Entries returns the initialized engines in registration order, none after
// a failed Initialize. The slice is a copy; entries must not be modified.
func (r *Registry) Entries() []Entry {
	if !r.ready() {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Entry returns one initialized engine by name.
func (r *Registry) Entry(name string) (Entry, bool) {
	if !r.ready() {
		return Entry{}, false
	}
	i, ok := r.byName[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Registered returns the names of every registered factory in order.
func (r *Registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.registrations))
	for _, reg := range r.registrations {
		names = append(names, reg.name)
	}
	return names
}

// Close releases engines holding resources.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for _, e := range r.entries {
		if err := engine.Close(e.Engine); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", e.Name, err))
		}
	}
	return errors.Join(errs...)
}

func closeEngine(e engine.Engine, logger *slog.Logger) {
	if err := engine.Close(e); err != nil {
		logger.Warn("engine close failed", "engine", e.Name(), "error", err)
	}
}
