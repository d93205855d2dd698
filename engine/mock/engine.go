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

package mock

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/engine"
)

// Engine is a mock implementation of engine.Engine.
type Engine struct {
	// ExtractFunc overrides the default Extract behavior.
	ExtractFunc func(ctx context.Context, text string) ([]core.RawDescription, error)

	// AvailableFunc overrides the default Available behavior.
	AvailableFunc func(ctx context.Context) bool

	name         string
	descriptions []core.RawDescription
	callCount    atomic.Int64
}

var _ engine.Engine = (*Engine)(nil)

// NewEngine creates a mock engine that returns descs from every call.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewEngine(name string, descs ...core.RawDescription) *Engine {
	return &Engine{name: name, descriptions: descs}
}

// NewFailingEngine creates a mock engine whose Extract always fails with err.
func NewFailingEngine(name string, err error) *Engine {
	e := NewEngine(name)
	e.ExtractFunc = func(context.Context, string) ([]core.RawDescription, error) {
		return nil, err
	}
	return e
}

// NewPanickingEngine creates a mock engine whose Extract panics.
func NewPanickingEngine(name string) *Engine {
	e := NewEngine(name)
	e.ExtractFunc = func(context.Context, string) ([]core.RawDescription, error) {
		panic("mock engine " + name + " panicked")
	}
	return e
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return e.name
}

// Extract returns the configured descriptions.
func (e *Engine) Extract(ctx context.Context, text string) ([]core.RawDescription, error) {
	e.callCount.Add(1)

	if e.ExtractFunc != nil {
		return e.ExtractFunc(ctx, text)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(e.descriptions)
	for i := range out {
		out[i].EntitiesMentioned = slices.Clone(out[i].EntitiesMentioned)
	}
	return out, nil
}

// Available reports true unless AvailableFunc says otherwise.
func (e *Engine) Available(ctx context.Context) bool {
	if e.AvailableFunc != nil {
		return e.AvailableFunc(ctx)
	}
	return true
}

// CallCount returns the number of times Extract was called.
func (e *Engine) CallCount() int {
	return int(e.callCount.Load())
}

// Reset clears the call count and custom functions.
func (e *Engine) Reset() {
	e.callCount.Store(0)
	e.ExtractFunc = nil
	e.AvailableFunc = nil
}

// Factory returns an engine.Factory that always yields e.
func Factory(e *Engine) engine.Factory {
	return func(context.Context, config.ProcessorConfig, *config.Settings) (engine.Engine, error) {
		return e, nil
	}
}

// FailingFactory returns an engine.Factory that always fails with err.
func FailingFactory(err error) engine.Factory {
	return func(context.Context, config.ProcessorConfig, *config.Settings) (engine.Engine, error) {
		return nil, err
	}
}
