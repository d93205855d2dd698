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

package strategy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/registry"
)

// Parallel runs up to MaxParallel engines concurrently and concatenates
// their outputs in engine order.
type Parallel struct{}

func (Parallel) Mode() core.Mode { return core.ModeParallel }

// Process runs the first MaxParallel entries concurrently.
func (p Parallel) Process(ctx context.Context, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error) {
	if len(entries) == 0 {
		return nil, ErrNoEngines
	}
	return runParallel(ctx, p.Mode(), text, chapterID, subset(entries, settings))
}

func runParallel(ctx context.Context, mode core.Mode, text, chapterID string, entries []registry.Entry) (*core.ProcessingResult, error) {
	started := time.Now()
	outcomes, err := runConcurrent(ctx, entries, text, chapterID)
	if err != nil {
		return nil, err
	}
	return combine(ctx, mode, chapterID, entries, outcomes, nil, started)
}

// runConcurrent runs every entry on a worker pool sized to the entries.
// Outcome i belongs to entry i whatever the completion order.
func runConcurrent(ctx context.Context, entries []registry.Entry, text, chapterID string) ([]core.EngineOutcome, error) {
	outcomes := make([]core.EngineOutcome, len(entries))
	if len(entries) == 1 {
		outcomes[0] = run(ctx, entries[0], text, chapterID)
		return outcomes, nil
	}

	pool, err := ants.NewPool(len(entries))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			outcomes[i] = run(ctx, e, text, chapterID)
		}); err != nil {
			wg.Done()
			outcomes[i] = core.EngineOutcome{Engine: e.Name, Err: fmt.Errorf("failed to submit engine: %w", err)}
		}
	}
	wg.Wait()
	return outcomes, nil
}
