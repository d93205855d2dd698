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

// Package strategy runs the initialized engines for one chapter under a
// processing mode and combines their outputs.
package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/ensemble"
	"github.com/poiesic/scenic/registry"
)

// Strategy is a stateless policy for running engines over one text.
type Strategy interface {
	// Mode returns the processing mode the strategy implements.
	Mode() core.Mode

	// Process runs engines from entries over text. Engine failures are
	// recorded in the result; only invalid requests and context
	// cancellation return an error.
	Process(ctx context.Context, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error)
}

var strategies = map[core.Mode]Strategy{
	core.ModeSingle:     Single{},
	core.ModeParallel:   Parallel{},
	core.ModeSequential: Sequential{},
	core.ModeEnsemble:   Ensemble{},
	core.ModeAdaptive:   &Adaptive{},
}

// ForMode returns the strategy for a processing mode.
func ForMode(mode core.Mode) (Strategy, error) {
	s, ok := strategies[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, mode)
	}
	return s, nil
}

// subset returns the first MaxParallel entries.
func subset(entries []registry.Entry, settings *config.Settings) []registry.Entry {
	n := min(settings.MaxParallel, len(entries))
	return entries[:max(n, 0)]
}

// run calls one engine and filters its output by the engine's configuration.
// A panic inside the engine becomes a failed outcome.
func run(ctx context.Context, e registry.Entry, text, chapterID string) (out core.EngineOutcome) {
	started := time.Now()
	out.Engine = e.Name
	defer func() {
		if r := recover(); r != nil {
			out.Descriptions = nil
			out.Err = fmt.Errorf("%w: %v", ErrEnginePanic, r)
		}
		out.Duration = time.Since(started)
	}()

	descs, err := e.Engine.Extract(ctx, text)
	if err != nil {
		out.Err = err
		return out
	}

	kept := make([]core.RawDescription, 0, len(descs))
	for _, d := range descs {
		if !e.Config.Accepts(&d) {
			continue
		}
		d.SourceEngine = e.Name
		d.ChapterID = chapterID
		kept = append(kept, d)
	}
	out.Descriptions = kept
	return out
}

// newResult creates the result of one strategy call.
func newResult(chapterID string, mode core.Mode) *core.ProcessingResult {
	return core.NewProcessingResult(uuid.NewString(), chapterID, mode)
}

// record files each outcome under its engine: raw output, failure reason
// and quality metric.
func record(result *core.ProcessingResult, outcomes []core.EngineOutcome) {
	for _, o := range outcomes {
		result.ProcessorsUsed = append(result.ProcessorsUsed, o.Engine)
		if o.Failed() {
			result.Failures[o.Engine] = o.Err.Error()
			result.ProcessorResults[o.Engine] = []core.RawDescription{}
			result.QualityMetrics[o.Engine] = 0
			continue
		}
		result.ProcessorResults[o.Engine] = o.Descriptions
		result.QualityMetrics[o.Engine] = quality(o.Descriptions)
	}
}

// quality is the mean confidence of an engine's kept descriptions.
func quality(descs []core.RawDescription) float64 {
	if len(descs) == 0 {
		return 0
	}
	var sum float64
	for _, d := range descs {
		sum += d.ConfidenceScore
	}
	return sum / float64(len(descs))
}

// finish adds the standard recommendations and timing.
func finish(ctx context.Context, result *core.ProcessingResult, outcomes []core.EngineOutcome, started time.Time) (*core.ProcessingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, o := range outcomes {
		if o.Failed() {
			result.AddRecommendation(fmt.Sprintf("engine %s failed: %v", o.Engine, o.Err))
		}
	}
	if len(result.Descriptions) == 0 {
		result.AddRecommendation("no descriptions found: the text may be too short or lack descriptive passages")
	}
	result.ProcessingTime = time.Since(started)
	return result, nil
}

// combine runs the shared tail of the multi-engine strategies.
func combine(ctx context.Context, mode core.Mode, chapterID string, entries []registry.Entry, outcomes []core.EngineOutcome, vote *ensemble.Voter, started time.Time) (*core.ProcessingResult, error) {
	result := newResult(chapterID, mode)
	record(result, outcomes)
	if vote != nil {
		result.Descriptions = vote.Vote(outcomes, entries)
	} else {
		result.Descriptions = ensemble.Merge(outcomes, entries)
	}
	return finish(ctx, result, outcomes, started)
}
