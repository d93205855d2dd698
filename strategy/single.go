package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/registry"
)

// Single runs one engine: the configured default, or the first entry.
type Single struct{}

func (Single) Mode() core.Mode { return core.ModeSingle }

// Process runs the default engine over text.
func (s Single) Process(ctx context.Context, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error) {
	if len(entries) == 0 {
		return nil, ErrNoEngines
	}
	chosen := entries[0]
	if settings.DefaultEngine != "" {
		found := false
		for _, e := range entries {
			if e.Name == settings.DefaultEngine {
				chosen, found = e, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, settings.DefaultEngine)
		}
	}
	return runSingle(ctx, s.Mode(), text, chapterID, chosen)
}

func runSingle(ctx context.Context, mode core.Mode, text, chapterID string, e registry.Entry) (*core.ProcessingResult, error) {
	started := time.Now()
	outcomes := []core.EngineOutcome{run(ctx, e, text, chapterID)}

	result := newResult(chapterID, mode)
	record(result, outcomes)
	if !outcomes[0].Failed() {
		result.Descriptions = outcomes[0].Descriptions
	}
	return finish(ctx, result, outcomes, started)
}
