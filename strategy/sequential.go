package strategy

import (
	"context"
	"time"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/registry"
)

// Sequential runs the first MaxParallel entries one after another. A failing
// engine does not stop the run; cancellation does.
type Sequential struct{}

func (Sequential) Mode() core.Mode { return core.ModeSequential }

// Process runs the entries in registration order.
func (s Sequential) Process(ctx context.Context, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error) {
	if len(entries) == 0 {
		return nil, ErrNoEngines
	}
	started := time.Now()
	chosen := subset(entries, settings)
	outcomes := make([]core.EngineOutcome, 0, len(chosen))
	for _, e := range chosen {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, run(ctx, e, text, chapterID))
	}
	return combine(ctx, s.Mode(), chapterID, chosen, outcomes, nil, started)
}
