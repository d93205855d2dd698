package strategy

import (
	"context"
	"time"

	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/ensemble"
	"github.com/poiesic/scenic/registry"
)

// Ensemble runs engines like Parallel and keeps only the descriptions the
// weighted vote agrees on.
type Ensemble struct{}

func (Ensemble) Mode() core.Mode { return core.ModeEnsemble }

// Process runs the first MaxParallel entries concurrently and votes.
func (s Ensemble) Process(ctx context.Context, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error) {
	if len(entries) == 0 {
		return nil, ErrNoEngines
	}
	return runEnsemble(ctx, s.Mode(), text, chapterID, subset(entries, settings), settings)
}

func runEnsemble(ctx context.Context, mode core.Mode, text, chapterID string, entries []registry.Entry, settings *config.Settings) (*core.ProcessingResult, error) {
	started := time.Now()
	outcomes, err := runConcurrent(ctx, entries, text, chapterID)
	if err != nil {
		return nil, err
	}
	voter := ensemble.NewVoter(settings.VotingThreshold, settings.AgreementOverride)
	return combine(ctx, mode, chapterID, entries, outcomes, voter, started)
}
