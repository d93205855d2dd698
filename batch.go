package scenic

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/scenic/core"
)

// Chapter is one unit of batch input.
type Chapter struct {
	ID   string
	Text string
}

// BatchResult is the outcome of one chapter of a batch.
type BatchResult struct {
	ChapterID string
	Result    *core.ProcessingResult
	Err       error
}

// DefaultBatchWorkers returns the default number of chapters processed at once.
func DefaultBatchWorkers() int {
	return max(runtime.NumCPU()/2, 1)
}

// ProcessBatch processes chapters on a worker pool of the given size; zero
// or less selects DefaultBatchWorkers. Results are returned in input order.
// onDone, when set, is called once per chapter as it finishes, never
// concurrently.
func (s *Service) ProcessBatch(ctx context.Context, chapters []Chapter, mode core.Mode, workers int, onDone func(BatchResult)) ([]BatchResult, error) {
	if workers <= 0 {
		workers = DefaultBatchWorkers()
	}
	pool, err := ants.NewPool(min(workers, max(len(chapters), 1)))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]BatchResult, len(chapters))
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	done := func(i int, r BatchResult) {
		results[i] = r
		if onDone == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		onDone(r)
	}

	for i, ch := range chapters {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return results, err
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			result, err := s.Process(ctx, ch.Text, ch.ID, mode)
			done(i, BatchResult{ChapterID: ch.ID, Result: result, Err: err})
		}); err != nil {
			wg.Done()
			done(i, BatchResult{ChapterID: ch.ID, Err: fmt.Errorf("failed to submit chapter: %w", err)})
		}
	}
	wg.Wait()
	return results, ctx.Err()
}
