package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// progressTracker reports batch progress on a single rewritten line.
type progressTracker struct {
	writer         io.Writer
	total          int
	done           int
	failed         int
	descriptions   int
	reportInterval int
	lastReported   int
	startTime      time.Time
	started        bool
	mu             sync.Mutex
}

// newProgressTracker creates a tracker for total chapters reporting every
// reportInterval chapters.
func newProgressTracker(writer io.Writer, total, reportInterval int) *progressTracker {
	return &progressTracker{
		writer:         writer,
		total:          total,
		reportInterval: max(reportInterval, 1),
	}
}

func (p *progressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.done, p.failed, p.descriptions, p.lastReported = 0, 0, 0, 0
}

// Record counts one finished chapter.
func (p *progressTracker) Record(descriptions int, failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.done = min(p.done+1, p.total)
	p.descriptions += descriptions
	if failed {
		p.failed++
	}
	if p.done-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.done
	}
}

// Finish prints the final line.
func (p *progressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.report()
	fmt.Fprintln(p.writer)
}

func (p *progressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}
	return time.Since(p.startTime)
}

// report must be called with the lock held.
func (p *progressTracker) report() {
	rate := float64(p.done) / time.Since(p.startTime).Seconds()
	percentage := 0.0
	if p.total > 0 {
		percentage = float64(p.done) / float64(p.total) * 100.0
	}
	fmt.Fprintf(p.writer, "\rChapters: %d/%d (%.1f%%) - %.1f chapters/s - %d descriptions, %d failed",
		p.done, p.total, percentage, rate, p.descriptions, p.failed)
}
