package boundary

import (
	"math"

	"github.com/poiesic/scenic/lexicon"
	"github.com/poiesic/scenic/segment"
)

const (
	connectiveWeight   = 0.4
	typeMatchWeight    = 0.2
	typePartialWeight  = 0.1
	sharedVisualWeight = 0.2
	sharedVisualNorm   = 3.0
	pronounWeight      = 0.2

	startWeight         = 0.3
	endSignalWeight     = 0.3
	capitalWeight       = 0.1
	terminalWeight      = 0.1
	solidInteriorWeight = 0.2
)

// pairCoherence scores how strongly next continues the run ending in prev.
// visual holds the visual words seen so far in the run.
func (d *Detector) pairCoherence(prev, next segment.Paragraph, visual map[string]struct{}) float64 {
	score := 0.0
	if d.lex.StartsWithContinuation(next.Text) {
		score += connectiveWeight
	}

	switch {
	case prev.Type == next.Type:
		score += typeMatchWeight
	case prev.IsDescriptive() && next.IsDescriptive():
		score += typePartialWeight
	}

	shared := 0
	for _, w := range next.VisualWords {
		if _, ok := visual[w]; ok {
			shared++
		}
	}
	score += sharedVisualWeight * math.Min(1, float64(shared)/sharedVisualNorm)

	if d.lex.StartsWithPronoun(next.Text) {
		score += pronounWeight
	}
	return score
}

// boundaryConfidence scores the cut points of a run. after is the paragraph
// following the run, nil at end of text.
func (d *Detector) boundaryConfidence(run []segment.Paragraph, after *segment.Paragraph) float64 {
	first, last := run[0], run[len(run)-1]
	score := startWeight * first.Descriptiveness

	if after == nil || after.Type != last.Type || d.lex.ContainsStopSignal(after.Text) {
		score += endSignalWeight
	}
	if lexicon.StartsCapitalized(first.Text) {
		score += capitalWeight
	}
	if lexicon.EndsWithTerminal(last.Text) {
		score += terminalWeight
	}

	solid := true
	for k := 1; k < len(run)-1; k++ {
		if run[k].Descriptiveness < d.cfg.WeakInterior {
			solid = false
			break
		}
	}
	if solid {
		score += solidInteriorWeight
	}
	return math.Min(1, score)
}
