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

// Package ensemble reconciles the outputs of several engines by weighted
// consensus voting.
package ensemble

import (
	"cmp"
	"slices"
	"strings"

	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/registry"
)

const (
	// KeyPrefixRunes is how much normalized content identifies a description.
	KeyPrefixRunes = 100

	// DefaultVotingThreshold is the consensus a group needs to survive.
	DefaultVotingThreshold = 0.6

	// DefaultAgreementOverride keeps groups agreed on by this many engines.
	DefaultAgreementOverride = 2

	// priorityBoost scales the priority of surviving groups by consensus.
	priorityBoost = 0.5

	highQuality   = 0.8
	mediumQuality = 0.6
)

// Voter groups descriptions surfaced by several engines and keeps the
// groups enough engines agree on.
type Voter struct {
	threshold         float64
	agreementOverride int
}

// NewVoter creates a Voter. Out-of-range arguments fall back to defaults.
func NewVoter(threshold float64, agreementOverride int) *Voter {
	if threshold < 0 || threshold > 1 {
		threshold = DefaultVotingThreshold
	}
	if agreementOverride < 1 {
		agreementOverride = DefaultAgreementOverride
	}
	return &Voter{threshold: threshold, agreementOverride: agreementOverride}
}

// Key identifies "the same" description across engines: the first
// KeyPrefixRunes runes of its lower-cased, whitespace-collapsed content
// and its type.
type Key struct {
	Prefix string
	Type   core.DescriptionType
}

// KeyOf returns the grouping key of a description.
func KeyOf(d *core.RawDescription) Key {
	norm := strings.Join(strings.Fields(strings.ToLower(d.Content)), " ")
	if r := []rune(norm); len(r) > KeyPrefixRunes {
		norm = string(r[:KeyPrefixRunes])
	}
	return Key{Prefix: norm, Type: d.Type}
}

type member struct {
	desc     *core.RawDescription
	order    int // registration order of the engine
	weighted float64
}

type group struct {
	key       Key
	members   []member
	engines   []bool // indexed by registration order
	consensus float64
	agreeing  int
}

// representative returns the highest weighted member; ties go to the engine
// registered first, then the earlier position.
func (g *group) representative() member {
	best := g.members[0]
	for _, m := range g.members[1:] {
		switch {
		case m.weighted > best.weighted:
			best = m
		case m.weighted == best.weighted && m.order < best.order:
			best = m
		case m.weighted == best.weighted && m.order == best.order && m.desc.Position < best.desc.Position:
			best = m
		}
	}
	return best
}

// Vote merges the outcomes and keeps groups whose consensus reaches the
// threshold or that enough engines agreed on. Survivors are priority
// boosted by their consensus.
func (v *Voter) Vote(outcomes []core.EngineOutcome, entries []registry.Entry) []core.RawDescription {
	groups := build(outcomes, entries)
	kept := groups[:0]
	for _, g := range groups {
		if g.consensus >= v.threshold || g.agreeing >= v.agreementOverride {
			kept = append(kept, g)
		}
	}
	return emit(kept, entries, true)
}

// Merge groups the outcomes like Vote but keeps every group and leaves
// priorities unchanged.
func Merge(outcomes []core.EngineOutcome, entries []registry.Entry) []core.RawDescription {
	return emit(build(outcomes, entries), entries, false)
}

// build groups the descriptions of successful outcomes. Groups are returned
// in first-seen order, walking outcomes in registration order.
func build(outcomes []core.EngineOutcome, entries []registry.Entry) []*group {
	order := make(map[string]int, len(entries))
	for i, e := range entries {
		order[e.Name] = i
	}

	// Outcomes of unknown engines are ignored; they have no weight. A failed
	// engine still ran: it counts in the denominator with an empty list.
	byOrder := make([]*core.EngineOutcome, len(entries))
	var total float64
	for i := range outcomes {
		o := &outcomes[i]
		idx, ok := order[o.Engine]
		if !ok || byOrder[idx] != nil {
			continue
		}
		byOrder[idx] = o
		total += entries[idx].Weight()
	}

	index := make(map[Key]*group)
	var groups []*group
	for i, o := range byOrder {
		if o == nil || o.Failed() {
			continue
		}
		weight := entries[i].Weight()
		for j := range o.Descriptions {
			d := &o.Descriptions[j]
			k := KeyOf(d)
			g, ok := index[k]
			if !ok {
				g = &group{key: k, engines: make([]bool, len(entries))}
				index[k] = g
				groups = append(groups, g)
			}
			g.members = append(g.members, member{desc: d, order: i, weighted: d.ConfidenceScore * weight})
			g.engines[i] = true
		}
	}

	for _, g := range groups {
		var agreeing float64
		for i, ok := range g.engines {
			if ok {
				agreeing += entries[i].Weight()
				g.agreeing++
			}
		}
		if total > 0 {
			g.consensus = agreeing / total
		}
	}
	return groups
}

type ranked struct {
	desc     core.RawDescription
	weighted float64
	order    int
}

func emit(groups []*group, entries []registry.Entry, boost bool) []core.RawDescription {
	out := make([]ranked, 0, len(groups))
	for _, g := range groups {
		rep := g.representative()
		d := *rep.desc
		d.ConsensusRatio = g.consensus
		d.QualityIndicator = Quality(g.consensus)
		d.ContributingEngines = make([]string, 0, g.agreeing)
		for i, ok := range g.engines {
			if ok {
				d.ContributingEngines = append(d.ContributingEngines, entries[i].Name)
			}
		}
		d.EntitiesMentioned = unionEntities(rep.desc, g.members)
		if boost {
			d.PriorityScore *= 1 + priorityBoost*g.consensus
		}
		out = append(out, ranked{desc: d, weighted: rep.weighted, order: rep.order})
	}

	slices.SortStableFunc(out, func(a, b ranked) int {
		if c := cmp.Compare(b.weighted, a.weighted); c != 0 {
			return c
		}
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		return cmp.Compare(a.desc.Position, b.desc.Position)
	})

	descs := make([]core.RawDescription, len(out))
	for i, r := range out {
		descs[i] = r.desc
	}
	return descs
}

// unionEntities returns the entities of the representative followed by
// those only other members saw.
func unionEntities(rep *core.RawDescription, members []member) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(names []string) {
		for _, n := range names {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}
	add(rep.EntitiesMentioned)
	for _, m := range members {
		add(m.desc.EntitiesMentioned)
	}
	return out
}

// Quality maps a consensus ratio to a coarse quality indicator.
func Quality(consensus float64) core.QualityLevel {
	switch {
	case consensus >= highQuality:
		return core.QualityHigh
	case consensus >= mediumQuality:
		return core.QualityMedium
	default:
		return core.QualityLow
	}
}
