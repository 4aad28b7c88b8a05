//  Copyright (c) 2019 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wnfa

import (
	"fmt"
	"math"
)

// UnboundedWidth disables the beam width limit.
const UnboundedWidth = math.MaxInt

// ErrInvalidBeamWidth is returned when a determinizer is constructed
// with a non-positive beam width.
var ErrInvalidBeamWidth = fmt.Errorf("beam width must be positive")

// BeamConfig bounds the ActiveSet after every transition.  Width caps
// the number of surviving entries; Threshold, when non-nil, drops any
// entry whose weight is worse than the best entry by more than the
// threshold (applied via the semiring Extend).  Both limits apply
// simultaneously.
type BeamConfig[W any] struct {
	Width     int
	Threshold *W
}

// NewBeamConfig returns a config bounded by both width and threshold.
func NewBeamConfig[W any](width int, threshold W) BeamConfig[W] {
	return BeamConfig[W]{
		Width:     width,
		Threshold: &threshold,
	}
}

// UnboundedBeam returns a config with no width or threshold limit.
// Only families with a bounded reachable state space, such as the
// Levenshtein acceptors, remain exact and terminating under it.
func UnboundedBeam[W any]() BeamConfig[W] {
	return BeamConfig[W]{Width: UnboundedWidth}
}

// Determinizer converts a WNFA into an online, bounded-cost DFA-like
// view.  It is a pure value: stepping never mutates the determinizer or
// any ActiveSet it has returned, so concurrent runs sharing one
// determinizer need no locking.  Per-step cost is bounded by the beam
// width times the average branching factor, independent of the total
// underlying state count.
type Determinizer[S comparable, A comparable, W any] struct {
	nfa WNFA[S, A, W]
	sr  Semiring[W]
	cfg BeamConfig[W]
}

// NewDeterminizer wraps the automaton with the given semiring and beam
// configuration.  A non-positive width is a construction error, never
// silently coerced.
func NewDeterminizer[S comparable, A comparable, W any](nfa WNFA[S, A, W],
	sr Semiring[W], cfg BeamConfig[W]) (*Determinizer[S, A, W], error) {
	if cfg.Width <= 0 {
		return nil, ErrInvalidBeamWidth
	}
	return &Determinizer[S, A, W]{
		nfa: nfa,
		sr:  sr,
		cfg: cfg,
	}, nil
}

// Start returns the initial ActiveSet: the pruned epsilon closure of
// the automaton's initial states.
func (d *Determinizer[S, A, W]) Start() (*ActiveSet[S, W], error) {
	return d.close(d.nfa.InitialStates())
}

// Accept returns the ActiveSet resulting from consuming sym in the
// given set.  The input set is left untouched.  An empty result is a
// valid rejecting terminal: stepping it again stays empty.
func (d *Determinizer[S, A, W]) Accept(set *ActiveSet[S, W], sym A) (*ActiveSet[S, W], error) {
	merged := newActiveSet[S, W](set.Len())
	for _, e := range set.entries {
		for _, arc := range d.nfa.Step(e.State, sym) {
			w := d.sr.Extend(e.Weight, arc.Weight)
			if d.sr.IsZero(w) {
				continue
			}
			merged.insert(d.sr, Arc[S, W]{State: arc.State, Weight: w})
		}
	}
	return d.close(merged.entries)
}

// Eval drives the determinizer over the full symbol sequence from
// Start, returning the terminal ActiveSet.
func (d *Determinizer[S, A, W]) Eval(syms []A) (*ActiveSet[S, W], error) {
	set, err := d.Start()
	if err != nil {
		return nil, err
	}
	for _, sym := range syms {
		set, err = d.Accept(set, sym)
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

// IsMatch returns true if and only if some entry has a non-Zero final
// weight.
func (d *Determinizer[S, A, W]) IsMatch(set *ActiveSet[S, W]) bool {
	for _, e := range set.entries {
		if !d.sr.IsZero(d.nfa.FinalWeight(e.State)) {
			return true
		}
	}
	return false
}

// BestWeight returns the Combine over Extend(weight, FinalWeight) of
// every entry: the weight of the best complete match for the current
// prefix.  The second return is false when no entry accepts.
func (d *Determinizer[S, A, W]) BestWeight(set *ActiveSet[S, W]) (W, bool) {
	total := d.sr.Zero()
	for _, e := range set.entries {
		total = d.sr.Combine(total, d.sr.Extend(e.Weight, d.nfa.FinalWeight(e.State)))
	}
	return total, !d.sr.IsZero(total)
}

// close epsilon-expands the given entries, drops Zero weights, rebuilds
// the dedup map and prunes to the beam configuration.
func (d *Determinizer[S, A, W]) close(entries []Arc[S, W]) (*ActiveSet[S, W], error) {
	closed, err := d.nfa.EpsilonClosure(entries)
	if err != nil {
		return nil, err
	}
	rv := newActiveSet[S, W](len(closed))
	for _, arc := range closed {
		if d.sr.IsZero(arc.Weight) {
			continue
		}
		rv.insert(d.sr, arc)
	}
	rv.prune(d.sr, d.cfg)
	return rv, nil
}
