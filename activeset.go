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

import "sort"

// ActiveSet maps automaton states to the best weight reaching them
// along the current input prefix.  It holds at most one entry per state
// (duplicates merged via the semiring Combine), never holds a Zero
// entry, and preserves insertion order so that equal-weight ties break
// in favor of the first-inserted entry.  ActiveSets are value objects:
// the determinizer creates a fresh one per step and never mutates one
// it has handed out.
type ActiveSet[S comparable, W any] struct {
	entries []Arc[S, W]
	pos     map[S]int
}

func newActiveSet[S comparable, W any](capacity int) *ActiveSet[S, W] {
	return &ActiveSet[S, W]{
		entries: make([]Arc[S, W], 0, capacity),
		pos:     make(map[S]int, capacity),
	}
}

// Len returns the number of entries.  Zero is a valid terminal
// rejecting result, never an error.
func (a *ActiveSet[S, W]) Len() int {
	return len(a.entries)
}

// Entries returns the entries in ranked order.  The returned slice is
// owned by the ActiveSet and must not be modified.
func (a *ActiveSet[S, W]) Entries() []Arc[S, W] {
	return a.entries
}

// Weight returns the best weight recorded for the state, if present.
func (a *ActiveSet[S, W]) Weight(s S) (W, bool) {
	if p, ok := a.pos[s]; ok {
		return a.entries[p].Weight, true
	}
	var zero W
	return zero, false
}

// insert adds an arc, merging via Combine when the state is already
// present.  The position of the first insertion is kept.
func (a *ActiveSet[S, W]) insert(sr Semiring[W], arc Arc[S, W]) {
	if p, ok := a.pos[arc.State]; ok {
		a.entries[p].Weight = sr.Combine(a.entries[p].Weight, arc.Weight)
		return
	}
	a.pos[arc.State] = len(a.entries)
	a.entries = append(a.entries, arc)
}

// prune orders the entries best-first, keeps at most cfg.Width of them,
// and drops any entry worse than the best by more than cfg.Threshold.
// The sort is stable, so equal-weight entries keep their insertion
// order.  Pruning an already-pruned set under the same configuration is
// a no-op, and the best-weighted entry is never discarded.
func (a *ActiveSet[S, W]) prune(sr Semiring[W], cfg BeamConfig[W]) {
	if len(a.entries) == 0 {
		return
	}

	sort.SliceStable(a.entries, func(i, j int) bool {
		return sr.Better(a.entries[i].Weight, a.entries[j].Weight)
	})

	keep := len(a.entries)
	if cfg.Width < keep {
		keep = cfg.Width
	}

	if cfg.Threshold != nil {
		limit := sr.Extend(a.entries[0].Weight, *cfg.Threshold)
		for keep > 1 && sr.Better(limit, a.entries[keep-1].Weight) {
			keep--
		}
	}

	a.entries = a.entries[:keep]
	for s := range a.pos {
		delete(a.pos, s)
	}
	for i, e := range a.entries {
		a.pos[e.State] = i
	}
}
