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
	"container/heap"
	"fmt"
)

// ErrIteratorDone is returned by Next when the iterator has no further
// completions, and by Completions when the set has none at all.
var ErrIteratorDone = fmt.Errorf("iterator is done")

// Completions enumerates the accepting entries of an ActiveSet in
// ranked order, best first.  Each additional rank costs proportional
// extra work, so callers wanting only the top result may stop after the
// first.  Iterators should be constructed with the Completions method
// on the parent Determinizer.
type Completions[S comparable, W any] struct {
	sr    Semiring[W]
	items completionHeap[S, W]
	curr  Arc[S, W]
}

// Completions returns an iterator over the accepting entries of the
// set, each weighted by Extend(weight, FinalWeight), positioned on the
// best completion.  If no entry accepts, ErrIteratorDone is returned.
func (d *Determinizer[S, A, W]) Completions(set *ActiveSet[S, W]) (*Completions[S, W], error) {
	rv := &Completions[S, W]{
		sr: d.sr,
		items: completionHeap[S, W]{
			sr: d.sr,
		},
	}
	for i, e := range set.entries {
		w := d.sr.Extend(e.Weight, d.nfa.FinalWeight(e.State))
		if d.sr.IsZero(w) {
			continue
		}
		rv.items.arcs = append(rv.items.arcs, Arc[S, W]{State: e.State, Weight: w})
		rv.items.seq = append(rv.items.seq, i)
	}
	heap.Init(&rv.items)

	err := rv.Next()
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// Current returns the state and weight currently pointed to by the
// iterator.
func (c *Completions[S, W]) Current() (S, W) {
	return c.curr.State, c.curr.Weight
}

// Next advances this iterator to the next-best completion.  If there is
// none, ErrIteratorDone is returned.
func (c *Completions[S, W]) Next() error {
	if c.items.Len() == 0 {
		return ErrIteratorDone
	}
	c.curr = heap.Pop(&c.items).(Arc[S, W])
	return nil
}

// completionHeap is a min-heap on Better, with ties broken by the
// original ActiveSet position so enumeration order stays reproducible.
type completionHeap[S comparable, W any] struct {
	sr   Semiring[W]
	arcs []Arc[S, W]
	seq  []int
}

func (h *completionHeap[S, W]) Len() int { return len(h.arcs) }

func (h *completionHeap[S, W]) Less(i, j int) bool {
	if h.sr.Better(h.arcs[i].Weight, h.arcs[j].Weight) {
		return true
	}
	if h.sr.Better(h.arcs[j].Weight, h.arcs[i].Weight) {
		return false
	}
	return h.seq[i] < h.seq[j]
}

func (h *completionHeap[S, W]) Swap(i, j int) {
	h.arcs[i], h.arcs[j] = h.arcs[j], h.arcs[i]
	h.seq[i], h.seq[j] = h.seq[j], h.seq[i]
}

func (h *completionHeap[S, W]) Push(x interface{}) {
	arc := x.(Arc[S, W])
	h.arcs = append(h.arcs, arc)
	h.seq = append(h.seq, len(h.arcs)-1)
}

func (h *completionHeap[S, W]) Pop() interface{} {
	last := len(h.arcs) - 1
	arc := h.arcs[last]
	h.arcs = h.arcs[:last]
	h.seq = h.seq[:last]
	return arc
}
