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

// Package wnfa provides weighted nondeterministic finite automata for
// approximate string matching, along with a beam-search determinizer
// that turns any such automaton into an online DFA-like view with
// bounded per-symbol cost.
package wnfa

import (
	"fmt"

	"github.com/willf/bitset"
)

// EpsilonIterationLimit is the maximum number of worklist iterations
// allowed while computing an epsilon closure.
const EpsilonIterationLimit = 10000

// ErrDivergentAutomaton is returned when an epsilon closure fails to
// converge, which indicates an epsilon cycle whose accumulated weight
// keeps improving.
var ErrDivergentAutomaton = fmt.Errorf("epsilon closure did not converge within %d iterations", EpsilonIterationLimit)

// Arc pairs a destination state with the weight of the path reaching it.
type Arc[S comparable, W any] struct {
	State  S
	Weight W
}

// WNFA is the general contract of a weighted nondeterministic finite
// automaton.  S is the family-defined state payload, A the input symbol
// type, W the semiring weight.  Multiple destinations per (state, symbol)
// are expected; nondeterminism is resolved by the determinizer, never by
// the family.  Instances must be immutable after construction so that
// concurrent runs can share them without coordination.
type WNFA[S comparable, A comparable, W any] interface {

	// InitialStates returns the start states and their entry weights.
	InitialStates() []Arc[S, W]

	// EpsilonClosure returns every state reachable from the given set
	// via zero-input transitions, weight-extended and merged.  It must
	// terminate; families with improving epsilon cycles return
	// ErrDivergentAutomaton.
	EpsilonClosure(set []Arc[S, W]) ([]Arc[S, W], error)

	// Step returns the states reachable from state by consuming exactly
	// one symbol, each with that transition's incremental weight.
	Step(state S, sym A) []Arc[S, W]

	// FinalWeight returns the acceptance weight of the state, or the
	// semiring Zero if the state is non-accepting.
	FinalWeight(state S) W
}

// CloseEpsilon computes a bounded epsilon closure over the given set
// using eps to enumerate the zero-input arcs leaving a single state.
// Entries landing on the same state are merged via Combine, and a state
// is revisited only while its recorded weight strictly improves, so the
// closure terminates for any automaton whose epsilon cycles carry the
// semiring One.  The order of the input set is preserved and newly
// discovered states are appended, keeping first-inserted-wins tie-breaks
// stable.  Families may use this directly to satisfy the EpsilonClosure
// contract.
func CloseEpsilon[S comparable, W any](sr Semiring[W], set []Arc[S, W],
	eps func(S) []Arc[S, W]) ([]Arc[S, W], error) {
	idx := NewIndex[S]()
	out := make([]Arc[S, W], 0, len(set))
	pos := make([]int, 0, len(set))
	var queue []uint
	queued := bitset.New(uint(len(set)))

	add := func(arc Arc[S, W]) {
		id := idx.ID(arc.State)
		if int(id) == len(pos) {
			pos = append(pos, len(out))
			out = append(out, arc)
			queue = append(queue, id)
			queued.Set(id)
			return
		}
		p := pos[id]
		merged := sr.Combine(out[p].Weight, arc.Weight)
		if sr.Better(merged, out[p].Weight) {
			out[p].Weight = merged
			if !queued.Test(id) {
				queue = append(queue, id)
				queued.Set(id)
			}
		}
	}

	for _, arc := range set {
		if sr.IsZero(arc.Weight) {
			continue
		}
		add(arc)
	}

	iterations := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		queued.Clear(id)

		iterations++
		if iterations > EpsilonIterationLimit {
			return nil, ErrDivergentAutomaton
		}

		from := out[pos[id]]
		for _, arc := range eps(from.State) {
			w := sr.Extend(from.Weight, arc.Weight)
			if sr.IsZero(w) {
				continue
			}
			add(Arc[S, W]{State: arc.State, Weight: w})
		}
	}

	return out, nil
}
