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

// Package levenshtein provides automata matching inputs within a
// bounded edit distance of a fixed pattern: a boolean acceptor and a
// weighted acceptor that ranks matches by accumulated edit cost.  Both
// implement the wnfa.WNFA contract and are driven through the beam
// determinizer.
package levenshtein

import (
	"fmt"

	"github.com/couchbaselabs/wnfa"
)

// ErrNegativeDistance is returned when an acceptor is constructed with
// a negative edit budget.
var ErrNegativeDistance = fmt.Errorf("edit distance must be non-negative")

// State identifies one configuration of a Levenshtein acceptor.  Row is
// the length of the pattern prefix matched so far, Budget the number of
// edit operations still available.  Budget is monotonically
// non-increasing along any path and never negative, so the reachable
// state space is bounded by |pattern| x (budget+1).
type State struct {
	Row    int
	Budget int
}

// Levenshtein is a WNFA over the boolean semiring accepting any input
// within maxDistance edits of the pattern.  Because its state space is
// bounded it stays exact and terminating even under an unbounded beam.
// Edit distance is computed on code points, not raw bytes.
type Levenshtein struct {
	pattern []rune
	maxDist int
}

// New creates a boolean Levenshtein acceptor for the pattern and
// maximum edit distance.
func New(pattern string, maxDistance int) (*Levenshtein, error) {
	if maxDistance < 0 {
		return nil, ErrNegativeDistance
	}
	return &Levenshtein{
		pattern: []rune(pattern),
		maxDist: maxDistance,
	}, nil
}

// InitialStates returns the single start state with the full budget.
func (l *Levenshtein) InitialStates() []wnfa.Arc[State, bool] {
	return []wnfa.Arc[State, bool]{
		{State: State{Row: 0, Budget: l.maxDist}, Weight: true},
	}
}

// Step returns the states reachable by consuming r: a match when the
// next pattern rune equals r, a substitution and an insertion when
// budget remains.  Deletion does not consume input and is handled by
// EpsilonClosure.
func (l *Levenshtein) Step(s State, r rune) []wnfa.Arc[State, bool] {
	rv := make([]wnfa.Arc[State, bool], 0, 3)
	if s.Row < len(l.pattern) && l.pattern[s.Row] == r {
		rv = append(rv, wnfa.Arc[State, bool]{
			State:  State{Row: s.Row + 1, Budget: s.Budget},
			Weight: true,
		})
	}
	if s.Budget > 0 {
		if s.Row < len(l.pattern) {
			// substitution
			rv = append(rv, wnfa.Arc[State, bool]{
				State:  State{Row: s.Row + 1, Budget: s.Budget - 1},
				Weight: true,
			})
		}
		// insertion
		rv = append(rv, wnfa.Arc[State, bool]{
			State:  State{Row: s.Row, Budget: s.Budget - 1},
			Weight: true,
		})
	}
	return rv
}

// EpsilonClosure expands deletions: each skips one pattern rune without
// consuming input.  The budget bound makes the closure finite, so the
// error result is always nil here.
func (l *Levenshtein) EpsilonClosure(set []wnfa.Arc[State, bool]) ([]wnfa.Arc[State, bool], error) {
	return wnfa.CloseEpsilon[State, bool](wnfa.BoolSemiring{}, set, l.deletions)
}

func (l *Levenshtein) deletions(s State) []wnfa.Arc[State, bool] {
	if s.Row < len(l.pattern) && s.Budget > 0 {
		return []wnfa.Arc[State, bool]{
			{State: State{Row: s.Row + 1, Budget: s.Budget - 1}, Weight: true},
		}
	}
	return nil
}

// FinalWeight reports acceptance: the whole pattern has been matched,
// under any surviving budget.
func (l *Levenshtein) FinalWeight(s State) bool {
	return s.Row == len(l.pattern)
}

// Matcher drives a boolean acceptor through an unbounded-beam
// determinizer, giving a one-call membership test.  A Matcher is
// immutable and safe for concurrent use.
type Matcher struct {
	det *wnfa.Determinizer[State, rune, bool]
}

// NewMatcher creates a Matcher for the pattern and maximum edit
// distance.
func NewMatcher(pattern string, maxDistance int) (*Matcher, error) {
	lev, err := New(pattern, maxDistance)
	if err != nil {
		return nil, err
	}
	det, err := wnfa.NewDeterminizer[State, rune, bool](lev,
		wnfa.BoolSemiring{}, wnfa.UnboundedBeam[bool]())
	if err != nil {
		return nil, err
	}
	return &Matcher{det: det}, nil
}

// Match reports whether the input is within the configured edit
// distance of the pattern.
func (m *Matcher) Match(input string) (bool, error) {
	set, err := m.det.Eval([]rune(input))
	if err != nil {
		return false, err
	}
	return m.det.IsMatch(set), nil
}

// Determinizer exposes the underlying determinizer for callers driving
// the automaton symbol by symbol.
func (m *Matcher) Determinizer() *wnfa.Determinizer[State, rune, bool] {
	return m.det
}
