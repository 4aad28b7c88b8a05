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

package levenshtein

import (
	"fmt"

	"github.com/couchbaselabs/wnfa"
)

// ErrInvalidCost is returned when a weighted acceptor is constructed
// with an operation cost ranking better than the semiring's free
// weight: a negative cost under the tropical semiring, or a positive
// log-likelihood under the log semiring.
var ErrInvalidCost = fmt.Errorf("operation costs must not outrank the free weight")

// Costs assigns a weight to each edit operation kind.  Under the
// tropical semiring these are added along a path and the cheapest path
// wins.
type Costs struct {
	Match        float64
	Substitution float64
	Insertion    float64
	Deletion     float64
}

// DefaultCosts returns the standard unit costs: matches are free, every
// edit costs one.
func DefaultCosts() Costs {
	return Costs{
		Match:        0,
		Substitution: 1,
		Insertion:    1,
		Deletion:     1,
	}
}

// WeightedLevenshtein is a WNFA ranking inputs by accumulated edit
// cost against the pattern.  It shares the (row, budget) state shape of
// the boolean acceptor; what distinguishes it is that each operation
// carries a configurable weight, so driving it through the determinizer
// yields the current best cost per input prefix and a ranked
// enumeration of completions.
type WeightedLevenshtein struct {
	pattern  []rune
	maxEdits int
	costs    Costs
	sr       wnfa.Semiring[float64]
}

// NewWeighted creates a weighted acceptor over the tropical semiring
// (lowest total cost ranks first).
func NewWeighted(pattern string, maxEdits int, costs Costs) (*WeightedLevenshtein, error) {
	return NewWeightedWithSemiring(pattern, maxEdits, costs, wnfa.TropicalSemiring{})
}

// NewWeightedWithSemiring creates a weighted acceptor over the given
// semiring.  Pass wnfa.LogSemiring with per-operation log-likelihoods
// for probability ranking.
func NewWeightedWithSemiring(pattern string, maxEdits int, costs Costs,
	sr wnfa.Semiring[float64]) (*WeightedLevenshtein, error) {
	if maxEdits < 0 {
		return nil, ErrNegativeDistance
	}
	for _, c := range []float64{costs.Match, costs.Substitution, costs.Insertion, costs.Deletion} {
		if sr.Better(c, sr.One()) {
			return nil, ErrInvalidCost
		}
	}
	return &WeightedLevenshtein{
		pattern:  []rune(pattern),
		maxEdits: maxEdits,
		costs:    costs,
		sr:       sr,
	}, nil
}

// Semiring returns the semiring the acceptor's weights live in, for
// constructing a matching determinizer.
func (l *WeightedLevenshtein) Semiring() wnfa.Semiring[float64] {
	return l.sr
}

// InitialStates returns the single start state with the full budget at
// the free weight.
func (l *WeightedLevenshtein) InitialStates() []wnfa.Arc[State, float64] {
	return []wnfa.Arc[State, float64]{
		{State: State{Row: 0, Budget: l.maxEdits}, Weight: l.sr.One()},
	}
}

// Step returns the one-symbol transitions with their incremental costs.
func (l *WeightedLevenshtein) Step(s State, r rune) []wnfa.Arc[State, float64] {
	rv := make([]wnfa.Arc[State, float64], 0, 3)
	if s.Row < len(l.pattern) && l.pattern[s.Row] == r {
		rv = append(rv, wnfa.Arc[State, float64]{
			State:  State{Row: s.Row + 1, Budget: s.Budget},
			Weight: l.costs.Match,
		})
	}
	if s.Budget > 0 {
		if s.Row < len(l.pattern) {
			rv = append(rv, wnfa.Arc[State, float64]{
				State:  State{Row: s.Row + 1, Budget: s.Budget - 1},
				Weight: l.costs.Substitution,
			})
		}
		rv = append(rv, wnfa.Arc[State, float64]{
			State:  State{Row: s.Row, Budget: s.Budget - 1},
			Weight: l.costs.Insertion,
		})
	}
	return rv
}

// EpsilonClosure expands deletions, charging the deletion cost for each
// pattern rune skipped.
func (l *WeightedLevenshtein) EpsilonClosure(set []wnfa.Arc[State, float64]) ([]wnfa.Arc[State, float64], error) {
	return wnfa.CloseEpsilon[State, float64](l.sr, set, l.deletions)
}

func (l *WeightedLevenshtein) deletions(s State) []wnfa.Arc[State, float64] {
	if s.Row < len(l.pattern) && s.Budget > 0 {
		return []wnfa.Arc[State, float64]{
			{State: State{Row: s.Row + 1, Budget: s.Budget - 1}, Weight: l.costs.Deletion},
		}
	}
	return nil
}

// FinalWeight returns the free weight when the whole pattern has been
// matched, the impossible weight otherwise.
func (l *WeightedLevenshtein) FinalWeight(s State) float64 {
	if s.Row == len(l.pattern) {
		return l.sr.One()
	}
	return l.sr.Zero()
}

// Scorer drives a weighted acceptor through a determinizer, giving a
// one-call best-cost query.  A Scorer is immutable and safe for
// concurrent use.
type Scorer struct {
	det *wnfa.Determinizer[State, rune, float64]
}

// NewScorer creates a Scorer for the pattern under the given costs and
// beam configuration.
func NewScorer(pattern string, maxEdits int, costs Costs,
	cfg wnfa.BeamConfig[float64]) (*Scorer, error) {
	lev, err := NewWeighted(pattern, maxEdits, costs)
	if err != nil {
		return nil, err
	}
	det, err := wnfa.NewDeterminizer[State, rune, float64](lev, lev.Semiring(), cfg)
	if err != nil {
		return nil, err
	}
	return &Scorer{det: det}, nil
}

// Score returns the best accumulated cost of matching the input against
// the pattern.  The second return is false when the input is not within
// the configured edit budget (or was pruned away by the beam).
func (s *Scorer) Score(input string) (float64, bool, error) {
	set, err := s.det.Eval([]rune(input))
	if err != nil {
		return 0, false, err
	}
	best, ok := s.det.BestWeight(set)
	if !ok {
		return 0, false, nil
	}
	return best, true, nil
}

// Determinizer exposes the underlying determinizer for callers driving
// the automaton symbol by symbol or enumerating ranked completions.
func (s *Scorer) Determinizer() *wnfa.Determinizer[State, rune, float64] {
	return s.det
}
