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

package wnfa_test

import (
	"testing"

	"github.com/couchbaselabs/wnfa"
	"github.com/stretchr/testify/require"
)

// errorModel is a toy stand-in for an externally built error-model
// transducer: a plain arc table satisfying the WNFA contract over the
// same state/weight types as the core, consumed opaquely by the
// determinizer.
type errorModel struct {
	sr       wnfa.Semiring[float64]
	initial  []wnfa.Arc[string, float64]
	finals   map[string]float64
	arcs     map[string]map[rune][]wnfa.Arc[string, float64]
	epsilons map[string][]wnfa.Arc[string, float64]
}

func (m *errorModel) InitialStates() []wnfa.Arc[string, float64] {
	return m.initial
}

func (m *errorModel) EpsilonClosure(set []wnfa.Arc[string, float64]) ([]wnfa.Arc[string, float64], error) {
	return wnfa.CloseEpsilon[string, float64](m.sr, set, func(s string) []wnfa.Arc[string, float64] {
		return m.epsilons[s]
	})
}

func (m *errorModel) Step(s string, r rune) []wnfa.Arc[string, float64] {
	return m.arcs[s][r]
}

func (m *errorModel) FinalWeight(s string) float64 {
	if w, ok := m.finals[s]; ok {
		return w
	}
	return m.sr.Zero()
}

func TestErrorModelAutomaton(t *testing.T) {
	sr := wnfa.TropicalSemiring{}
	model := &errorModel{
		sr:      sr,
		initial: []wnfa.Arc[string, float64]{{State: "q0", Weight: 0}},
		finals: map[string]float64{
			"q2": 0,
			"q3": 0,
		},
		arcs: map[string]map[rune][]wnfa.Arc[string, float64]{
			"q0": {
				'a': {
					{State: "q1", Weight: 0},
					{State: "q2", Weight: 1},
				},
			},
		},
		epsilons: map[string][]wnfa.Arc[string, float64]{
			"q1": {{State: "q3", Weight: 0.5}},
		},
	}

	det, err := wnfa.NewDeterminizer[string, rune, float64](model, sr, wnfa.UnboundedBeam[float64]())
	require.NoError(t, err)

	set, err := det.Eval([]rune("a"))
	require.NoError(t, err)

	require.Equal(t, 3, set.Len())
	w, ok := set.Weight("q3")
	require.True(t, ok, "epsilon closure must reach q3")
	require.Equal(t, 0.5, w, "epsilon weight must extend the path weight")

	require.True(t, det.IsMatch(set))
	best, ok := det.BestWeight(set)
	require.True(t, ok)
	require.Equal(t, 0.5, best)
}

func TestErrorModelEpsilonChainAccumulates(t *testing.T) {
	sr := wnfa.TropicalSemiring{}
	model := &errorModel{
		sr:      sr,
		initial: []wnfa.Arc[string, float64]{{State: "a", Weight: 0}},
		finals:  map[string]float64{"c": 0},
		epsilons: map[string][]wnfa.Arc[string, float64]{
			"a": {{State: "b", Weight: 1}},
			"b": {{State: "c", Weight: 2}},
		},
	}

	det, err := wnfa.NewDeterminizer[string, rune, float64](model, sr, wnfa.UnboundedBeam[float64]())
	require.NoError(t, err)

	set, err := det.Start()
	require.NoError(t, err)
	w, ok := set.Weight("c")
	require.True(t, ok)
	require.Equal(t, 3.0, w, "chained epsilon weights must accumulate")
}

func TestErrorModelEpsilonCycleAtOne(t *testing.T) {
	sr := wnfa.TropicalSemiring{}
	model := &errorModel{
		sr:      sr,
		initial: []wnfa.Arc[string, float64]{{State: "x", Weight: 0}},
		finals:  map[string]float64{"y": 0},
		epsilons: map[string][]wnfa.Arc[string, float64]{
			"x": {{State: "y", Weight: 0}},
			"y": {{State: "x", Weight: 0}},
		},
	}

	det, err := wnfa.NewDeterminizer[string, rune, float64](model, sr, wnfa.UnboundedBeam[float64]())
	require.NoError(t, err)

	set, err := det.Start()
	require.NoError(t, err, "epsilon cycles at the free weight must terminate")
	require.Equal(t, 2, set.Len())
}

func TestErrorModelDivergent(t *testing.T) {
	sr := wnfa.TropicalSemiring{}
	model := &errorModel{
		sr:      sr,
		initial: []wnfa.Arc[string, float64]{{State: "x", Weight: 0}},
		finals:  map[string]float64{},
		epsilons: map[string][]wnfa.Arc[string, float64]{
			"x": {{State: "y", Weight: -1}},
			"y": {{State: "x", Weight: -1}},
		},
	}

	det, err := wnfa.NewDeterminizer[string, rune, float64](model, sr, wnfa.UnboundedBeam[float64]())
	require.NoError(t, err)

	_, err = det.Start()
	require.ErrorIs(t, err, wnfa.ErrDivergentAutomaton,
		"an improving epsilon cycle must fail, not loop")
}
