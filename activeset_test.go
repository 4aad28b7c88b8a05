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
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSet(sr Semiring[float64], arcs []Arc[int, float64]) *ActiveSet[int, float64] {
	rv := newActiveSet[int, float64](len(arcs))
	for _, arc := range arcs {
		rv.insert(sr, arc)
	}
	return rv
}

func TestActiveSetInsertMerges(t *testing.T) {
	sr := TropicalSemiring{}
	set := buildSet(sr, []Arc[int, float64]{
		{State: 1, Weight: 3},
		{State: 2, Weight: 1},
		{State: 1, Weight: 2},
	})

	require.Equal(t, 2, set.Len(), "duplicates must merge")
	w, ok := set.Weight(1)
	require.True(t, ok)
	require.Equal(t, 2.0, w, "merge must keep the better weight")

	// position of first insertion is kept
	require.Equal(t, 1, set.Entries()[0].State)
}

func TestPruneWidth(t *testing.T) {
	sr := TropicalSemiring{}
	set := buildSet(sr, []Arc[int, float64]{
		{State: 1, Weight: 5},
		{State: 2, Weight: 1},
		{State: 3, Weight: 3},
	})
	set.prune(sr, BeamConfig[float64]{Width: 2})

	require.Equal(t, 2, set.Len())
	require.Equal(t, Arc[int, float64]{State: 2, Weight: 1}, set.Entries()[0],
		"best entry must survive pruning")
	require.Equal(t, Arc[int, float64]{State: 3, Weight: 3}, set.Entries()[1])
	_, ok := set.Weight(1)
	require.False(t, ok, "pruned entries must leave the index")
}

func TestPruneThreshold(t *testing.T) {
	sr := TropicalSemiring{}
	set := buildSet(sr, []Arc[int, float64]{
		{State: 1, Weight: 1},
		{State: 2, Weight: 2},
		{State: 3, Weight: 4},
	})
	set.prune(sr, NewBeamConfig(UnboundedWidth, 2.0))

	require.Equal(t, 2, set.Len(), "entries beyond best+threshold must drop")
	require.Equal(t, 1, set.Entries()[0].State)
	require.Equal(t, 2, set.Entries()[1].State)
}

func TestPruneTieBreakFirstInsertedWins(t *testing.T) {
	sr := TropicalSemiring{}
	set := buildSet(sr, []Arc[int, float64]{
		{State: 7, Weight: 1},
		{State: 8, Weight: 1},
		{State: 9, Weight: 1},
	})
	set.prune(sr, BeamConfig[float64]{Width: 2})

	require.Equal(t, 2, set.Len())
	require.Equal(t, 7, set.Entries()[0].State)
	require.Equal(t, 8, set.Entries()[1].State)
}

func TestPruneIdempotent(t *testing.T) {
	sr := TropicalSemiring{}
	cfg := NewBeamConfig(3, 5.0)
	set := buildSet(sr, []Arc[int, float64]{
		{State: 1, Weight: 9},
		{State: 2, Weight: 0},
		{State: 3, Weight: 2},
		{State: 4, Weight: 2},
		{State: 5, Weight: 7},
	})
	set.prune(sr, cfg)

	once := append([]Arc[int, float64](nil), set.Entries()...)
	set.prune(sr, cfg)
	require.Equal(t, once, set.Entries(),
		"pruning an already-pruned set must be a no-op")
}
