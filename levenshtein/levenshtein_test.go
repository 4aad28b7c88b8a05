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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		desc     string
		pattern  string
		distance int
		input    string
		isMatch  bool
	}{
		{
			desc:     "kitten/2 - kitten",
			pattern:  "kitten",
			distance: 2,
			input:    "kitten",
			isMatch:  true,
		},
		{
			desc:     "kitten/2 - sitten",
			pattern:  "kitten",
			distance: 2,
			input:    "sitten",
			isMatch:  true,
		},
		{
			desc:     "kitten/2 - sittin",
			pattern:  "kitten",
			distance: 2,
			input:    "sittin",
			isMatch:  true,
		},
		{
			desc:     "kitten/2 - sittings",
			pattern:  "kitten",
			distance: 2,
			input:    "sittings",
			isMatch:  false,
		},
		{
			desc:     "cat/0 - cat",
			pattern:  "cat",
			distance: 0,
			input:    "cat",
			isMatch:  true,
		},
		{
			desc:     "cat/0 - cats",
			pattern:  "cat",
			distance: 0,
			input:    "cats",
			isMatch:  false,
		},
		{
			desc:     "cat/1 - ca (deletion)",
			pattern:  "cat",
			distance: 1,
			input:    "ca",
			isMatch:  true,
		},
		{
			desc:     "cat/1 - cats (insertion)",
			pattern:  "cat",
			distance: 1,
			input:    "cats",
			isMatch:  true,
		},
		{
			desc:     "cat/1 - cot (substitution)",
			pattern:  "cat",
			distance: 1,
			input:    "cot",
			isMatch:  true,
		},
		// multi-byte characters count as one for the purposes of
		// the edit distance
		{
			desc:     "cát/1 - cat",
			pattern:  "cát",
			distance: 1,
			input:    "cat",
			isMatch:  true,
		},
		{
			desc:     "cát/0 - cat",
			pattern:  "cát",
			distance: 0,
			input:    "cat",
			isMatch:  false,
		},
		{
			desc:     "empty/1 - a",
			pattern:  "",
			distance: 1,
			input:    "a",
			isMatch:  true,
		},
		{
			desc:     "empty/1 - ab",
			pattern:  "",
			distance: 1,
			input:    "ab",
			isMatch:  false,
		},
		{
			desc:     "abc/3 - empty input",
			pattern:  "abc",
			distance: 3,
			input:    "",
			isMatch:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			matcher, err := NewMatcher(test.pattern, test.distance)
			require.NoError(t, err)

			isMatch, err := matcher.Match(test.input)
			require.NoError(t, err)
			require.Equal(t, test.isMatch, isMatch)
		})
	}
}

func TestNewNegativeDistance(t *testing.T) {
	_, err := New("cat", -1)
	require.ErrorIs(t, err, ErrNegativeDistance)
	_, err = NewMatcher("cat", -1)
	require.ErrorIs(t, err, ErrNegativeDistance)
}

// editDistance is the reference dynamic-programming Levenshtein
// distance.
func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(min(curr[j-1]+1, prev[j]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestAgainstReferenceDistance(t *testing.T) {
	r := rand.New(rand.NewSource(46))
	alphabet := []rune("ab")

	randWord := func(n int) []rune {
		rv := make([]rune, r.Intn(n+1))
		for i := range rv {
			rv[i] = alphabet[r.Intn(len(alphabet))]
		}
		return rv
	}

	for i := 0; i < 300; i++ {
		pattern := randWord(20)
		input := randWord(20)
		k := r.Intn(4)

		matcher, err := NewMatcher(string(pattern), k)
		require.NoError(t, err)
		isMatch, err := matcher.Match(string(input))
		require.NoError(t, err)

		expected := editDistance(pattern, input) <= k
		require.Equal(t, expected, isMatch,
			"pattern %q input %q k %d", string(pattern), string(input), k)
	}
}
