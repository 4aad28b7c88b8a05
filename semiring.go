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

import "math"

// Semiring defines how path weights accumulate.  Combine merges the
// weights of two paths reaching the same state, Extend accumulates
// weight along one path through successive transitions.  Zero is the
// impossible weight, One the free weight.  Better reports whether a
// ranks strictly ahead of b (lower cost, or higher likelihood).
//
// Required laws: Combine is commutative and associative with identity
// Zero; Extend is associative with identity One and absorbing Zero;
// Extend distributes over Combine.  The laws are verified by the test
// suite only, never at runtime.
type Semiring[W any] interface {
	Combine(a, b W) W
	Extend(a, b W) W
	Zero() W
	One() W
	IsZero(a W) bool
	Better(a, b W) bool
}

// BoolSemiring is the boolean semiring, used by acceptors which only
// report whether a path exists.
type BoolSemiring struct{}

func (BoolSemiring) Combine(a, b bool) bool { return a || b }
func (BoolSemiring) Extend(a, b bool) bool  { return a && b }
func (BoolSemiring) Zero() bool             { return false }
func (BoolSemiring) One() bool              { return true }
func (BoolSemiring) IsZero(a bool) bool     { return !a }
func (BoolSemiring) Better(a, b bool) bool  { return a && !b }

// TropicalSemiring accumulates costs: Combine takes the minimum,
// Extend adds.  Zero is +Inf, One is 0, and lower is better.
type TropicalSemiring struct{}

func (TropicalSemiring) Combine(a, b float64) float64 { return math.Min(a, b) }
func (TropicalSemiring) Extend(a, b float64) float64  { return a + b }
func (TropicalSemiring) Zero() float64                { return math.Inf(1) }
func (TropicalSemiring) One() float64                 { return 0 }
func (TropicalSemiring) IsZero(a float64) bool        { return math.IsInf(a, 1) }
func (TropicalSemiring) Better(a, b float64) bool     { return a < b }

// LogSemiring accumulates log-likelihoods: Combine takes the maximum,
// Extend adds in log space.  Zero is -Inf, One is 0, and higher is
// better.
type LogSemiring struct{}

func (LogSemiring) Combine(a, b float64) float64 { return math.Max(a, b) }
func (LogSemiring) Extend(a, b float64) float64  { return a + b }
func (LogSemiring) Zero() float64                { return math.Inf(-1) }
func (LogSemiring) One() float64                 { return 0 }
func (LogSemiring) IsZero(a float64) bool        { return math.IsInf(a, -1) }
func (LogSemiring) Better(a, b float64) bool     { return a > b }
