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

// Index assigns a stable small integer id to each distinct state it
// sees, enabling array-backed bookkeeping keyed on ids instead of
// hashing full state payloads repeatedly.  Ids are assigned densely in
// first-seen order, starting at zero.
type Index[S comparable] struct {
	ids    map[S]uint
	states []S
}

// NewIndex returns an empty Index.
func NewIndex[S comparable]() *Index[S] {
	return &Index[S]{
		ids: make(map[S]uint, 16),
	}
}

// ID returns the id for the state, assigning the next free id on first
// sight.
func (x *Index[S]) ID(s S) uint {
	if id, ok := x.ids[s]; ok {
		return id
	}
	id := uint(len(x.states))
	x.ids[s] = id
	x.states = append(x.states, s)
	return id
}

// Lookup returns the id for the state without assigning one.
func (x *Index[S]) Lookup(s S) (uint, bool) {
	id, ok := x.ids[s]
	return id, ok
}

// State returns the state assigned the given id.
func (x *Index[S]) State(id uint) S {
	return x.states[id]
}

// Len returns the number of distinct states indexed.
func (x *Index[S]) Len() int {
	return len(x.states)
}
