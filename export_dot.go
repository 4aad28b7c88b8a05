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
	"bufio"
	"bytes"
	"fmt"
	"io"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportTraceDot will export the determinized exploration of the given
// input into the GraphViz (dot) file format.  Each node is the ActiveSet
// reached after one input symbol, listing its (state, weight) entries;
// accepting sets are drawn as double circles.
func ExportTraceDot[S comparable, A comparable, W any](d *Determinizer[S, A, W],
	input []A, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	set, err := d.Start()
	if err != nil {
		return err
	}
	err = exportActiveSetDot(d, set, 0, bw)
	if err != nil {
		return err
	}

	for i, sym := range input {
		set, err = d.Accept(set, sym)
		if err != nil {
			return err
		}
		err = exportActiveSetDot(d, set, i+1, bw)
		if err != nil {
			return err
		}
		_, err = bw.WriteString(fmt.Sprintf("%d -> %d [label=%q]\n", i, i+1, symbolLabel(sym)))
		if err != nil {
			return err
		}
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

// symbolLabel renders a symbol for an edge label, showing runes as
// text rather than code points.
func symbolLabel(sym interface{}) string {
	if r, ok := sym.(rune); ok {
		return string(r)
	}
	return fmt.Sprintf("%v", sym)
}

func exportActiveSetDot[S comparable, A comparable, W any](d *Determinizer[S, A, W],
	set *ActiveSet[S, W], id int, bw *bufio.Writer) error {
	var buf bytes.Buffer
	label := ""
	for _, e := range set.Entries() {
		label += fmt.Sprintf("%v/%v\\n", e.State, e.Weight)
	}
	if set.Len() == 0 {
		label = "(empty)"
	}
	_, _ = buf.WriteString(fmt.Sprintf("%d [label=\"%s\"]\n", id, label))
	if d.IsMatch(set) {
		_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", id))
	}
	_, _ = buf.WriteString("\n")

	_, err := bw.Write(buf.Bytes())
	return err
}
