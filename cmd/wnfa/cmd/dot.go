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

package cmd

import (
	"fmt"
	"os"

	"github.com/couchbaselabs/wnfa"
	"github.com/couchbaselabs/wnfa/levenshtein"
	"github.com/spf13/cobra"
)

var dotDistance int
var dotSVG bool

var dotCmd = &cobra.Command{
	Use:   "dot PATTERN INPUT",
	Short: "Dot exports the determinized exploration of one input as GraphViz.",
	Long:  "Dot drives the input through the pattern automaton and writes the resulting chain of active sets in GraphViz (dot) format, or as SVG with --svg (requires the dot binary).",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and input required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		matcher, err := levenshtein.NewMatcher(args[0], dotDistance)
		if err != nil {
			return err
		}
		det := matcher.Determinizer()
		input := []rune(args[1])
		if dotSVG {
			return wnfa.ExportTraceSVG(det, input, os.Stdout)
		}
		return wnfa.ExportTraceDot(det, input, os.Stdout)
	},
}

func init() {
	dotCmd.Flags().IntVar(&dotDistance, "distance", 1, "maximum edit distance")
	dotCmd.Flags().BoolVar(&dotSVG, "svg", false, "render SVG via the dot binary")
	RootCmd.AddCommand(dotCmd)
}
