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
	"sort"

	"github.com/couchbaselabs/wnfa"
	"github.com/couchbaselabs/wnfa/levenshtein"
	"github.com/spf13/cobra"
)

var rankMaxEdits int
var rankWidth int
var rankThreshold float64
var rankMatchCost float64
var rankSubCost float64
var rankInsCost float64
var rankDelCost float64

var rankCmd = &cobra.Command{
	Use:   "rank PATTERN INPUT...",
	Short: "Rank orders inputs by edit cost against the pattern.",
	Long:  "Rank scores every input against the pattern under the configured operation costs and prints them cheapest first. Inputs outside the edit budget are reported as unmatched.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and at least one input required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wnfa.UnboundedBeam[float64]()
		if rankWidth > 0 {
			cfg.Width = rankWidth
		}
		if rankThreshold >= 0 {
			cfg.Threshold = &rankThreshold
		}
		costs := levenshtein.Costs{
			Match:        rankMatchCost,
			Substitution: rankSubCost,
			Insertion:    rankInsCost,
			Deletion:     rankDelCost,
		}
		scorer, err := levenshtein.NewScorer(args[0], rankMaxEdits, costs, cfg)
		if err != nil {
			return err
		}

		type ranked struct {
			input string
			cost  float64
		}
		var results []ranked
		for _, input := range args[1:] {
			cost, ok, err := scorer.Score(input)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("%s - no match\n", input)
				continue
			}
			results = append(results, ranked{input: input, cost: cost})
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].cost < results[j].cost
		})
		for _, r := range results {
			fmt.Printf("%s - %g\n", r.input, r.cost)
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().IntVar(&rankMaxEdits, "max-edits", 2, "maximum number of edit operations")
	rankCmd.Flags().IntVar(&rankWidth, "width", 0, "beam width (0 = unbounded)")
	rankCmd.Flags().Float64Var(&rankThreshold, "threshold", -1, "beam threshold over the best weight (negative = unbounded)")
	rankCmd.Flags().Float64Var(&rankMatchCost, "match-cost", 0, "cost of a match")
	rankCmd.Flags().Float64Var(&rankSubCost, "sub-cost", 1, "cost of a substitution")
	rankCmd.Flags().Float64Var(&rankInsCost, "ins-cost", 1, "cost of an insertion")
	rankCmd.Flags().Float64Var(&rankDelCost, "del-cost", 1, "cost of a deletion")
	RootCmd.AddCommand(rankCmd)
}
