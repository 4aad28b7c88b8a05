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

	"github.com/couchbaselabs/wnfa/levenshtein"
	"github.com/spf13/cobra"
)

var matchDistance int

var matchCmd = &cobra.Command{
	Use:   "match PATTERN INPUT...",
	Short: "Match reports which inputs are within the edit distance of the pattern.",
	Long:  "Match reports which inputs are within the edit distance of the pattern.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and at least one input required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		matcher, err := levenshtein.NewMatcher(args[0], matchDistance)
		if err != nil {
			return err
		}
		for _, input := range args[1:] {
			matched, err := matcher.Match(input)
			if err != nil {
				return err
			}
			if matched {
				fmt.Printf("%s - match\n", input)
			} else {
				fmt.Printf("%s - no match\n", input)
			}
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().IntVar(&matchDistance, "distance", 1, "maximum edit distance")
	RootCmd.AddCommand(matchCmd)
}
