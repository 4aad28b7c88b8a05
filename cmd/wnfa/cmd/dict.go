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
	"bufio"
	"bytes"
	"fmt"
	"os"

	mmap "github.com/blevesearch/mmap-go"
	"github.com/couchbaselabs/wnfa/levenshtein"
	"github.com/spf13/cobra"
)

var dictDistance int

var dictCmd = &cobra.Command{
	Use:   "dict PATTERN FILE",
	Short: "Dict streams a newline-separated word list through the automaton.",
	Long:  "Dict memory-maps a newline-separated word list and prints every word within the edit distance of the pattern. One automaton is built and shared across all words.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and word list path required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		matcher, err := levenshtein.NewMatcher(args[0], dictDistance)
		if err != nil {
			return err
		}

		file, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer func() {
			_ = file.Close()
		}()
		data, err := mmap.Map(file, mmap.RDONLY, 0)
		if err != nil {
			return err
		}
		defer func() {
			_ = data.Unmap()
		}()

		matchCount := 0
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			word := scanner.Text()
			if word == "" {
				continue
			}
			matched, err := matcher.Match(word)
			if err != nil {
				return err
			}
			if matched {
				fmt.Printf("%s\n", word)
				matchCount++
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		fmt.Printf("matched %d words\n", matchCount)
		return nil
	},
}

func init() {
	dictCmd.Flags().IntVar(&dictDistance, "distance", 1, "maximum edit distance")
	RootCmd.AddCommand(dictCmd)
}
