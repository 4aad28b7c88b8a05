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
	"github.com/spf13/cobra"
)

// RootCmd is the root of the wnfa command tree.
var RootCmd = &cobra.Command{
	Use:   "wnfa",
	Short: "Wnfa matches and ranks strings with weighted automata",
	Long:  "Wnfa matches and ranks strings against a pattern using weighted nondeterministic finite automata driven through a beam-search determinizer.",
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
