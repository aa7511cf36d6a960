// Copyright 2024 The Lingo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the lingo command's subcommand tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// New builds the root lingo command with its eval and repl subcommands.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "lingo",
		Short:         "parse and evaluate lingo expressions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newEvalCmd())
	root.AddCommand(newReplCmd())
	return root
}

// Main runs the lingo command and returns the code for passing to os.Exit.
// It is also the entry point testscript's exec harness invokes for the
// "lingo" pseudo-binary in cmd/lingo/cmd/testdata/script.
func Main() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
