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

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	lingolang "lingolang.dev/go"
	"lingolang.dev/go/errors"
)

// newReplCmd builds a read-eval-print loop that shares one context across
// every line, so a binding made on one line ("f = ...") is visible to the
// next ("f 5"), matching the persistent-scope behavior the language's
// concurrency model anticipates for a long-lived host session.
func newReplCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "repl",
		Short: "read-eval-print loop sharing one evaluation context",
		RunE: func(c *cobra.Command, args []string) error {
			globals := map[string]lingolang.Value{}
			if path := flagGlobals.String(c); path != "" {
				g, err := loadGlobals(path)
				if err != nil {
					return err
				}
				globals = g
			}
			scope := lingolang.NewContext(globals)

			sessionID := uuid.NewString()
			in := bufio.NewScanner(c.InOrStdin())
			out := c.OutOrStdout()
			for lineNo := 1; ; lineNo++ {
				fmt.Fprint(out, "> ")
				if !in.Scan() {
					break
				}
				line := in.Text()
				if line == "" {
					continue
				}

				prog, err := lingolang.Parse(fmt.Sprintf("<repl:%d>", lineNo), line)
				if err != nil {
					errors.Print(out, err)
					continue
				}
				if flagDebug.Bool(c) {
					fmt.Fprintln(out, pretty.Sprint(prog))
				}

				result, err := lingolang.Evaluate(context.Background(), prog, scope)
				if err != nil {
					if he, ok := err.(errors.Error); ok && he.Kind() == errors.HostError {
						fmt.Fprintf(out, "[session %s] ", sessionID)
					}
					errors.Print(out, err)
					continue
				}
				fmt.Fprintln(out, lingolang.Stringify(result))
			}
			if err := in.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		},
	}
	addGlobalsAndDebugFlags(c.Flags())
	return c
}
