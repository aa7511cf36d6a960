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
	"context"
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"lingolang.dev/go/errors"
	lingolang "lingolang.dev/go"
)

func newEvalCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "parse and evaluate a single expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src := strings.Join(args, " ")

			prog, err := lingolang.Parse("<arg>", src)
			if err != nil {
				errors.Print(c.ErrOrStderr(), err)
				return fmt.Errorf("parsing expression")
			}
			if flagDebug.Bool(c) {
				fmt.Fprintln(c.ErrOrStderr(), pretty.Sprint(prog))
			}

			globals := map[string]lingolang.Value{}
			if path := flagGlobals.String(c); path != "" {
				g, err := loadGlobals(path)
				if err != nil {
					return err
				}
				globals = g
			}
			scope := lingolang.NewContext(globals)

			result, err := lingolang.Evaluate(context.Background(), prog, scope)
			if err != nil {
				errors.Print(c.ErrOrStderr(), err)
				return fmt.Errorf("evaluating expression")
			}
			fmt.Fprintln(c.OutOrStdout(), lingolang.Stringify(result))
			return nil
		},
	}
	addGlobalsAndDebugFlags(c.Flags())
	return c
}
