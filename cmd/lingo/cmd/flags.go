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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagName is a typed flag identifier, so a subcommand's RunE retrieves a
// flag's value by the same constant used to register it rather than by a
// bare string repeated at both sites.
type flagName string

const (
	flagGlobals flagName = "globals"
	flagDebug   flagName = "debug"
)

// addGlobalsAndDebugFlags registers the --globals and --debug flags shared
// by eval and repl.
func addGlobalsAndDebugFlags(f *pflag.FlagSet) {
	f.String(string(flagGlobals), "", "YAML file of global bindings")
	f.Bool(string(flagDebug), false, "dump the parsed tree before evaluating")
}

func (f flagName) ensureAdded(cmd *cobra.Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("command %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) String(cmd *cobra.Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}

func (f flagName) Bool(cmd *cobra.Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}
