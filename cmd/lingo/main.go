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

// Command lingo is a reference host for the lingo embedding surface: it
// parses and evaluates expressions from the command line or a REPL.
package main

import (
	"os"

	"lingolang.dev/go/cmd/lingo/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
