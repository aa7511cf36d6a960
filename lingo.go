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

// Package lingo is the embedding surface a host program uses: parse source
// once into an immutable executable tree, create a context seeded with the
// default built-ins and any host-supplied globals, then evaluate the tree
// against that context as many times as needed (a host may re-evaluate the
// same context repeatedly, e.g. a REPL, observing bindings left by prior
// evaluations).
package lingo

import (
	"context"

	"lingolang.dev/go/ast"
	"lingolang.dev/go/internal/core/builtin"
	"lingolang.dev/go/internal/core/eval"
	"lingolang.dev/go/internal/core/value"
	"lingolang.dev/go/parser"
)

// Value is the runtime value type evaluation produces and NewContext's
// globals are made of. It is re-exported from the internal value package
// so a host never needs to import an internal path directly.
type Value = value.Value

// Parse parses source as a single expression, returning its executable
// tree. name is used only for position reporting in errors. The returned
// tree is immutable and may be evaluated any number of times, concurrently,
// against any number of independent contexts.
func Parse(name, source string) (ast.Node, error) {
	return parser.ParseExpr(name, source)
}

// NewContext creates a root evaluation context seeded with the language's
// default built-ins (bool, not, str, size, range, enum, type, map, TRUE,
// FALSE) and then globals, which may shadow any of them.
func NewContext(globals map[string]Value) *value.Scope {
	scope := value.NewScope()
	for name, v := range builtin.Globals() {
		scope.Global(name, v)
	}
	for name, v := range globals {
		scope.Global(name, v)
	}
	return scope
}

// Evaluate walks prog against scope's innermost frame, returning its
// normalized result. Labelling (':') and assignment ('=') write into that
// frame, so bindings made by one Evaluate call are visible to a later one
// sharing the same scope. Evaluate honors ctx cancellation at every host
// callable boundary; a cancelled ctx surfaces as a HostError.
func Evaluate(ctx context.Context, prog ast.Node, scope *value.Scope) (Value, error) {
	return eval.Eval(ctx, prog, scope)
}

// Stringify renders v per the language's own str table (spec.md §4.14),
// the same conversion the str built-in performs.
func Stringify(v Value) string {
	return value.Stringify(v)
}
