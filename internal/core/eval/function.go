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

package eval

import (
	"context"

	"lingolang.dev/go/ast"
	"lingolang.dev/go/internal/core/value"
)

// makeFunction implements spec.md §4.11: "params -> body" evaluates to a
// Function closing over the scope in effect at the point of definition.
// Calling it creates a fresh child of that captured scope, labels params
// against the flat argument tuple exactly as ':' would, then evaluates
// body in the child.
//
// Capturing scope by reference (rather than copying its bindings) is what
// lets a name bound after the closure is built — most importantly the
// function's own name, in "f = params -> body" — be visible from inside
// the body once the call actually happens; see Scope's doc comment.
func makeFunction(params, body ast.Node, scope *value.Scope) *value.Function {
	return value.NewFunction("", func(ctx context.Context, args []value.Value) (value.Value, error) {
		child := scope.Child()
		if err := bindNamesElems(child, params, args); err != nil {
			return nil, err
		}
		return Eval(ctx, body, child)
	})
}
