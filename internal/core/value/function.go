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

package value

import "context"

// Function is the single callable Value kind. A Function defined by the
// language's own '->' operator, a built-in, and a host-injected callable
// are all represented the same way: a name for diagnostics/stringification
// and a Go closure. The closure for a user-defined function is built by
// the evaluator (which alone knows how to create a child Scope, label
// parameters, and walk the body); this package has no knowledge of ast or
// evaluation and so cannot import them, avoiding an import cycle.
type Function struct {
	name  string
	apply func(ctx context.Context, args []Value) (Value, error)
}

// NewFunction wraps apply as a callable Value. name is used only for
// diagnostics; it has no effect on equality, which is always by identity.
func NewFunction(name string, apply func(ctx context.Context, args []Value) (Value, error)) *Function {
	return &Function{name: name, apply: apply}
}

func (*Function) Kind() Kind { return FunctionKind }

// Name returns the function's diagnostic name, which may be empty for an
// anonymous '->' closure.
func (f *Function) Name() string { return f.name }

// Call invokes the function with a flat tuple of arguments.
func (f *Function) Call(ctx context.Context, args []Value) (Value, error) {
	return f.apply(ctx, args)
}
