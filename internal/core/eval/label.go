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
	"lingolang.dev/go/ast"
	"lingolang.dev/go/errors"
	"lingolang.dev/go/internal/core/value"
)

// namesOf walks a "names" tree — the left operand of ':' and '=', and a
// function's parameter list — in the restricted mode spec.md §4.10
// describes: an Ident contributes its own name (never a looked-up value),
// ',' pairs are flattened left to right, and a Paren is transparent. Any
// other construct on the names side is a structural error.
func namesOf(n ast.Node) ([]string, error) {
	switch t := n.(type) {
	case *ast.Ident:
		return []string{t.Name}, nil
	case *ast.Paren:
		if t.Inner == nil {
			return nil, nil
		}
		return namesOf(t.Inner)
	case *ast.Binary:
		if t.Op != ast.HPair {
			return nil, errors.Newf(errors.OperatorError, t.Pos(), "invalid name in label or assignment")
		}
		xs, err := namesOf(t.X)
		if err != nil {
			return nil, err
		}
		ys, err := namesOf(t.Y)
		if err != nil {
			return nil, err
		}
		return append(xs, ys...), nil
	default:
		return nil, errors.Newf(errors.OperatorError, n.Pos(), "invalid name in label or assignment")
	}
}

// bindNames implements the labelling rule of spec.md §4.10: names bind
// left to right, one value each, with the LAST name absorbing every
// remaining value (normalized, so a single remaining value binds as
// itself), and any name beyond the available values binding to Nothing.
func bindNames(scope *value.Scope, namesNode ast.Node, values value.Value) error {
	return bindNamesElems(scope, namesNode, value.Elements(values))
}

// bindNamesElems is bindNames taking an already-flattened element slice,
// used directly by function application where the argument tuple is
// already a []value.Value.
func bindNamesElems(scope *value.Scope, namesNode ast.Node, elems []value.Value) error {
	names, err := namesOf(namesNode)
	if err != nil {
		return err
	}
	n := len(names)
	if n == 0 {
		return nil
	}
	for i, name := range names {
		if i < n-1 {
			if i < len(elems) {
				scope.Set(name, elems[i])
			} else {
				scope.Set(name, value.Nothing)
			}
			continue
		}
		// last name: absorb every remaining value
		if i >= len(elems) {
			scope.Set(name, value.Nothing)
		} else {
			scope.Set(name, value.Normalize(elems[i:]))
		}
	}
	return nil
}
