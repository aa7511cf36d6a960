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

// Package eval walks the executable tree produced by package parser,
// realizing every handler named in spec.md's operator table against
// package value's runtime values and Scope.
//
// Eval threads a context.Context through every recursive call. The only
// suspension points are invocations of host-supplied callables (including,
// transitively, this language's own '->' closures calling back into a
// host function); pure arithmetic and traversal never yield, matching the
// single-threaded cooperative scheduling model the language specifies.
package eval

import (
	"context"

	"lingolang.dev/go/ast"
	"lingolang.dev/go/errors"
	"lingolang.dev/go/internal/core/value"
	"lingolang.dev/go/token"
)

// Eval evaluates node in scope, returning a normalized value.Value. It may
// mutate scope's own frame (labelling and assignment write there).
func Eval(ctx context.Context, node ast.Node, scope *value.Scope) (value.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Host(node.Pos(), err)
	}

	switch n := node.(type) {
	case *ast.NumberLit:
		return value.Number(n.Value), nil

	case *ast.StringLit:
		return value.String(n.Value), nil

	case *ast.Ident:
		return scope.Get(n.Name), nil

	case *ast.Paren:
		if n.Inner == nil {
			return value.Nothing, nil
		}
		return Eval(ctx, n.Inner, scope)

	case *ast.ListLit:
		if n.Inner == nil {
			return value.List{}, nil
		}
		v, err := Eval(ctx, n.Inner, scope)
		if err != nil {
			return nil, err
		}
		return value.List(value.Elements(v)), nil

	case *ast.Block:
		child := scope.Child()
		if n.Inner != nil {
			if _, err := Eval(ctx, n.Inner, child); err != nil {
				return nil, err
			}
		}
		return child.OwnNamespace(), nil

	case *ast.Apply:
		fn, err := Eval(ctx, n.Fn, scope)
		if err != nil {
			return nil, err
		}
		arg, err := Eval(ctx, n.Arg, scope)
		if err != nil {
			return nil, err
		}
		v, err := value.Apply(ctx, fn, arg)
		if err != nil {
			return nil, wrapOpErr(n.Pos(), err)
		}
		return v, nil

	case *ast.Binary:
		return evalBinary(ctx, n, scope)

	default:
		return nil, errors.Newf(errors.ParseError, node.Pos(), "unhandled node type %T", node)
	}
}

// wrapOpErr attaches source position to a *value.OpError, turning it into
// a reported errors.Error with the exact wording spec.md §7 mandates.
func wrapOpErr(pos token.Pos, err error) error {
	if oe, ok := err.(*value.OpError); ok {
		if oe.Unary {
			return errors.OperatorUnary(pos, oe.Op, oe.Left.String())
		}
		return errors.Operator(pos, oe.Op, oe.Left.String(), oe.Right.String())
	}
	return err
}
