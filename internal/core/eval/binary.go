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
	"lingolang.dev/go/errors"
	"lingolang.dev/go/internal/core/value"
)

// evalBinary dispatches a *ast.Binary node to the handler its operator
// names, per spec.md's operator table. The four short-circuiting handlers
// (HOr, HAnd, HIf, HElse) never evaluate Y unless the table says to.
func evalBinary(ctx context.Context, n *ast.Binary, scope *value.Scope) (value.Value, error) {
	switch n.Op {
	case ast.HPair:
		x, err := Eval(ctx, n.X, scope)
		if err != nil {
			return nil, err
		}
		y, err := Eval(ctx, n.Y, scope)
		if err != nil {
			return nil, err
		}
		return value.Pair(x, y), nil

	case ast.HOr:
		x, err := Eval(ctx, n.X, scope)
		if err != nil {
			return nil, err
		}
		if value.Truthy(x) {
			return x, nil
		}
		return Eval(ctx, n.Y, scope)

	case ast.HAnd:
		x, err := Eval(ctx, n.X, scope)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(x) {
			return x, nil
		}
		return Eval(ctx, n.Y, scope)

	case ast.HIf:
		x, err := Eval(ctx, n.X, scope)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(x) {
			return value.Nothing, nil
		}
		return Eval(ctx, n.Y, scope)

	case ast.HElse:
		x, err := Eval(ctx, n.X, scope)
		if err != nil {
			return nil, err
		}
		if !value.IsNothing(x) {
			return x, nil
		}
		return Eval(ctx, n.Y, scope)

	case ast.HEq:
		x, y, err := evalPair(ctx, n, scope)
		if err != nil {
			return nil, err
		}
		return value.Boolean(value.Equal(x, y)), nil

	case ast.HNe:
		x, y, err := evalPair(ctx, n, scope)
		if err != nil {
			return nil, err
		}
		return value.Boolean(!value.Equal(x, y)), nil

	case ast.HLt:
		return evalCompare(ctx, n, scope, "<", func(c int) bool { return c < 0 })
	case ast.HLe:
		return evalCompare(ctx, n, scope, "<=", func(c int) bool { return c <= 0 })
	case ast.HGt:
		return evalCompare(ctx, n, scope, ">", func(c int) bool { return c > 0 })
	case ast.HGe:
		return evalCompare(ctx, n, scope, ">=", func(c int) bool { return c >= 0 })

	case ast.HAdd:
		return evalArith(ctx, n, scope, value.Add)
	case ast.HSub:
		return evalArith(ctx, n, scope, value.Sub)
	case ast.HMul:
		return evalArith(ctx, n, scope, value.Mul)
	case ast.HDiv:
		return evalArith(ctx, n, scope, value.Div)
	case ast.HMod:
		return evalArith(ctx, n, scope, value.Mod)
	case ast.HPow:
		return evalArith(ctx, n, scope, value.Pow)

	case ast.HDot:
		return evalDot(ctx, n, scope)

	case ast.HLabel:
		values, err := Eval(ctx, n.Y, scope)
		if err != nil {
			return nil, err
		}
		if err := bindNames(scope, n.X, values); err != nil {
			return nil, err
		}
		return values, nil

	case ast.HSet:
		values, err := Eval(ctx, n.Y, scope)
		if err != nil {
			return nil, err
		}
		if err := bindNames(scope, n.X, values); err != nil {
			return nil, err
		}
		return value.Nothing, nil

	case ast.HDef:
		return makeFunction(n.X, n.Y, scope), nil

	default:
		return nil, errors.Newf(errors.ParseError, n.Pos(), "unhandled binary operator")
	}
}

func evalPair(ctx context.Context, n *ast.Binary, scope *value.Scope) (value.Value, value.Value, error) {
	x, err := Eval(ctx, n.X, scope)
	if err != nil {
		return nil, nil, err
	}
	y, err := Eval(ctx, n.Y, scope)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func evalCompare(ctx context.Context, n *ast.Binary, scope *value.Scope, op string, pred func(int) bool) (value.Value, error) {
	x, y, err := evalPair(ctx, n, scope)
	if err != nil {
		return nil, err
	}
	c, err := value.Compare(op, x, y)
	if err != nil {
		return nil, wrapOpErr(n.Pos(), err)
	}
	return value.Boolean(pred(c)), nil
}

func evalArith(ctx context.Context, n *ast.Binary, scope *value.Scope, op func(x, y value.Value) (value.Value, error)) (value.Value, error) {
	x, y, err := evalPair(ctx, n, scope)
	if err != nil {
		return nil, err
	}
	v, err := op(x, y)
	if err != nil {
		return nil, wrapOpErr(n.Pos(), err)
	}
	return v, nil
}

// evalDot implements the '.' subcontexting operator: X must be a Namespace
// (or a Tuple of them, lifted element-wise), and Y is evaluated in a Scope
// where X's owned entries shadow the enclosing chain.
func evalDot(ctx context.Context, n *ast.Binary, scope *value.Scope) (value.Value, error) {
	x, err := Eval(ctx, n.X, scope)
	if err != nil {
		return nil, err
	}
	if t, ok := x.(value.Tuple); ok {
		out := make([]value.Value, len(t))
		for i, xi := range t {
			v, err := dotOne(ctx, n, xi, scope)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.Normalize(out), nil
	}
	return dotOne(ctx, n, x, scope)
}

func dotOne(ctx context.Context, n *ast.Binary, x value.Value, scope *value.Scope) (value.Value, error) {
	ns, ok := x.(*value.Namespace)
	if !ok {
		return nil, errors.Dot(n.Pos())
	}
	child := scope.WithNamespace(ns)
	v, err := Eval(ctx, n.Y, child)
	if err != nil {
		if e, ok := err.(errors.Error); ok {
			if name, ok := ns.Str(); ok {
				return nil, errors.WithPath(e, name)
			}
		}
		return nil, err
	}
	return v, nil
}
