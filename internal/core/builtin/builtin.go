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

// Package builtin implements spec.md §4.14's intrinsic root-scope surface:
// bool, not, str, size, range, enum, type, map, TRUE, FALSE. Each is an
// ordinary *value.Function, built on the same primitives the evaluator
// itself uses, so none of this package's code is special-cased by eval.
package builtin

import (
	"context"
	"math"

	"lingolang.dev/go/errors"
	"lingolang.dev/go/internal/core/value"
	"lingolang.dev/go/token"
)

// Globals returns a fresh map of the default root-scope bindings, suitable
// for passing to (or merging into) the embedding surface's NewContext.
func Globals() map[string]value.Value {
	return map[string]value.Value{
		"bool":  value.NewFunction("bool", boolFn),
		"not":   value.NewFunction("not", notFn),
		"str":   value.NewFunction("str", strFn),
		"size":  value.NewFunction("size", sizeFn),
		"range": value.NewFunction("range", rangeFn),
		"enum":  value.NewFunction("enum", enumFn),
		"type":  value.NewFunction("type", typeFn),
		"map":   value.NewFunction("map", mapFn),
		"TRUE":  value.Boolean(true),
		"FALSE": value.Boolean(false),
	}
}

// arg1 reduces a call's flat argument tuple to its single logical operand,
// matching the "a scalar is treated as a 1-tuple" convention: zero
// arguments is Nothing, one or more is normalized first.
func arg1(args []value.Value) value.Value {
	return value.Normalize(args)
}

func boolFn(_ context.Context, args []value.Value) (value.Value, error) {
	return value.Boolean(value.Truthy(arg1(args))), nil
}

func notFn(_ context.Context, args []value.Value) (value.Value, error) {
	return value.Boolean(!value.Truthy(arg1(args))), nil
}

func strFn(_ context.Context, args []value.Value) (value.Value, error) {
	return value.String(value.Stringify(arg1(args))), nil
}

func sizeFn(_ context.Context, args []value.Value) (value.Value, error) {
	v := arg1(args)
	switch t := v.(type) {
	case value.String:
		return value.Number(len([]rune(string(t)))), nil
	case value.List:
		return value.Number(len(t)), nil
	case *value.Namespace:
		return value.Number(t.Len()), nil
	default:
		return nil, errors.Builtin(token.NoPos, "size", v.Kind().String())
	}
}

func typeFn(_ context.Context, args []value.Value) (value.Value, error) {
	return value.String(arg1(args).Kind().String()), nil
}

// rangeFn implements the integer-sequence built-in: 0..N-1 counting up for
// positive N, 0..-(|N|-1) counting down for negative N, Nothing for N==0.
func rangeFn(_ context.Context, args []value.Value) (value.Value, error) {
	v := arg1(args)
	n, ok := v.(value.Number)
	if !ok {
		return nil, errors.Builtin(token.NoPos, "range", v.Kind().String())
	}
	count := int(math.Trunc(float64(n)))
	if count == 0 {
		return value.Nothing, nil
	}
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	elems := make([]value.Value, count)
	for i := 0; i < count; i++ {
		elems[i] = value.Number(i * step)
	}
	return value.Normalize(elems), nil
}

// enumFn implements the insertion-order enumeration built-in, wrapping
// each entry in a two-field {name,value} or {index,value} record.
func enumFn(_ context.Context, args []value.Value) (value.Value, error) {
	v := arg1(args)
	switch t := v.(type) {
	case *value.Namespace:
		keys := t.Keys()
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			val, _ := t.Get(k)
			elems[i] = record("name", value.String(k), val)
		}
		return value.Normalize(elems), nil
	case value.List:
		elems := make([]value.Value, len(t))
		for i, val := range t {
			elems[i] = record("index", value.Number(i), val)
		}
		return value.Normalize(elems), nil
	case value.String:
		runes := []rune(string(t))
		elems := make([]value.Value, len(runes))
		for i, r := range runes {
			elems[i] = record("index", value.Number(i), value.String(string(r)))
		}
		return value.Normalize(elems), nil
	default:
		return nil, errors.Builtin(token.NoPos, "enum", v.Kind().String())
	}
}

// record builds a { key1: val1 } .. like namespace with exactly two owned
// identifiers, mirroring what a "{ key : keyVal, value : val }" block
// literal would produce.
func record(keyName string, keyVal, val value.Value) value.Value {
	return value.NewNamespace([]string{keyName, "value"}, map[string]value.Value{
		keyName: keyVal,
		"value": val,
	})
}

// mapFn returns a function that applies f element-wise across whatever
// tuple it is later called with.
func mapFn(_ context.Context, args []value.Value) (value.Value, error) {
	f, ok := arg1(args).(value.Callable)
	if !ok {
		return nil, errors.Builtin(token.NoPos, "map", arg1(args).Kind().String())
	}
	mapped := value.NewFunction("", func(ctx context.Context, callArgs []value.Value) (value.Value, error) {
		out := make([]value.Value, len(callArgs))
		for i, a := range callArgs {
			v, err := f.Call(ctx, []value.Value{a})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.Normalize(out), nil
	})
	return mapped, nil
}
