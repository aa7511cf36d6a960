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

import (
	"context"
	"math"
)

// Apply implements spec.md §4.8's juxtaposition operator X Y, dispatching
// on the kind of x. It is lifted over a Tuple x per the general
// discipline, even though Apply is not one of the arithmetic/comparison
// operators, because the table explicitly calls for "Tuple: lift".
func Apply(ctx context.Context, x, y Value) (Value, error) {
	switch fn := x.(type) {
	case *Function:
		return fn.Call(ctx, Elements(y))
	case String:
		return Value(indexString(fn, y)), nil
	case List:
		return indexList(fn, y), nil
	case *Namespace:
		return applyNamespace(ctx, fn, y)
	case Tuple:
		out := make([]Value, len(fn))
		for i, xi := range fn {
			v, err := Apply(ctx, xi, y)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return Normalize(out), nil
	default:
		return nil, opErrorUnary("Application", x)
	}
}

func applyNamespace(ctx context.Context, ns *Namespace, y Value) (Value, error) {
	if fn, ok := ns.Apply(); ok {
		return fn.Call(ctx, Elements(y))
	}
	s, ok := y.(String)
	if !ok || !IsIdent(string(s)) {
		return Nothing, nil
	}
	v, ok := ns.Get(string(s))
	if !ok {
		return Nothing, nil
	}
	return v, nil
}

// indexString implements §4.8's string-indexing rule: a Number index picks
// the character at its floor, negative counting from the end;
// out-of-range or a non-Number index yields "".
func indexString(s String, idx Value) String {
	n, ok := idx.(Number)
	if !ok {
		return ""
	}
	runes := []rune(string(s))
	i := normalizeIndex(float64(n), len(runes))
	if i < 0 || i >= len(runes) {
		return ""
	}
	return String(runes[i])
}

// indexList implements the List analogue, yielding Nothing instead of "".
func indexList(l List, idx Value) Value {
	n, ok := idx.(Number)
	if !ok {
		return Nothing
	}
	i := normalizeIndex(float64(n), len(l))
	if i < 0 || i >= len(l) {
		return Nothing
	}
	return l[i]
}

func normalizeIndex(f float64, length int) int {
	i := int(math.Floor(f))
	if i < 0 {
		i += length
	}
	return i
}
