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

// Elements returns v's elements as a flat, Nothing-free slice: Nothing (or
// a tuple that normalizes to it) yields nil; a Tuple yields its elements
// (already flat by construction); any other value yields a 1-element
// slice containing itself. This is the "a scalar is treated as a 1-tuple"
// rule of the tuple-lifting discipline.
func Elements(v Value) []Value {
	switch t := v.(type) {
	case nothingType:
		return nil
	case Tuple:
		out := make([]Value, len(t))
		copy(out, t)
		return out
	default:
		return []Value{v}
	}
}

// Normalize reduces a flat element slice per spec.md's normalization
// rule: length 0 becomes Nothing, length 1 becomes its sole element,
// otherwise the slice becomes a Tuple unchanged.
func Normalize(elems []Value) Value {
	switch len(elems) {
	case 0:
		return Nothing
	case 1:
		return elems[0]
	default:
		return Tuple(elems)
	}
}

// Pair implements the "," tuple-pairing handler: flattens and concatenates
// x and y's elements, then normalizes. (a,(b,c),d) and (a,b,c,d) are
// therefore observably equal, and (a,(),b) equals (a,b).
func Pair(x, y Value) Value {
	xs := Elements(x)
	ys := Elements(y)
	out := make([]Value, 0, len(xs)+len(ys))
	out = append(out, xs...)
	out = append(out, ys...)
	return Normalize(out)
}

// IsNothing reports whether v is the absent value: Nothing itself, or
// (vacuously, given this package's invariants) a tuple that normalizes to
// it. There is no NaN check: arithmetic results are folded to Nothing by
// numResult, but a NaN Number constructed directly (for example a
// host-supplied global) is reported as not Nothing.
func IsNothing(v Value) bool {
	_, ok := v.(nothingType)
	return ok
}

// liftBinary implements the uniform tuple-lifting discipline of
// spec.md §4.4: zip x and y's elements pairwise (padding the shorter side
// with Nothing), apply scalar to every pair, and normalize the results.
func liftBinary(x, y Value, scalar func(a, b Value) (Value, error)) (Value, error) {
	xs := Elements(x)
	ys := Elements(y)
	n := len(xs)
	if len(ys) > n {
		n = len(ys)
	}
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		a, b := Value(Nothing), Value(Nothing)
		if i < len(xs) {
			a = xs[i]
		}
		if i < len(ys) {
			b = ys[i]
		}
		v, err := scalar(a, b)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return Normalize(out), nil
}
