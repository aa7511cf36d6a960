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

import "math"

// Add, Sub, Mul, Div, Mod, and Pow each implement one row of spec.md
// §4.5's operator table, lifted across operand tuples per §4.4 via
// liftBinary. Every kind-pair not listed in the table surfaces as an
// *OpError from the scalar-level function, naming the two kinds.

func Add(x, y Value) (Value, error) { return liftBinary(x, y, addScalar) }
func Sub(x, y Value) (Value, error) { return liftBinary(x, y, subScalar) }
func Mul(x, y Value) (Value, error) { return liftBinary(x, y, mulScalar) }
func Div(x, y Value) (Value, error) { return liftBinary(x, y, divScalar) }
func Mod(x, y Value) (Value, error) { return liftBinary(x, y, modScalar) }
func Pow(x, y Value) (Value, error) { return liftBinary(x, y, powScalar) }

// numResult converts a float64 arithmetic result into a Value, collapsing
// NaN to Nothing so that Number values in this package are never NaN (see
// Number's doc comment).
func numResult(f float64) Value {
	if math.IsNaN(f) {
		return Nothing
	}
	return Number(f)
}

func addScalar(a, b Value) (Value, error) {
	if IsNothing(a) {
		return b, nil
	}
	if IsNothing(b) {
		return a, nil
	}
	switch x := a.(type) {
	case Boolean:
		if y, ok := b.(Boolean); ok {
			return Boolean(bool(x) || bool(y)), nil
		}
	case Number:
		if y, ok := b.(Number); ok {
			return numResult(float64(x) + float64(y)), nil
		}
	case String:
		if y, ok := b.(String); ok {
			return x + y, nil
		}
	case List:
		if y, ok := b.(List); ok {
			out := make(List, 0, len(x)+len(y))
			out = append(out, x...)
			out = append(out, y...)
			return out, nil
		}
	case *Namespace:
		if y, ok := b.(*Namespace); ok {
			return MergeNamespaces(x, y), nil
		}
	}
	return nil, opError("Sum", a, b)
}

func subScalar(a, b Value) (Value, error) {
	if IsNothing(a) {
		return Nothing, nil
	}
	if IsNothing(b) {
		return a, nil
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return numResult(float64(x) - float64(y)), nil
		}
	}
	return nil, opError("Difference", a, b)
}

func mulScalar(a, b Value) (Value, error) {
	if IsNothing(a) || IsNothing(b) {
		return Nothing, nil
	}
	switch x := a.(type) {
	case Boolean:
		if y, ok := b.(Boolean); ok {
			return Boolean(bool(x) && bool(y)), nil
		}
	case Number:
		switch y := b.(type) {
		case Number:
			return numResult(float64(x) * float64(y)), nil
		case String:
			return repeatString(y, float64(x)), nil
		case List:
			return repeatList(y, float64(x)), nil
		}
	case String:
		if y, ok := b.(Number); ok {
			return repeatString(x, float64(y)), nil
		}
	case List:
		if y, ok := b.(Number); ok {
			return repeatList(x, float64(y)), nil
		}
	}
	return nil, opError("Product", a, b)
}

func repeatString(s String, count float64) Value {
	n := truncToward(count)
	if n <= 0 {
		return String("")
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return String(out)
}

func repeatList(l List, count float64) Value {
	n := truncToward(count)
	if n <= 0 {
		return List{}
	}
	out := make(List, 0, len(l)*n)
	for i := 0; i < n; i++ {
		out = append(out, l...)
	}
	return out
}

// truncToward truncates f toward zero, as required for Num*Str/List
// repetition counts.
func truncToward(f float64) int {
	return int(math.Trunc(f))
}

func divScalar(a, b Value) (Value, error) {
	if IsNothing(a) {
		return Nothing, nil
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return numResult(float64(x) / float64(y)), nil
		}
	}
	return nil, opError("Quotient", a, b)
}

func modScalar(a, b Value) (Value, error) {
	if IsNothing(a) {
		return b, nil
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return numResult(math.Mod(float64(x), float64(y))), nil
		}
	}
	return nil, opError("Remainder", a, b)
}

func powScalar(a, b Value) (Value, error) {
	if IsNothing(a) {
		return Nothing, nil
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return numResult(math.Pow(float64(x), float64(y))), nil
		}
	}
	return nil, opError("Power", a, b)
}
