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

// Compare implements spec.md §4.6: Nothing is strictly less than
// anything else; Namespace and Function comparisons are undefined and
// return an *OpError; Tuples compare lexicographically, Nothing-padded to
// the longer length; everything else must share a Kind or it is an error.
//
// op names the comparison operator for error messages (e.g. "<"), since
// Compare itself is shared by all four ordering operators.
func Compare(op string, x, y Value) (int, error) {
	return compareTuples(op, Elements(x), Elements(y))
}

func compareTuples(op string, xs, ys []Value) (int, error) {
	n := len(xs)
	if len(ys) > n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		a, b := Value(Nothing), Value(Nothing)
		if i < len(xs) {
			a = xs[i]
		}
		if i < len(ys) {
			b = ys[i]
		}
		c, err := compareScalar(op, a, b)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

func compareScalar(op string, x, y Value) (int, error) {
	xNothing, yNothing := IsNothing(x), IsNothing(y)
	switch {
	case xNothing && yNothing:
		return 0, nil
	case xNothing:
		return -1, nil
	case yNothing:
		return 1, nil
	}

	if x.Kind() != y.Kind() {
		return 0, opError(op, x, y)
	}

	switch xv := x.(type) {
	case Boolean:
		yv := y.(Boolean)
		return boolCompare(bool(xv), bool(yv)), nil
	case Number:
		yv := y.(Number)
		switch {
		case xv < yv:
			return -1, nil
		case xv > yv:
			return 1, nil
		default:
			return 0, nil
		}
	case String:
		yv := y.(String)
		switch {
		case xv < yv:
			return -1, nil
		case xv > yv:
			return 1, nil
		default:
			return 0, nil
		}
	case List:
		yv := y.(List)
		return compareLists(op, xv, yv)
	case Tuple:
		yv := y.(Tuple)
		return compareTuples(op, xv, yv)
	default:
		// Namespace, Function: ordering is undefined.
		return 0, opErrorUnary(op, x)
	}
}

func compareLists(op string, xs, ys List) (int, error) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		c, err := compareScalar(op, xs[i], ys[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case len(xs) < len(ys):
		return -1, nil
	case len(xs) > len(ys):
		return 1, nil
	default:
		return 0, nil
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

// Equal implements spec.md §4.6's '==': false across differing kinds;
// Boolean/Number/String by value; Function by identity; List element-wise
// via Equal; Namespace iff same owned identifiers each mapping to Equal
// values; Tuple element-wise, Nothing-padded, like Compare.
func Equal(x, y Value) bool {
	_, xTuple := x.(Tuple)
	_, yTuple := y.(Tuple)
	if xTuple || yTuple {
		return equalTuples(Elements(x), Elements(y))
	}

	xNothing, yNothing := IsNothing(x), IsNothing(y)
	if xNothing || yNothing {
		return xNothing && yNothing
	}
	if x.Kind() != y.Kind() {
		return false
	}
	switch xv := x.(type) {
	case Boolean:
		return xv == y.(Boolean)
	case Number:
		return xv == y.(Number)
	case String:
		return xv == y.(String)
	case *Function:
		return xv == y.(*Function)
	case List:
		return equalLists(xv, y.(List))
	case *Namespace:
		return EqualNamespace(xv, y.(*Namespace))
	default:
		return false
	}
}

func equalTuples(xs, ys []Value) bool {
	n := len(xs)
	if len(ys) > n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		a, b := Value(Nothing), Value(Nothing)
		if i < len(xs) {
			a = xs[i]
		}
		if i < len(ys) {
			b = ys[i]
		}
		if !Equal(a, b) {
			return false
		}
	}
	return true
}

func equalLists(xs, ys List) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
