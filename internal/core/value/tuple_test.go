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

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize(nil); got != Nothing {
		t.Errorf("Normalize(nil) = %v, want Nothing", got)
	}
	if got := Normalize([]Value{Number(1)}); got != Value(Number(1)) {
		t.Errorf("Normalize([1]) = %v, want 1", got)
	}
	got := Normalize([]Value{Number(1), Number(2)})
	tup, ok := got.(Tuple)
	if !ok || len(tup) != 2 {
		t.Errorf("Normalize([1,2]) = %#v, want Tuple of 2", got)
	}
}

func TestPairFlattensAndDropsNothing(t *testing.T) {
	// (a,(b,c),d) == (a,b,c,d)
	nested := Pair(Number(1), Pair(Number(2), Number(3)))
	flat := Normalize([]Value{Number(1), Number(2), Number(3)})
	if !Equal(nested, flat) {
		t.Errorf("Pair(1, Pair(2,3)) = %#v, want %#v", nested, flat)
	}

	// (a,(),b) == (a,b)
	withEmpty := Pair(Pair(Number(1), Nothing), Number(2))
	withoutEmpty := Pair(Number(1), Number(2))
	if !Equal(withEmpty, withoutEmpty) {
		t.Errorf("(a,(),b) should equal (a,b): got %#v vs %#v", withEmpty, withoutEmpty)
	}
}

func TestElementsScalarIsOneTuple(t *testing.T) {
	if got := Elements(Number(5)); len(got) != 1 || got[0] != Value(Number(5)) {
		t.Errorf("Elements(5) = %v, want [5]", got)
	}
	if got := Elements(Nothing); got != nil {
		t.Errorf("Elements(Nothing) = %v, want nil", got)
	}
}

func TestIsNothing(t *testing.T) {
	if !IsNothing(Nothing) {
		t.Error("IsNothing(Nothing) should be true")
	}
	if IsNothing(Number(0)) {
		t.Error("IsNothing(Number(0)) should be false: 0 is falsy but not Nothing")
	}
}

func TestLiftBinaryPadsWithNothing(t *testing.T) {
	x := Tuple{Number(1), Number(2), Number(3)}
	y := Tuple{Number(1), Number(2)}
	got, err := Add(x, y)
	if err != nil {
		t.Fatal(err)
	}
	// N+x = x, so the third element of the sum is just 3.
	want := Tuple{Number(2), Number(4), Number(3)}
	if !Equal(got, want) {
		t.Errorf("Add(%v, %v) = %v, want %v", x, y, got, want)
	}
}
