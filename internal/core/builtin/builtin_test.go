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

package builtin

import (
	"context"
	"testing"

	"lingolang.dev/go/internal/core/value"
)

func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	globals := Globals()
	fn, ok := globals[name].(*value.Function)
	if !ok {
		t.Fatalf("%q is not a *value.Function in Globals()", name)
	}
	got, err := fn.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("%s(%v): %v", name, args, err)
	}
	return got
}

func callErr(t *testing.T, name string, args ...value.Value) error {
	t.Helper()
	fn := Globals()[name].(*value.Function)
	_, err := fn.Call(context.Background(), args)
	return err
}

func TestGlobalsIncludesBooleanConstants(t *testing.T) {
	g := Globals()
	if g["TRUE"] != value.Value(value.Boolean(true)) {
		t.Errorf("TRUE = %v, want true", g["TRUE"])
	}
	if g["FALSE"] != value.Value(value.Boolean(false)) {
		t.Errorf("FALSE = %v, want false", g["FALSE"])
	}
}

func TestBoolFn(t *testing.T) {
	if got := call(t, "bool", value.Number(0)); got != value.Value(value.Boolean(false)) {
		t.Errorf("bool 0 = %v, want false", got)
	}
	if got := call(t, "bool", value.Number(1)); got != value.Value(value.Boolean(true)) {
		t.Errorf("bool 1 = %v, want true", got)
	}
}

func TestNotFn(t *testing.T) {
	if got := call(t, "not", value.Boolean(true)); got != value.Value(value.Boolean(false)) {
		t.Errorf("not TRUE = %v, want false", got)
	}
	if got := call(t, "not", value.Nothing); got != value.Value(value.Boolean(true)) {
		t.Errorf("not Nothing = %v, want true", got)
	}
}

func TestStrFn(t *testing.T) {
	if got := call(t, "str", value.Number(5)); got != value.Value(value.String("5")) {
		t.Errorf("str 5 = %v, want \"5\"", got)
	}
	if got := call(t, "str", value.Boolean(true)); got != value.Value(value.String("TRUE")) {
		t.Errorf("str TRUE = %v, want \"TRUE\"", got)
	}
}

func TestSizeFn(t *testing.T) {
	if got := call(t, "size", value.String("hello")); got != value.Value(value.Number(5)) {
		t.Errorf("size \"hello\" = %v, want 5", got)
	}
	if got := call(t, "size", value.List{value.Number(1), value.Number(2)}); got != value.Value(value.Number(2)) {
		t.Errorf("size [1,2] = %v, want 2", got)
	}
	ns := value.NewNamespace([]string{"a", "b", "c"}, map[string]value.Value{
		"a": value.Number(1), "b": value.Number(2), "c": value.Number(3),
	})
	if got := call(t, "size", ns); got != value.Value(value.Number(3)) {
		t.Errorf("size {a,b,c} = %v, want 3", got)
	}
}

func TestSizeFnErrorsOnInvalidKind(t *testing.T) {
	if err := callErr(t, "size", value.Number(5)); err == nil {
		t.Error("size 5 should error")
	}
}

func TestTypeFn(t *testing.T) {
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.Nothing, value.NothingKind.String()},
		{value.Boolean(true), value.BooleanKind.String()},
		{value.Number(1), value.NumberKind.String()},
		{value.String("x"), value.StringKind.String()},
	}
	for _, c := range cases {
		if got := call(t, "type", c.v); got != value.Value(value.String(c.want)) {
			t.Errorf("type(%v) = %v, want %q", c.v, got, c.want)
		}
	}
}

func TestRangeFn(t *testing.T) {
	got := call(t, "range", value.Number(3))
	want := value.Tuple{value.Number(0), value.Number(1), value.Number(2)}
	if !value.Equal(got, want) {
		t.Errorf("range 3 = %v, want %v", got, want)
	}
}

func TestRangeFnNegativeCountsDown(t *testing.T) {
	got := call(t, "range", value.Number(-3))
	want := value.Tuple{value.Number(0), value.Number(-1), value.Number(-2)}
	if !value.Equal(got, want) {
		t.Errorf("range -3 = %v, want %v", got, want)
	}
}

func TestRangeFnZeroIsNothing(t *testing.T) {
	if got := call(t, "range", value.Number(0)); got != value.Nothing {
		t.Errorf("range 0 = %v, want Nothing", got)
	}
}

func TestRangeFnTruncatesTowardZero(t *testing.T) {
	got := call(t, "range", value.Number(2.9))
	want := value.Tuple{value.Number(0), value.Number(1)}
	if !value.Equal(got, want) {
		t.Errorf("range 2.9 = %v, want %v", got, want)
	}
}

func TestRangeFnErrorsOnNonNumber(t *testing.T) {
	if err := callErr(t, "range", value.String("x")); err == nil {
		t.Error("range \"x\" should error")
	}
}

func TestEnumFnOverList(t *testing.T) {
	got := call(t, "enum", value.List{value.String("a"), value.String("b")})
	tup, ok := got.(value.Tuple)
	if !ok || len(tup) != 2 {
		t.Fatalf("enum [a,b] = %v, want a 2-tuple", got)
	}
	first, ok := tup[0].(*value.Namespace)
	if !ok {
		t.Fatalf("enum element = %T, want *value.Namespace", tup[0])
	}
	if v, _ := first.Get("index"); v != value.Value(value.Number(0)) {
		t.Errorf("first.index = %v, want 0", v)
	}
	if v, _ := first.Get("value"); v != value.Value(value.String("a")) {
		t.Errorf("first.value = %v, want \"a\"", v)
	}
}

func TestEnumFnOverNamespace(t *testing.T) {
	ns := value.NewNamespace([]string{"x"}, map[string]value.Value{"x": value.Number(9)})
	got := call(t, "enum", ns)
	rec, ok := got.(*value.Namespace)
	if !ok {
		t.Fatalf("enum {x:9} = %T, want a single *value.Namespace record", got)
	}
	if v, _ := rec.Get("name"); v != value.Value(value.String("x")) {
		t.Errorf("rec.name = %v, want \"x\"", v)
	}
	if v, _ := rec.Get("value"); v != value.Value(value.Number(9)) {
		t.Errorf("rec.value = %v, want 9", v)
	}
}

func TestEnumFnOverString(t *testing.T) {
	got := call(t, "enum", value.String("ab"))
	tup, ok := got.(value.Tuple)
	if !ok || len(tup) != 2 {
		t.Fatalf("enum \"ab\" = %v, want a 2-tuple", got)
	}
}

func TestEnumFnErrorsOnInvalidKind(t *testing.T) {
	if err := callErr(t, "enum", value.Number(1)); err == nil {
		t.Error("enum 1 should error")
	}
}

func TestMapFnAppliesElementwise(t *testing.T) {
	double := value.NewFunction("double", func(ctx context.Context, args []value.Value) (value.Value, error) {
		n := args[0].(value.Number)
		return value.Number(n * 2), nil
	})
	mapped := call(t, "map", double)
	fn, ok := mapped.(*value.Function)
	if !ok {
		t.Fatalf("map double = %T, want *value.Function", mapped)
	}
	got, err := fn.Call(context.Background(), []value.Value{value.Number(1), value.Number(2), value.Number(3)})
	if err != nil {
		t.Fatal(err)
	}
	want := value.Tuple{value.Number(2), value.Number(4), value.Number(6)}
	if !value.Equal(got, want) {
		t.Errorf("mapped(1,2,3) = %v, want %v", got, want)
	}
}

func TestMapFnErrorsOnNonCallable(t *testing.T) {
	if err := callErr(t, "map", value.Number(5)); err == nil {
		t.Error("map 5 should error: 5 is not callable")
	}
}
