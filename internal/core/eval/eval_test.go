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
	"testing"

	"lingolang.dev/go/internal/core/value"
	"lingolang.dev/go/parser"
	"lingolang.dev/go/token"
)

// run parses src and evaluates it against a fresh scope seeded with extra
// bindings, returning the normalized result.
func run(t *testing.T, src string, extra map[string]value.Value) (value.Value, error) {
	t.Helper()
	n, err := parser.ParseExpr(t.Name(), src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	scope := value.NewScope()
	for k, v := range extra {
		scope.Set(k, v)
	}
	return Eval(context.Background(), n, scope)
}

func mustEval(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func TestEvalLiterals(t *testing.T) {
	if got := mustEval(t, "42"); got != value.Value(value.Number(42)) {
		t.Errorf("42 = %v", got)
	}
	if got := mustEval(t, `"hi"`); got != value.Value(value.String("hi")) {
		t.Errorf(`"hi" = %v`, got)
	}
}

func TestEvalIdentLooksUpScope(t *testing.T) {
	v, err := run(t, "x", map[string]value.Value{"x": value.Number(7)})
	if err != nil {
		t.Fatal(err)
	}
	if v != value.Value(value.Number(7)) {
		t.Errorf("x = %v, want 7", v)
	}
}

func TestEvalUnboundIdentIsNothing(t *testing.T) {
	if got := mustEval(t, "never_bound"); got != value.Nothing {
		t.Errorf("unbound ident = %v, want Nothing", got)
	}
}

func TestEvalEmptyParenIsNothing(t *testing.T) {
	if got := mustEval(t, "()"); got != value.Nothing {
		t.Errorf("() = %v, want Nothing", got)
	}
}

func TestEvalParenIsTransparent(t *testing.T) {
	if got := mustEval(t, "(1 + 2)"); got != value.Value(value.Number(3)) {
		t.Errorf("(1+2) = %v, want 3", got)
	}
}

func TestEvalListLiteralFlattensTuple(t *testing.T) {
	got := mustEval(t, "[1, 2, 3]")
	want := value.List{value.Number(1), value.Number(2), value.Number(3)}
	if !value.Equal(got, want) {
		t.Errorf("[1,2,3] = %v, want %v", got, want)
	}
}

func TestEvalEmptyListLiteral(t *testing.T) {
	got := mustEval(t, "[]")
	if !value.Equal(got, value.List{}) {
		t.Errorf("[] = %v, want empty list", got)
	}
}

func TestEvalNestedListNotAutoFlattened(t *testing.T) {
	got := mustEval(t, "[1, [2, 3]]")
	want := value.List{value.Number(1), value.List{value.Number(2), value.Number(3)}}
	if !value.Equal(got, want) {
		t.Errorf("[1,[2,3]] = %v, want %v", got, want)
	}
}

func TestEvalBlockCapturesOwnFrameOnly(t *testing.T) {
	got := mustEval(t, "{ a = 1, b = 2 }")
	ns, ok := got.(*value.Namespace)
	if !ok {
		t.Fatalf("{a=1,b=2} = %T, want *value.Namespace", got)
	}
	if ns.Len() != 2 {
		t.Errorf("namespace has %d entries, want 2", ns.Len())
	}
}

func TestEvalBlockDiscardsNonBindingEffect(t *testing.T) {
	got := mustEval(t, "{ 1 + 1, a = 5 }")
	ns, ok := got.(*value.Namespace)
	if !ok {
		t.Fatalf("block result = %T, want *value.Namespace", got)
	}
	if _, ok := ns.Get("a"); !ok {
		t.Error(`namespace missing "a"`)
	}
	if ns.Len() != 1 {
		t.Errorf("namespace has %d entries, want 1 (non-binding expr discarded)", ns.Len())
	}
}

func TestEvalApplyFunction(t *testing.T) {
	got := mustEval(t, "(x -> x + 1) 4")
	if got != value.Value(value.Number(5)) {
		t.Errorf("(x -> x+1) 4 = %v, want 5", got)
	}
}

func TestEvalApplyStringIndexing(t *testing.T) {
	got := mustEval(t, `"abc" 1`)
	if got != value.Value(value.String("b")) {
		t.Errorf(`"abc" 1 = %v, want "b"`, got)
	}
}

type fakeNode struct{}

func (fakeNode) Pos() token.Pos { return token.NoPos }

func TestEvalUnhandledNodeType(t *testing.T) {
	scope := value.NewScope()
	if _, err := Eval(context.Background(), fakeNode{}, scope); err == nil {
		t.Error("expected error for unhandled node type")
	}
}

func TestEvalRespectsCanceledContext(t *testing.T) {
	n, err := parser.ParseExpr(t.Name(), "1 + 1")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Eval(ctx, n, value.NewScope()); err == nil {
		t.Error("expected error from canceled context")
	}
}
