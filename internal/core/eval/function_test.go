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
)

func TestFunctionBindsSingleParam(t *testing.T) {
	got := mustEval(t, "(x -> x * 2) 21")
	if got != value.Value(value.Number(42)) {
		t.Errorf("(x->x*2) 21 = %v, want 42", got)
	}
}

func TestFunctionBindsMultipleParams(t *testing.T) {
	got := mustEval(t, "((a, b) -> a - b) (10, 3)")
	if got != value.Value(value.Number(7)) {
		t.Errorf("((a,b)->a-b)(10,3) = %v, want 7", got)
	}
}

func TestFunctionClosesOverDefiningScope(t *testing.T) {
	got, err := run(t, "{ k = 10, f = x -> x + k } . (f 5)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.Value(value.Number(15)) {
		t.Errorf("got %v, want 15", got)
	}
}

func TestFunctionRecursionViaSharedScopeCapture(t *testing.T) {
	n, err := parser.ParseExpr(t.Name(), "f = n -> n <= 1 ? 1 ; n * f (n - 1)")
	if err != nil {
		t.Fatal(err)
	}
	scope := value.NewScope()
	if _, err := Eval(context.Background(), n, scope); err != nil {
		t.Fatal(err)
	}

	call, err := parser.ParseExpr(t.Name()+"_call", "f 5")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Eval(context.Background(), call, scope)
	if err != nil {
		t.Fatal(err)
	}
	if got != value.Value(value.Number(120)) {
		t.Errorf("f 5 = %v, want 120 (5!)", got)
	}
}

func TestFunctionReturnsNormalizedResult(t *testing.T) {
	got := mustEval(t, "(_ -> (1, 2)) ()")
	want := value.Tuple{value.Number(1), value.Number(2)}
	if !value.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
