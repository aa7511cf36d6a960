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

package parser

import (
	"testing"

	"lingolang.dev/go/ast"
)

// shape renders a node's operator structure (ignoring positions and literal
// values except leaf identifiers/numbers) for structural assertions,
// modeled on the teacher's practice of asserting a parenthesized string
// form rather than a deep struct comparison in parser tests.
func shape(n ast.Node) string {
	switch t := n.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.NumberLit:
		return formatNum(t.Value)
	case *ast.StringLit:
		return "str(" + t.Value + ")"
	case *ast.Paren:
		if t.Inner == nil {
			return "()"
		}
		return "(" + shape(t.Inner) + ")"
	case *ast.Block:
		if t.Inner == nil {
			return "{}"
		}
		return "{" + shape(t.Inner) + "}"
	case *ast.ListLit:
		if t.Inner == nil {
			return "[]"
		}
		return "[" + shape(t.Inner) + "]"
	case *ast.Apply:
		return "(" + shape(t.Fn) + " " + shape(t.Arg) + ")"
	case *ast.Binary:
		return "(" + shape(t.X) + " " + t.OpTok.String() + " " + shape(t.Y) + ")"
	default:
		return "?"
	}
}

func formatNum(f float64) string {
	if f == float64(int64(f)) {
		return itoa(int64(f))
	}
	return "f"
}

func itoa(i int64) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func TestPrecedenceShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"a , b , c", "((a , b) , c)"},
		{"a -> b -> c", "(a -> (b -> c))"},
		{"1 < 2 & 3 < 4", "((1 < 2) & (3 < 4))"},
		{"a : b = c", "((a : b) = c)"},
		{"n <= 1 ? 1 ; n * 2", "(((n <= 1) ? 1) ; (n * 2))"},
		{"a . b c", "((a . b) c)"},
		{"-2 + 3", "(-2 + 3)"},
		{"f (x)", "(f (x))"},
	}
	for _, c := range cases {
		got, err := ParseExpr("test", c.src)
		if err != nil {
			t.Fatalf("ParseExpr(%q): %v", c.src, err)
		}
		if s := shape(got); s != c.want {
			t.Errorf("ParseExpr(%q) shape = %q, want %q", c.src, s, c.want)
		}
	}
}

func TestEmptyGroups(t *testing.T) {
	for _, c := range []struct{ src, want string }{
		{"()", "()"}, {"[]", "[]"}, {"{}", "{}"},
	} {
		got, err := ParseExpr("test", c.src)
		if err != nil {
			t.Fatalf("ParseExpr(%q): %v", c.src, err)
		}
		if s := shape(got); s != c.want {
			t.Errorf("ParseExpr(%q) shape = %q, want %q", c.src, s, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"", "1 +", "(1", "- \"x\""} {
		if _, err := ParseExpr("test", src); err == nil {
			t.Errorf("ParseExpr(%q): want error, got nil", src)
		}
	}
}

func TestUnaryMinusFoldsIntoLiteral(t *testing.T) {
	got, err := ParseExpr("test", "-5")
	if err != nil {
		t.Fatal(err)
	}
	lit, ok := got.(*ast.NumberLit)
	if !ok {
		t.Fatalf("got %T, want *ast.NumberLit", got)
	}
	if lit.Value != -5 {
		t.Errorf("Value = %v, want -5", lit.Value)
	}
}
