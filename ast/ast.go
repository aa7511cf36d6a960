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

// Package ast declares the types used to represent the executable tree the
// parser produces: one node variant per handler named in the language's
// grammar.
package ast

import "lingolang.dev/go/token"

// A Node represents any node of the executable tree. Every node carries
// the position of its first source character; trees are immutable once
// built by the parser and may be freely re-evaluated or shared across
// evaluations.
type Node interface {
	Pos() token.Pos
}

// StringKind distinguishes the three lexical forms of string literal, so a
// host embedding the language may hook one of them (conventionally the
// backtick form) for template interpolation without affecting the other
// two.
type StringKind int

const (
	DoubleQuoted StringKind = iota
	SingleQuoted
	BackQuoted
)

// NumberLit is a numeric literal, already folded with any leading unary
// minus recognized by the parser.
type NumberLit struct {
	NodePos token.Pos
	Value   float64
}

func (n *NumberLit) Pos() token.Pos { return n.NodePos }

// StringLit is a string literal with its delimiter kind and decoded text
// (escapes already resolved).
type StringLit struct {
	NodePos token.Pos
	Kind    StringKind
	Value   string
}

func (n *StringLit) Pos() token.Pos { return n.NodePos }

// Ident is a bare identifier reference.
type Ident struct {
	NodePos token.Pos
	Name    string
}

func (n *Ident) Pos() token.Pos { return n.NodePos }

// Handler names the polymorphic operation a Binary node realizes. It
// mirrors the "Handler" column of the binary operator table in the
// language's grammar directly, one value per table row.
type Handler int

const (
	HPair  Handler = iota // ,
	HSet                  // =
	HLabel                // :
	HDef                  // ->
	HElse                 // ;
	HIf                   // ?
	HOr                   // |
	HAnd                  // &
	HEq                   // ==
	HNe                   // !=
	HLt                   // <
	HLe                   // <=
	HGt                   // >
	HGe                   // >=
	HAdd                  // +
	HSub                  // -
	HMul                  // *
	HDiv                  // /
	HMod                  // %
	HPow                  // ^
	HDot                  // .
	HApply                // juxtaposition
)

// tokenHandlers maps each binary-operator token to the Handler it
// dispatches to.
var tokenHandlers = map[token.Token]Handler{
	token.COMMA:  HPair,
	token.BIND:   HSet,
	token.COLON:  HLabel,
	token.ARROW:  HDef,
	token.ELSE:   HElse,
	token.THEN:   HIf,
	token.OR:     HOr,
	token.AND:    HAnd,
	token.EQL:    HEq,
	token.NEQ:    HNe,
	token.LSS:    HLt,
	token.LEQ:    HLe,
	token.GTR:    HGt,
	token.GEQ:    HGe,
	token.ADD:    HAdd,
	token.SUB:    HSub,
	token.MUL:    HMul,
	token.QUO:    HDiv,
	token.REM:    HMod,
	token.POW:    HPow,
	token.PERIOD: HDot,
}

// HandlerFor returns the Handler a binary-operator token dispatches to.
func HandlerFor(tok token.Token) (Handler, bool) {
	h, ok := tokenHandlers[tok]
	return h, ok
}

// Binary is a binary-operator application: X <op> Y, where op is named by
// Handler and the original token is kept for error messages.
type Binary struct {
	NodePos token.Pos
	Op      Handler
	OpTok   token.Token
	X, Y    Node
}

func (n *Binary) Pos() token.Pos { return n.X.Pos() }

// Apply is the juxtaposition operator: Fn Arg. It is structurally distinct
// from Binary (rather than folded into it) because it has no operator
// token of its own to report in error messages.
type Apply struct {
	Fn, Arg Node
}

func (n *Apply) Pos() token.Pos { return n.Fn.Pos() }

// Paren is a parenthesized, non-tuple-forming group: (expr). It is
// transparent to evaluation except that an empty group, Paren{Inner: nil},
// evaluates to Nothing.
type Paren struct {
	NodePos token.Pos
	Inner   Node // nil for ()
}

func (n *Paren) Pos() token.Pos { return n.NodePos }

// Block is a namespace literal: { expr }. Evaluating it runs Inner (which
// may be nil for {}) in a fresh child scope and collects the names that
// scope's frame bound into a Namespace value.
type Block struct {
	NodePos token.Pos
	Inner   Node // nil for {}
}

func (n *Block) Pos() token.Pos { return n.NodePos }

// ListLit is a list literal: [ expr ]. Evaluating it flattens Inner to a
// tuple and collects its elements into a List value.
type ListLit struct {
	NodePos token.Pos
	Inner   Node // nil for []
}

func (n *ListLit) Pos() token.Pos { return n.NodePos }
