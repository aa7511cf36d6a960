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

// Package parser implements a precedence-climbing parser that turns
// expression-language source text into an executable tree (package ast).
//
// The parser itself carries no evaluation semantics: it resolves operator
// precedence and associativity and names the resulting operation via
// ast.Handler, leaving all behavior to the evaluator.
package parser

import (
	"strconv"
	"strings"

	"lingolang.dev/go/ast"
	"lingolang.dev/go/errors"
	"lingolang.dev/go/scanner"
	"lingolang.dev/go/token"
)

type parser struct {
	file    *token.File
	scan    scanner.Scanner
	errs    errors.List
	pos     token.Pos
	tok     token.Token
	lit     string
}

// ParseExpr parses source as a single expression and returns its executable
// tree. name is used only for position reporting.
func ParseExpr(name, source string) (ast.Node, error) {
	var p parser
	p.file = token.NewFile(name, len(source))
	p.scan.Init(p.file, []byte(source), func(pos token.Position, msg string) {
		p.errs.Add(errors.Newf(errors.ParseError, p.file.Pos(pos.Offset), "%s", msg))
	})
	p.next()

	if p.tok == token.EOF {
		p.errorf("empty expression")
		return nil, p.errs.Err()
	}

	expr := p.parseExpr()
	if p.tok != token.EOF {
		p.errorf("unexpected %s after expression", p.describeCurrent())
	}
	if err := p.errs.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.scan.Scan()
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errs.Add(errors.Newf(errors.ParseError, p.pos, format, args...))
}

func (p *parser) describeCurrent() string {
	if p.tok == token.ILLEGAL {
		return "illegal character " + strconv.Quote(p.lit)
	}
	if p.lit != "" {
		return p.tok.String() + " " + strconv.Quote(p.lit)
	}
	return p.tok.String()
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorf("expected %s, found %s", tok, p.describeCurrent())
	}
	p.next()
	return pos
}

// parseExpr parses a full expression at the loosest precedence (tuple
// pairing and below).
func (p *parser) parseExpr() ast.Node {
	return p.parseBinaryExpr(token.LowestPrec + 1)
}

// startsOperand reports whether p.tok can begin a primary expression, used
// to detect juxtaposition (application).
func (p *parser) startsOperand() bool {
	switch p.tok {
	case token.IDENT, token.INT, token.FLOAT, token.STRING,
		token.LPAREN, token.LBRACK, token.LBRACE:
		return true
	}
	return false
}

// parseBinaryExpr implements precedence climbing: it consumes x <op> y
// chains (including juxtaposition, which has no operator token) whose
// precedence is at least prec1.
func (p *parser) parseBinaryExpr(prec1 int) ast.Node {
	x := p.parsePrimary()

	for {
		if handler, ok := ast.HandlerFor(p.tok); ok {
			prec, rightAssoc := p.tok.Precedence()
			if prec < prec1 {
				return x
			}
			opTok := p.tok
			opPos := p.pos
			p.next()
			nextPrec := prec + 1
			if rightAssoc {
				nextPrec = prec
			}
			y := p.parseBinaryExpr(nextPrec)
			x = &ast.Binary{NodePos: opPos, Op: handler, OpTok: opTok, X: x, Y: y}
			continue
		}

		if prec1 <= token.ApplyPrecedence && p.startsOperand() {
			arg := p.parsePrimary()
			x = &ast.Apply{Fn: x, Arg: arg}
			continue
		}

		return x
	}
}

// parsePrimary parses a single operand: a literal, identifier, or
// parenthesized/bracketed/braced group. Unary minus directly preceding a
// numeric literal is folded into the literal here, per spec; there is no
// general unary-minus operator.
func (p *parser) parsePrimary() ast.Node {
	switch p.tok {
	case token.IDENT:
		n := &ast.Ident{NodePos: p.pos, Name: p.lit}
		p.next()
		return n

	case token.INT, token.FLOAT:
		return p.parseNumber(1, p.pos)

	case token.STRING:
		n := p.parseString()
		return n

	case token.SUB:
		pos := p.pos
		p.next()
		if p.tok != token.INT && p.tok != token.FLOAT {
			p.errorf("expected a numeric literal after unary '-', found %s", p.describeCurrent())
			return &ast.NumberLit{NodePos: pos, Value: 0}
		}
		return p.parseNumber(-1, pos)

	case token.LPAREN:
		pos := p.pos
		p.next()
		if p.tok == token.RPAREN {
			p.next()
			return &ast.Paren{NodePos: pos}
		}
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.Paren{NodePos: pos, Inner: inner}

	case token.LBRACK:
		pos := p.pos
		p.next()
		if p.tok == token.RBRACK {
			p.next()
			return &ast.ListLit{NodePos: pos}
		}
		inner := p.parseExpr()
		p.expect(token.RBRACK)
		return &ast.ListLit{NodePos: pos, Inner: inner}

	case token.LBRACE:
		pos := p.pos
		p.next()
		if p.tok == token.RBRACE {
			p.next()
			return &ast.Block{NodePos: pos}
		}
		inner := p.parseExpr()
		p.expect(token.RBRACE)
		return &ast.Block{NodePos: pos, Inner: inner}

	default:
		pos := p.pos
		p.errorf("unexpected %s", p.describeCurrent())
		p.next()
		return &ast.NumberLit{NodePos: pos, Value: 0}
	}
}

func (p *parser) parseNumber(sign float64, pos token.Pos) ast.Node {
	lit := p.lit
	p.next()
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.errorf("malformed numeric literal %q", lit)
		return &ast.NumberLit{NodePos: pos, Value: 0}
	}
	return &ast.NumberLit{NodePos: pos, Value: sign * v}
}

func (p *parser) parseString() ast.Node {
	pos := p.pos
	lit := p.lit
	p.next()
	if len(lit) < 2 {
		p.errorf("malformed string literal %q", lit)
		return &ast.StringLit{NodePos: pos}
	}
	quote := lit[0]
	body := lit[1 : len(lit)-1]

	var kind ast.StringKind
	switch quote {
	case '"':
		kind = ast.DoubleQuoted
	case '\'':
		kind = ast.SingleQuoted
	case '`':
		kind = ast.BackQuoted
		return &ast.StringLit{NodePos: pos, Kind: kind, Value: body}
	}

	value, err := unescape(body, rune(quote))
	if err != nil {
		p.errorf("%s", err.Error())
	}
	return &ast.StringLit{NodePos: pos, Kind: kind, Value: value}
}

func unescape(s string, quote rune) (string, error) {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' {
			b.WriteRune(ch)
			continue
		}
		i++
		if i >= len(runes) {
			return b.String(), errors.Newf(errors.ParseError, token.NoPos, "escape sequence not terminated")
		}
		switch runes[i] {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '\\':
			b.WriteByte('\\')
		case '"', '\'', '`':
			b.WriteRune(runes[i])
		case 'x', 'u', 'U':
			n := map[rune]int{'x': 2, 'u': 4, 'U': 8}[runes[i]]
			i++
			if i+n > len(runes) {
				return b.String(), errors.Newf(errors.ParseError, token.NoPos, "escape sequence not terminated")
			}
			code, err := strconv.ParseInt(string(runes[i:i+n]), 16, 32)
			if err != nil {
				return b.String(), errors.Newf(errors.ParseError, token.NoPos, "illegal escape sequence")
			}
			b.WriteRune(rune(code))
			i += n - 1
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String(), nil
}
