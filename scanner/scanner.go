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

// Package scanner implements a scanner for expression-language source text.
// It takes a []byte as source which can then be tokenized through repeated
// calls to the Scan method.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"lingolang.dev/go/token"
)

// ErrorHandler is invoked for each lexical error encountered during
// scanning, if one is installed via Init.
type ErrorHandler func(pos token.Position, msg string)

// A Scanner holds the scanner's internal state while processing a given
// source text. It must be initialized via Init before use, and may be
// reused afterwards by calling Init again.
type Scanner struct {
	file *token.File
	src  []byte
	err  ErrorHandler

	ch       rune // current character
	offset   int  // character offset
	rdOffset int  // reading offset (offset of ch's successor)

	ErrorCount int
}

const eof = -1

// Init prepares s to scan src, using file for position bookkeeping. file's
// size must equal len(src).
func (s *Scanner) Init(file *token.File, src []byte, err ErrorHandler) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = err
	s.ErrorCount = 0

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.next()
}

func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		s.ch = eof
	}
}

// peek returns the byte following the current character without consuming
// it, or 0 at end of input.
func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

func (s *Scanner) error(offs int, msg string) {
	s.ErrorCount++
	if s.err != nil {
		s.err(s.file.Pos(offs).Position(), msg)
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.next()
	}
}

// skipComment consumes a '#'-introduced comment up to (not including) the
// next line break or end of input. The initial '#' has already been
// consumed.
func (s *Scanner) skipComment() {
	for s.ch != '\n' && s.ch != eof {
		s.next()
	}
}

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanNumber() (token.Token, string) {
	offs := s.offset
	tok := token.INT

	for isDigit(s.ch) {
		s.next()
	}
	if s.ch == '.' && isDigit(rune(s.peekAfterDot())) {
		tok = token.FLOAT
		s.next() // consume '.'
		for isDigit(s.ch) {
			s.next()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		look := s.rdOffset
		if look < len(s.src) && (s.src[look] == '+' || s.src[look] == '-') {
			look++
		}
		if look < len(s.src) && s.src[look] >= '0' && s.src[look] <= '9' {
			tok = token.FLOAT
			s.next() // consume 'e'/'E'
			if s.ch == '+' || s.ch == '-' {
				s.next()
			}
			for isDigit(s.ch) {
				s.next()
			}
		}
	}
	return tok, string(s.src[offs:s.offset])
}

// peekAfterDot reports the byte following the '.' currently at s.ch,
// without consuming anything. Returns 0 past end of input.
func (s *Scanner) peekAfterDot() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

// scanString scans a string literal delimited by quote, one of '"', '\'',
// or '`'. The opening quote has already been consumed.
func (s *Scanner) scanString(quote rune) string {
	offs := s.offset - 1
	for {
		ch := s.ch
		if ch == '\n' || ch == eof {
			s.error(offs, "string literal not terminated")
			break
		}
		s.next()
		if ch == quote {
			break
		}
		if ch == '\\' && quote != '`' {
			s.scanEscape(quote)
		}
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanEscape(quote rune) {
	switch s.ch {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', quote, '"', '\'', '`':
		s.next()
	case 'x', 'u', 'U':
		n := map[rune]int{'x': 2, 'u': 4, 'U': 8}[s.ch]
		s.next()
		for ; n > 0; n-- {
			if !isHexDigit(s.ch) {
				s.error(s.offset, "illegal character in escape sequence")
				return
			}
			s.next()
		}
	default:
		if s.ch == eof {
			s.error(s.offset, "escape sequence not terminated")
			return
		}
		s.error(s.offset, fmt.Sprintf("unknown escape sequence %q", s.ch))
	}
}

func isHexDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func (s *Scanner) switch2(tok0, tok1 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}

// Scan scans the next token and returns its position, kind, and literal
// text (populated for IDENT, INT, FLOAT, STRING; empty otherwise except
// for ILLEGAL, where it is the offending character).
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
	s.skipWhitespace()
	for s.ch == '#' {
		s.next()
		s.skipComment()
		s.skipWhitespace()
	}

	pos = s.file.Pos(s.offset)

	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.Lookup(lit)
	case isDigit(ch):
		tok, lit = s.scanNumber()
	default:
		s.next()
		switch ch {
		case eof:
			tok = token.EOF
		case '"', '\'', '`':
			tok = token.STRING
			lit = s.scanString(ch)
		case ':':
			tok = token.COLON
		case ',':
			tok = token.COMMA
		case ';':
			tok = token.ELSE
		case '?':
			tok = token.THEN
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case '+':
			tok = token.ADD
		case '-':
			if s.ch == '>' {
				s.next()
				tok = token.ARROW
			} else {
				tok = token.SUB
			}
		case '*':
			tok = token.MUL
		case '/':
			tok = token.QUO
		case '%':
			tok = token.REM
		case '^':
			tok = token.POW
		case '.':
			tok = token.PERIOD
		case '<':
			tok = s.switch2(token.LSS, token.LEQ)
		case '>':
			tok = s.switch2(token.GTR, token.GEQ)
		case '=':
			tok = s.switch2(token.BIND, token.EQL)
		case '!':
			if s.ch == '=' {
				s.next()
				tok = token.NEQ
			} else {
				s.error(s.file.Offset(pos), "illegal character '!'")
				tok = token.ILLEGAL
				lit = "!"
			}
		case '|':
			tok = token.OR
		case '&':
			tok = token.AND
		default:
			s.error(s.file.Offset(pos), fmt.Sprintf("illegal character %#U", ch))
			tok = token.ILLEGAL
			lit = string(ch)
		}
	}
	return
}
