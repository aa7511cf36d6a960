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

// Package errors defines the structured error taxonomy shared by the
// parser and evaluator.
//
// The pivotal type is Error: the information it carries can be retrieved
// with Position, Path, and Print.
package errors

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"lingolang.dev/go/token"
)

// Kind tags the taxonomy of error an Error belongs to.
type Kind int

const (
	_ Kind = iota
	ParseError
	OperatorError
	ApplicationError
	DotError
	BuiltinError
	HostError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case OperatorError:
		return "OperatorError"
	case ApplicationError:
		return "ApplicationError"
	case DotError:
		return "DotError"
	case BuiltinError:
		return "BuiltinError"
	case HostError:
		return "HostError"
	default:
		return "Error"
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Unwrap returns the result of calling err's Unwrap method, if it has one.
func Unwrap(err error) error { return errors.Unwrap(err) }

// Error is the common error type produced by this module's packages.
type Error interface {
	error

	// Kind classifies the error for programmatic dispatch.
	Kind() Kind

	// Position returns the primary source position of the error, or
	// token.NoPos if none is available (e.g. a HostError from a host
	// callable that did not report one).
	Position() token.Pos

	// Path returns the namespace-dot path active when the error
	// occurred, outermost first. It is nil when subcontexting was not
	// involved.
	Path() []string
}

var _ Error = (*baseError)(nil)

type baseError struct {
	kind Kind
	pos  token.Pos
	msg  string
	path []string
	wrap error
}

func (e *baseError) Error() string {
	msg := e.msg
	if e.wrap != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.wrap)
	}
	if len(e.path) > 0 {
		return strings.Join(e.path, ".") + ": " + msg
	}
	return msg
}

func (e *baseError) Kind() Kind          { return e.kind }
func (e *baseError) Position() token.Pos { return e.pos }
func (e *baseError) Path() []string      { return e.path }
func (e *baseError) Unwrap() error       { return e.wrap }

// Newf creates an Error of the given kind at pos with a formatted message.
func Newf(kind Kind, pos token.Pos, format string, args ...interface{}) Error {
	return &baseError{kind: kind, pos: pos, msg: fmt.Sprintf(format, args...)}
}

// Wrapf creates an Error of the given kind at pos, wrapping child for
// additional context (e.g. a HostError wrapping the host callable's own
// error).
func Wrapf(kind Kind, pos token.Pos, child error, format string, args ...interface{}) Error {
	return &baseError{kind: kind, pos: pos, msg: fmt.Sprintf(format, args...), wrap: child}
}

// WithPath returns a copy of err with name prepended to its namespace path,
// so that repeated calls from inner to outer frames leave the path
// outermost first. It is used by the subcontexting operator to annotate
// errors raised while evaluating within a pushed namespace frame. An err
// not created by this package is returned unchanged.
func WithPath(err Error, name string) Error {
	b, ok := err.(*baseError)
	if !ok {
		return err
	}
	cp := *b
	cp.path = append([]string{name}, cp.path...)
	return &cp
}

// Operator builds the OperatorError for a binary operator applied to an
// undefined pair of kinds, matching the exact wording spec.md mandates.
func Operator(pos token.Pos, op, leftKind, rightKind string) Error {
	return Newf(OperatorError, pos, "%s operation not defined between %s and %s", op, leftKind, rightKind)
}

// OperatorUnary builds the OperatorError for a unary (single-operand)
// context, e.g. comparisons against unorderable kinds.
func OperatorUnary(pos token.Pos, op, kind string) Error {
	return Newf(OperatorError, pos, "%s operation not defined for %s", op, kind)
}

// Builtin builds the BuiltinError for a built-in rejecting its argument's
// kind.
func Builtin(pos token.Pos, operation, kind string) Error {
	return Newf(BuiltinError, pos, "%s not defined for %s", operation, kind)
}

// Dot builds the fixed-message DotError for a non-namespace left operand
// of '.'.
func Dot(pos token.Pos) Error {
	return Newf(DotError, pos, "namespace expected on the left of '.'")
}

// Host wraps an error returned by a host-supplied callable.
func Host(pos token.Pos, err error) Error {
	return Wrapf(HostError, pos, err, "host callable failed")
}

// List aggregates multiple Errors, e.g. several parse errors found before
// the parser gave up, or (NB: evaluation is fail-fast per spec, so List is
// only ever used by the parser).
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

func (l List) Kind() Kind          { return l[0].Kind() }
func (l List) Position() token.Pos { return l[0].Position() }
func (l List) Path() []string      { return l[0].Path() }

// Add appends err to the list.
func (l *List) Add(err Error) { *l = append(*l, err) }

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Sort orders the list by source position, then message, for stable
// diagnostic output.
func (l List) Sort() {
	slices.SortFunc(l, func(a, b Error) int {
		if c := a.Position().Compare(b.Position()); c != 0 {
			return c
		}
		return cmp.Compare(a.Error(), b.Error())
	})
}

// Print writes one line per error in err to w. If err is not a List, its
// single message is written.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var list List
	if errors.As(err, &list) {
		for _, e := range list {
			fmt.Fprintln(w, formatOne(e))
		}
		return
	}
	var e Error
	if errors.As(err, &e) {
		fmt.Fprintln(w, formatOne(e))
		return
	}
	fmt.Fprintln(w, err)
}

func formatOne(e Error) string {
	pos := e.Position()
	if pos.IsValid() {
		return fmt.Sprintf("%s: %s", pos, e.Error())
	}
	return e.Error()
}
