// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssvalueerr provides kind-tagged, context-wrapped error
// handling for the css value engine.
package cssvalueerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind distinguishes the broad categories of failure the engine raises.
type Kind int

const (
	// TypeMismatch covers additive type incompatibility, non-numeric
	// operands to arithmetic, unknown units, non-finite values, and
	// wrong arity to a builtin function.
	TypeMismatch Kind = iota
	// RangeViolation covers division by zero and inversion of zero.
	RangeViolation
	// ParseFailure covers unexpected tokens, unmatched parentheses,
	// invalid numbers, unknown calc() functions, and trailing tokens.
	ParseFailure
	// MissingOperand covers set/append calls with no values.
	MissingOperand
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case RangeViolation:
		return "RangeViolation"
	case ParseFailure:
		return "ParseFailure"
	case MissingOperand:
		return "MissingOperand"
	default:
		return "Unknown"
	}
}

// Error is the main type returned by the engine. It carries a Kind, a
// base error, and an accumulated call-site stack.
type Error struct {
	Kind  Kind
	Base  error
	Stack []string
}

// Wrap wraps err into an *Error of the given kind. No stack trace is
// recorded. It returns nil if err is nil, and returns err unchanged
// (keeping its own kind) if it already is an *Error.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: kind, Base: err}
}

// New returns a new *Error of the given kind with the given text.
func New(kind Kind, text string) error {
	return Wrap(kind, errors.New(text))
}

// Errorf returns a new *Error of the given kind with the given format
// and arguments.
func Errorf(kind Kind, format string, a ...any) error {
	return Wrap(kind, fmt.Errorf(format, a...))
}

// WithContext pushes a description of the enclosing operation onto the
// error's stack and returns the same error for chaining.
func WithContext(err error, context string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	e.Stack = append(e.Stack, context)
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
