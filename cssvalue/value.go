// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssvalue implements the typed value-node tree for CSS property
// values: numeric, math, keyword, unparsed, and variable-reference
// nodes, each with a deterministic serialization. The algebraic
// simplifier (sum.go, product.go, negate.go, invert.go) folds constants,
// flattens associative sums, distributes scalars over sums, and enforces
// dimensional type compatibility — it runs inside the smart-builder
// functions (NewSum, NewProduct, NewNegate, NewInvert), never inside a
// node's own literal construction, so that a tree built via these
// builders is always already normalized.
package cssvalue

import (
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/dimension"
)

// StyleValue is the sum type all value nodes implement. Every node
// serializes deterministically via String().
type StyleValue interface {
	String() string
	styleValue()
}

// Numeric is implemented by nodes that carry a dimension type: UnitValue
// and all Math* nodes.
type Numeric interface {
	StyleValue
	// Type reports the node's dimension-type vector, or a TypeMismatch
	// error if its children are not additively compatible. A variable
	// reference anywhere in the subtree makes the type indeterminate:
	// implementations return the zero vector, not an error, in that case.
	Type() (dimension.Vector, error)
}

// KeywordValue is a single CSS identifier token, e.g. "auto" or "block".
type KeywordValue struct {
	Identifier string
}

func (*KeywordValue) styleValue() {}

func (k *KeywordValue) String() string { return k.Identifier }

// NewKeyword returns a KeywordValue for the given identifier text.
func NewKeyword(identifier string) *KeywordValue {
	return &KeywordValue{Identifier: identifier}
}

// UnparsedMember is one element of an UnparsedValue: either a raw text
// fragment or a variable reference.
type UnparsedMember struct {
	Text string
	Var  *VariableReferenceValue
}

func (m UnparsedMember) String() string {
	if m.Var != nil {
		return m.Var.String()
	}
	return m.Text
}

// UnparsedValue is a verbatim fallback: an ordered sequence of raw text
// fragments interleaved with variable references.
type UnparsedValue struct {
	Members []UnparsedMember
}

func (*UnparsedValue) styleValue() {}

func (u *UnparsedValue) String() string {
	var sb strings.Builder
	for _, m := range u.Members {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// NewUnparsed builds an UnparsedValue from plain text fragments, with no
// embedded variable references.
func NewUnparsed(fragments ...string) *UnparsedValue {
	members := make([]UnparsedMember, len(fragments))
	for i, f := range fragments {
		members[i] = UnparsedMember{Text: f}
	}
	return &UnparsedValue{Members: members}
}

// Len returns the number of members, mirroring the source's "length".
func (u *UnparsedValue) Len() int { return len(u.Members) }

// Item returns the i'th member's text form, mirroring the source's
// "item". It panics on an out-of-range index, matching the source's
// bracket-indexing semantics (callers are expected to range-check via
// Len first).
func (u *UnparsedValue) Item(i int) string { return u.Members[i].String() }

// VariableReferenceValue is a var(--name[, fallback]) reference. It is
// not numeric but may participate in math contexts without being folded.
type VariableReferenceValue struct {
	Name     string
	Fallback *UnparsedValue
}

func (*VariableReferenceValue) styleValue() {}

// Type implements Numeric: a variable reference's dimension type is
// always indeterminate until substitution, so it reports the
// dimensionless vector rather than an error. containsVariable is what
// callers actually use to detect this case and suppress folding.
func (v *VariableReferenceValue) Type() (dimension.Vector, error) {
	return dimension.Zero, nil
}

func (v *VariableReferenceValue) String() string {
	if v.Fallback == nil {
		return "var(" + v.Name + ")"
	}
	return "var(" + v.Name + ", " + v.Fallback.String() + ")"
}

// NewVariableReference builds a VariableReferenceValue.
func NewVariableReference(name string, fallback *UnparsedValue) *VariableReferenceValue {
	return &VariableReferenceValue{Name: name, Fallback: fallback}
}

// Equal reports whether two nodes serialize to the same String() text
// (two nil values are equal; nil never equals a non-nil value). Go has no
// notion of a constructor substituting a different instance (Design
// Note 9.2), so tests and callers that need the source's "same reduced
// value" notion use this method instead of identity comparison.
func Equal(a, b StyleValue) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
