// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import (
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/oy3o/css-typed-om-polyfill/dimension"
)

// MathSum is a flattened n-ary sum of Numeric terms. Literal construction
// (&MathSum{Terms: ...}) never folds; use NewSum to get the algebraic
// simplifier.
type MathSum struct {
	Terms []Numeric
}

func (*MathSum) styleValue() {}

// MathProduct is a flattened n-ary product of Numeric factors. Literal
// construction never folds; use NewProduct.
type MathProduct struct {
	Factors []Numeric
}

func (*MathProduct) styleValue() {}

// MathNegate wraps a single operand, meaning its additive inverse.
type MathNegate struct {
	Operand Numeric
}

func (*MathNegate) styleValue() {}

// MathInvert wraps a single operand, meaning its multiplicative inverse.
type MathInvert struct {
	Operand Numeric
}

func (*MathInvert) styleValue() {}

// MathMin is an n-ary min() of additively-compatible Numeric operands.
type MathMin struct {
	Operands []Numeric
}

func (*MathMin) styleValue() {}

// MathMax is an n-ary max() of additively-compatible Numeric operands.
type MathMax struct {
	Operands []Numeric
}

func (*MathMax) styleValue() {}

// MathClamp is a clamp(min, value, max) of three additively-compatible
// Numeric operands.
type MathClamp struct {
	Min, Value, Max Numeric
}

func (*MathClamp) styleValue() {}

// --- Type() ---

func (s *MathSum) Type() (dimension.Vector, error) {
	return typeOfAll(s.Terms)
}

func (p *MathProduct) Type() (dimension.Vector, error) {
	var out dimension.Vector
	hasVar := false
	for _, f := range p.Factors {
		if containsVariable(f) {
			hasVar = true
			continue
		}
		var v dimension.Vector
		var err error
		if inv, ok := f.(*MathInvert); ok {
			v, err = inv.Operand.Type()
			if err != nil {
				return dimension.Zero, err
			}
			v = dimension.Sub(dimension.Zero, v)
		} else {
			v, err = f.Type()
			if err != nil {
				return dimension.Zero, err
			}
		}
		out = dimension.Add(out, v)
	}
	if hasVar {
		return dimension.Zero, nil
	}
	return out, nil
}

func (n *MathNegate) Type() (dimension.Vector, error) {
	if containsVariable(n.Operand) {
		return dimension.Zero, nil
	}
	return n.Operand.Type()
}

func (inv *MathInvert) Type() (dimension.Vector, error) {
	if containsVariable(inv.Operand) {
		return dimension.Zero, nil
	}
	v, err := inv.Operand.Type()
	if err != nil {
		return dimension.Zero, err
	}
	return dimension.Sub(dimension.Zero, v), nil
}

func (m *MathMin) Type() (dimension.Vector, error) { return typeOfAll(m.Operands) }
func (m *MathMax) Type() (dimension.Vector, error) { return typeOfAll(m.Operands) }

func (c *MathClamp) Type() (dimension.Vector, error) {
	return typeOfAll([]Numeric{c.Min, c.Value, c.Max})
}

// typeOfAll checks that every operand's type is additively compatible
// with the running merged vector, returning TypeMismatch if not. An
// operand whose subtree contains a variable reference is skipped:
// the presence of var() makes the overall type
// indeterminate rather than an error.
func typeOfAll(operands []Numeric) (dimension.Vector, error) {
	var merged dimension.Vector
	set := false
	hasVar := false
	for _, op := range operands {
		if containsVariable(op) {
			hasVar = true
			continue
		}
		v, err := op.Type()
		if err != nil {
			return dimension.Zero, err
		}
		if !set {
			merged = v
			set = true
			continue
		}
		if !dimension.Compatible(merged, v) {
			return dimension.Zero, cssvalueerr.New(cssvalueerr.TypeMismatch, "additive type mismatch")
		}
		merged = dimension.Merge(merged, v)
	}
	if hasVar {
		return dimension.Zero, nil
	}
	return merged, nil
}

// containsVariable reports whether v's subtree holds a
// VariableReferenceValue, the condition that suppresses folding and
// makes Type() indeterminate rather than erroring.
func containsVariable(v StyleValue) bool {
	switch n := v.(type) {
	case *VariableReferenceValue:
		return true
	case *MathSum:
		for _, t := range n.Terms {
			if containsVariable(t) {
				return true
			}
		}
	case *MathProduct:
		for _, f := range n.Factors {
			if containsVariable(f) {
				return true
			}
		}
	case *MathNegate:
		return containsVariable(n.Operand)
	case *MathInvert:
		return containsVariable(n.Operand)
	case *MathMin:
		for _, o := range n.Operands {
			if containsVariable(o) {
				return true
			}
		}
	case *MathMax:
		for _, o := range n.Operands {
			if containsVariable(o) {
				return true
			}
		}
	case *MathClamp:
		return containsVariable(n.Min) || containsVariable(n.Value) || containsVariable(n.Max)
	}
	return false
}

// --- String() ---

// innerOf renders v as it appears directly inside a surrounding calc()
// wrapper: MathSum/MathProduct/MathNegate/MathInvert elide their own
// "calc(...)" wrapper since it's redundant when already nested inside
// one. MathMin/MathMax/MathClamp keep their own
// function-call wrapper regardless of nesting, since that elision is
// specific to calc().
func innerOf(v Numeric) string {
	switch n := v.(type) {
	case *MathSum:
		return sumInner(n)
	case *MathProduct:
		return productInner(n)
	case *MathNegate:
		return "-1 * " + wrapSumOrNegate(n.Operand)
	case *MathInvert:
		return "1 / " + wrapSumOrNegate(n.Operand)
	default:
		return v.String()
	}
}

func (s *MathSum) String() string { return "calc(" + sumInner(s) + ")" }

func sumInner(s *MathSum) string {
	var sb strings.Builder
	for i, t := range s.Terms {
		if i == 0 {
			sb.WriteString(innerOf(t))
			continue
		}
		if neg, ok := t.(*MathNegate); ok {
			sb.WriteString(" - ")
			sb.WriteString(wrapSumOrNegate(neg.Operand))
			continue
		}
		sb.WriteString(" + ")
		sb.WriteString(innerOf(t))
	}
	return sb.String()
}

func (p *MathProduct) String() string { return "calc(" + productInner(p) + ")" }

func productInner(p *MathProduct) string {
	var sb strings.Builder
	for i, f := range p.Factors {
		if i == 0 {
			sb.WriteString(wrapFactor(f))
			continue
		}
		if inv, ok := f.(*MathInvert); ok {
			sb.WriteString(" / ")
			sb.WriteString(wrapSumOrNegate(inv.Operand))
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(wrapFactor(f))
	}
	return sb.String()
}

// wrapFactor parenthesizes a factor that needs it inside a product: a
// raw sum, since '*'/'/' bind tighter than '+'/'-'.
func wrapFactor(v Numeric) string {
	if _, ok := v.(*MathSum); ok {
		return "(" + innerOf(v) + ")"
	}
	return innerOf(v)
}

// wrapSumOrNegate parenthesizes an operand of MathNegate/MathInvert (or
// the right-hand side of a subtraction/division) when it is itself a sum
// or a negation, per the literal serialization rule.
func wrapSumOrNegate(v Numeric) string {
	switch v.(type) {
	case *MathSum, *MathNegate:
		return "(" + innerOf(v) + ")"
	default:
		return innerOf(v)
	}
}

func (n *MathNegate) String() string { return "calc(" + innerOf(n) + ")" }
func (inv *MathInvert) String() string { return "calc(" + innerOf(inv) + ")" }

func (m *MathMin) String() string { return "min(" + joinOperands(m.Operands) + ")" }
func (m *MathMax) String() string { return "max(" + joinOperands(m.Operands) + ")" }

func (c *MathClamp) String() string {
	return "clamp(" + c.Min.String() + ", " + c.Value.String() + ", " + c.Max.String() + ")"
}

func joinOperands(ops []Numeric) string {
	parts := make([]string, len(ops))
	for i, o := range ops {
		parts[i] = o.String()
	}
	return strings.Join(parts, ", ")
}
