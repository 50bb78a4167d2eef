// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import (
	"math"
	"strconv"
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/oy3o/css-typed-om-polyfill/dimension"
)

// UnitValue is a single number paired with a canonical unit token ("px",
// "deg", "percent", "number", ...).
type UnitValue struct {
	Value float64
	Unit  string
}

func (*UnitValue) styleValue() {}

// NewUnit builds a UnitValue, canonicalizing and validating unit.
func NewUnit(value float64, unit string) (*UnitValue, error) {
	canon := dimension.Canonicalize(unit)
	if !dimension.IsUnit(canon) {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "unknown unit %q", unit)
	}
	return &UnitValue{Value: value, Unit: canon}, nil
}

// Num builds a dimensionless UnitValue, the equivalent of a plain number
// operand in calc().
func Num(v float64) *UnitValue {
	return &UnitValue{Value: v, Unit: "number"}
}

// String renders value and unit: a bare number for
// "number", "<n>%" for "percent", "<n><unit>" otherwise. The number is
// formatted with up to six decimal places, trailing zeros
// trimmed, matching the source's serialization precision.
func (u *UnitValue) String() string {
	n := formatNumber(u.Value)
	switch u.Unit {
	case "number":
		return n
	case "percent":
		return n + "%"
	default:
		return n + u.Unit
	}
}

func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

// SetValue replaces u's numeric value, rejecting NaN and infinities so a
// UnitValue can never hold an unrepresentable magnitude after construction.
func (u *UnitValue) SetValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "non-finite value %v", v)
	}
	u.Value = v
	return nil
}

// Type returns the unit's dimension-type vector.
func (u *UnitValue) Type() (dimension.Vector, error) {
	return dimension.TypeVectorOf(u.Unit)
}

// Category returns the unit's category (length, angle, percent, ...).
func (u *UnitValue) Category() (dimension.Category, error) {
	return dimension.CategoryOf(u.Unit)
}

// sameUnit reports whether two UnitValues share a canonical unit token,
// the condition under which the simplifier folds them by adding values.
func (u *UnitValue) sameUnit(other *UnitValue) bool {
	return u.Unit == other.Unit
}

// Add returns a new UnitValue with u's value plus other's, provided they
// share the same unit. This is a convenience alias for the common case
// covered generally by NewSum; it does not accept mixed length/percent
// operands (use NewSum for that).
func (u *UnitValue) Add(other *UnitValue) (*UnitValue, error) {
	if !u.sameUnit(other) {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "cannot add %q and %q", u.Unit, other.Unit)
	}
	return &UnitValue{Value: u.Value + other.Value, Unit: u.Unit}, nil
}

// Sub returns u minus other, provided they share the same unit.
func (u *UnitValue) Sub(other *UnitValue) (*UnitValue, error) {
	if !u.sameUnit(other) {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "cannot subtract %q from %q", other.Unit, u.Unit)
	}
	return &UnitValue{Value: u.Value - other.Value, Unit: u.Unit}, nil
}

// Mul returns u scaled by a dimensionless factor.
func (u *UnitValue) Mul(factor float64) *UnitValue {
	return &UnitValue{Value: u.Value * factor, Unit: u.Unit}
}

// Div returns u divided by a dimensionless, non-zero divisor.
func (u *UnitValue) Div(divisor float64) (*UnitValue, error) {
	if divisor == 0 {
		return nil, cssvalueerr.New(cssvalueerr.RangeViolation, "division by zero")
	}
	return &UnitValue{Value: u.Value / divisor, Unit: u.Unit}, nil
}
