// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import "github.com/oy3o/css-typed-om-polyfill/cssvalueerr"

// NewMin builds a MathMin, checking additive type compatibility across
// all operands (skipping the check, per the indeterminate-type rule,
// wherever a variable reference is present).
func NewMin(operands ...Numeric) (Numeric, error) {
	return newMinMax(operands, false)
}

// NewMax builds a MathMax, checking additive type compatibility across
// all operands.
func NewMax(operands ...Numeric) (Numeric, error) {
	return newMinMax(operands, true)
}

func newMinMax(operands []Numeric, isMax bool) (Numeric, error) {
	if len(operands) == 0 {
		return nil, cssvalueerr.New(cssvalueerr.MissingOperand, "min/max requires at least one operand")
	}
	if _, err := typeOfAll(operands); err != nil {
		return nil, err
	}
	// A single operand has no comparison to make; min(x) and max(x) both
	// just are x.
	if len(operands) == 1 {
		return operands[0], nil
	}
	if isMax {
		return &MathMax{Operands: operands}, nil
	}
	return &MathMin{Operands: operands}, nil
}

// NewClamp builds a MathClamp, checking additive type compatibility of
// the three operands.
func NewClamp(min, value, max Numeric) (Numeric, error) {
	if _, err := typeOfAll([]Numeric{min, value, max}); err != nil {
		return nil, err
	}
	return &MathClamp{Min: min, Value: value, Max: max}, nil
}
