// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import "github.com/oy3o/css-typed-om-polyfill/cssvalueerr"

// NewInvert returns the multiplicative inverse of v: a dimensionless
// ("number") UnitValue inverts its value directly (RangeViolation if
// zero); a dimensioned UnitValue wraps in a MathInvert node; a MathInvert
// cancels with its operand; anything else wraps in a MathInvert node.
func NewInvert(v Numeric) (Numeric, error) {
	switch n := v.(type) {
	case *UnitValue:
		if n.Unit != "number" {
			// A dimensioned unit has no canonical inverse unit token
			// ("1/px" is not a CSS unit): keep it wrapped so Type()
			// still reports the correct negated vector.
			return &MathInvert{Operand: v}, nil
		}
		if n.Value == 0 {
			return nil, cssvalueerr.New(cssvalueerr.RangeViolation, "cannot invert zero")
		}
		return &UnitValue{Value: 1 / n.Value, Unit: n.Unit}, nil
	case *MathInvert:
		return n.Operand, nil
	default:
		return &MathInvert{Operand: v}, nil
	}
}
