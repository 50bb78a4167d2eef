// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

// NewNegate returns the additive inverse of v: a UnitValue negates its
// value directly; a MathNegate cancels with its operand; anything else
// wraps in a MathNegate node.
func NewNegate(v Numeric) Numeric {
	switch n := v.(type) {
	case *UnitValue:
		return &UnitValue{Value: -n.Value, Unit: n.Unit}
	case *MathNegate:
		return n.Operand
	default:
		return &MathNegate{Operand: v}
	}
}
