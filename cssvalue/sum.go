// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import (
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
)

// NewSum builds a MathSum, applying the algebraic simplifier: it flattens
// nested sums, checks additive type compatibility, and folds terms that
// share a canonical unit by adding their values. A single surviving term
// is returned unwrapped, matching the source's rule that arithmetic
// helpers return the simplest equivalent node rather than always
// wrapping in calc() (Design Note 9.2).
func NewSum(terms ...Numeric) (Numeric, error) {
	flat := flattenSum(terms)
	if len(flat) == 0 {
		return nil, cssvalueerr.New(cssvalueerr.MissingOperand, "sum requires at least one term")
	}

	if anyContainsVariable(flat) {
		if len(flat) == 1 {
			return flat[0], nil
		}
		return &MathSum{Terms: flat}, nil
	}

	if _, err := typeOfAll(flat); err != nil {
		return nil, err
	}

	folded := foldSameUnit(flat)
	if len(folded) == 1 {
		return folded[0], nil
	}
	return &MathSum{Terms: folded}, nil
}

// flattenSum splices any *MathSum term's own terms into the result,
// implementing associativity: sum(sum(a, b), c) == sum(a, b, c).
func flattenSum(terms []Numeric) []Numeric {
	var out []Numeric
	for _, t := range terms {
		if s, ok := t.(*MathSum); ok {
			out = append(out, flattenSum(s.Terms)...)
			continue
		}
		out = append(out, t)
	}
	return out
}

func anyContainsVariable(terms []Numeric) bool {
	for _, t := range terms {
		if containsVariable(t) {
			return true
		}
	}
	return false
}

// foldSameUnit groups UnitValue terms by canonical unit and adds their
// values together; the folded unit terms come first, in order of each
// unit's first occurrence. Non-unit numeric terms (math nodes) pass
// through unchanged and follow them, in their original order.
func foldSameUnit(terms []Numeric) []Numeric {
	var order []string
	sums := map[string]float64{}
	var out []Numeric
	for _, t := range terms {
		u, ok := t.(*UnitValue)
		if !ok {
			out = append(out, t)
			continue
		}
		if _, seen := sums[u.Unit]; !seen {
			order = append(order, u.Unit)
		}
		sums[u.Unit] += u.Value
	}
	folded := make([]Numeric, 0, len(order)+len(out))
	for _, unit := range order {
		folded = append(folded, &UnitValue{Value: sums[unit], Unit: unit})
	}
	folded = append(folded, out...)
	return folded
}
