// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import "github.com/oy3o/css-typed-om-polyfill/cssvalueerr"

// NewProduct builds a MathProduct, applying the algebraic simplifier: it
// flattens nested products, folds pure-number scalar factors together,
// and distributes a scalar product over a single sum factor when no
// other dimensioned factor is present. A zero scalar with no variable
// operands collapses the whole product to UnitValue(0, "number")
// regardless of any dimensioned factor. At most one non-scalar
// (non-"number") factor is permitted, per the additive-numeric-value
// multiplication rule: multiplying two dimensioned quantities together
// has no representable CSS unit.
func NewProduct(factors ...Numeric) (Numeric, error) {
	flat := flattenProduct(factors)
	if len(flat) == 0 {
		return nil, cssvalueerr.New(cssvalueerr.MissingOperand, "product requires at least one factor")
	}

	if anyContainsVariable(flat) {
		if len(flat) == 1 {
			return flat[0], nil
		}
		return &MathProduct{Factors: flat}, nil
	}

	scalar := 1.0
	var dimensioned []Numeric
	for _, f := range flat {
		if u, ok := f.(*UnitValue); ok && u.Unit == "number" {
			scalar *= u.Value
			continue
		}
		dimensioned = append(dimensioned, f)
	}

	if scalar == 0 {
		return &UnitValue{Value: 0, Unit: "number"}, nil
	}

	if len(dimensioned) > 1 {
		return nil, cssvalueerr.New(cssvalueerr.TypeMismatch, "cannot multiply two dimensioned values")
	}

	if len(dimensioned) == 0 {
		return &UnitValue{Value: scalar, Unit: "number"}, nil
	}

	only := dimensioned[0]

	if sum, ok := only.(*MathSum); ok {
		distributed := make([]Numeric, len(sum.Terms))
		for i, term := range sum.Terms {
			scaled, err := scaleTerm(term, scalar)
			if err != nil {
				return nil, err
			}
			distributed[i] = scaled
		}
		return NewSum(distributed...)
	}

	if u, ok := only.(*UnitValue); ok {
		return &UnitValue{Value: u.Value * scalar, Unit: u.Unit}, nil
	}

	if scalar == 1 {
		return only, nil
	}
	if scalar == -1 {
		return NewNegate(only), nil
	}

	factorsOut := []Numeric{&UnitValue{Value: scalar, Unit: "number"}, only}
	return &MathProduct{Factors: factorsOut}, nil
}

// scaleTerm multiplies a single sum term by a scalar, used when
// distributing a product's scalar factor over a sum factor.
func scaleTerm(term Numeric, scalar float64) (Numeric, error) {
	if u, ok := term.(*UnitValue); ok {
		return &UnitValue{Value: u.Value * scalar, Unit: u.Unit}, nil
	}
	return NewProduct(&UnitValue{Value: scalar, Unit: "number"}, term)
}

// flattenProduct splices any *MathProduct factor's own factors into the
// result, implementing associativity.
func flattenProduct(factors []Numeric) []Numeric {
	var out []Numeric
	for _, f := range factors {
		if p, ok := f.(*MathProduct); ok {
			out = append(out, flattenProduct(p.Factors)...)
			continue
		}
		out = append(out, f)
	}
	return out
}
