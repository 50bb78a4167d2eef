// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typedom implements the per-unit factory functions and the
// installable registry that adapts a host element's style interface into
// a stylemap.Map.
package typedom

import "github.com/oy3o/css-typed-om-polyfill/cssvalue"

func unit(v float64, u string) *cssvalue.UnitValue {
	value, err := cssvalue.NewUnit(v, u)
	if err != nil {
		// Every unit token passed from this file is one of the table's
		// own known units, so NewUnit cannot fail here.
		panic(err)
	}
	return value
}

// Number returns a dimensionless UnitValue, the CSS.number(v) factory.
func Number(v float64) *cssvalue.UnitValue { return cssvalue.Num(v) }

// Percent returns a UnitValue in the percent category; registered under
// the name "percent" rather than the literal "%".
func Percent(v float64) *cssvalue.UnitValue { return unit(v, "percent") }

// Length units.
func Px(v float64) *cssvalue.UnitValue   { return unit(v, "px") }
func Cm(v float64) *cssvalue.UnitValue   { return unit(v, "cm") }
func Mm(v float64) *cssvalue.UnitValue   { return unit(v, "mm") }
func In(v float64) *cssvalue.UnitValue   { return unit(v, "in") }
func Pt(v float64) *cssvalue.UnitValue   { return unit(v, "pt") }
func Pc(v float64) *cssvalue.UnitValue   { return unit(v, "pc") }
func Em(v float64) *cssvalue.UnitValue   { return unit(v, "em") }
func Rem(v float64) *cssvalue.UnitValue  { return unit(v, "rem") }
func Vw(v float64) *cssvalue.UnitValue   { return unit(v, "vw") }
func Vh(v float64) *cssvalue.UnitValue   { return unit(v, "vh") }
func Vmin(v float64) *cssvalue.UnitValue { return unit(v, "vmin") }
func Vmax(v float64) *cssvalue.UnitValue { return unit(v, "vmax") }
func Ch(v float64) *cssvalue.UnitValue   { return unit(v, "ch") }
func Ex(v float64) *cssvalue.UnitValue   { return unit(v, "ex") }
func Q(v float64) *cssvalue.UnitValue    { return unit(v, "q") }
func Vi(v float64) *cssvalue.UnitValue   { return unit(v, "vi") }
func Vb(v float64) *cssvalue.UnitValue   { return unit(v, "vb") }

// Angle units.
func Deg(v float64) *cssvalue.UnitValue  { return unit(v, "deg") }
func Rad(v float64) *cssvalue.UnitValue  { return unit(v, "rad") }
func Grad(v float64) *cssvalue.UnitValue { return unit(v, "grad") }
func Turn(v float64) *cssvalue.UnitValue { return unit(v, "turn") }

// Time units.
func S(v float64) *cssvalue.UnitValue  { return unit(v, "s") }
func Ms(v float64) *cssvalue.UnitValue { return unit(v, "ms") }

// Frequency units.
func Hz(v float64) *cssvalue.UnitValue  { return unit(v, "hz") }
func Khz(v float64) *cssvalue.UnitValue { return unit(v, "khz") }

// Resolution units.
func Dpi(v float64) *cssvalue.UnitValue  { return unit(v, "dpi") }
func Dpcm(v float64) *cssvalue.UnitValue { return unit(v, "dpcm") }
func Dppx(v float64) *cssvalue.UnitValue { return unit(v, "dppx") }

// Flex unit.
func Fr(v float64) *cssvalue.UnitValue { return unit(v, "fr") }
