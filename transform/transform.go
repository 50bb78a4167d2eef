// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the transform-function component tree:
// parsing a CSS "transform" property value into a TransformValue, and
// folding that value into a caller-supplied matrix representation.
//
// Argument-count validation per function is grounded on the argument
// counting and is2D propagation used by esbuild's CSS transform
// declaration mangler (reused here purely to recognize and validate
// arity, not for the mangling/optimization that code performs).
package transform

import (
	"fmt"
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
)

// Component is one function in a transform list.
type Component interface {
	String() string
	Is3D() bool
}

// HostMatrix is the caller-supplied matrix type folded over by ToMatrix.
// A real host would back this with whatever matrix implementation it
// already has (a 4x4 float64 array, a graphics library type, ...).
type HostMatrix interface {
	Multiply(other HostMatrix) HostMatrix
}

// MatrixFactory builds a HostMatrix from a single transform component's
// canonical string form, e.g. "translate(10px, 0px)".
type MatrixFactory func(componentText string) (HostMatrix, error)

// TransformValue is an ordered list of transform components.
type TransformValue struct {
	Components []Component
}

func (t *TransformValue) String() string {
	parts := make([]string, len(t.Components))
	for i, c := range t.Components {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Is2D reports whether every component in the list is 2-D.
func (t *TransformValue) Is2D() bool {
	for _, c := range t.Components {
		if c.Is3D() {
			return false
		}
	}
	return true
}

// ToMatrix folds the transform list into a single matrix: seed with
// identity, then for each component multiply by factory(component.String()).
func (t *TransformValue) ToMatrix(identity HostMatrix, factory MatrixFactory) (HostMatrix, error) {
	acc := identity
	for _, c := range t.Components {
		m, err := factory(c.String())
		if err != nil {
			return nil, err
		}
		acc = acc.Multiply(m)
	}
	return acc, nil
}

// Translate is translate()/translate3d()/translateX()/Y()/Z().
type Translate struct {
	X, Y, Z Numeric3
	is3D    bool
}

func (t *Translate) Is3D() bool { return t.is3D }

func (t *Translate) String() string {
	if t.is3D {
		return fmt.Sprintf("translate3d(%s, %s, %s)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("translate(%s, %s)", t.X, t.Y)
}

// Rotate is rotate()/rotate3d()/rotateX()/Y()/Z().
type Rotate struct {
	AxisX, AxisY, AxisZ float64
	Angle               Numeric3
	is3D                bool
}

func (r *Rotate) Is3D() bool { return r.is3D }

func (r *Rotate) String() string {
	if r.is3D {
		return fmt.Sprintf("rotate3d(%s, %s, %s, %s)", formatFloat(r.AxisX), formatFloat(r.AxisY), formatFloat(r.AxisZ), r.Angle)
	}
	return fmt.Sprintf("rotate(%s)", r.Angle)
}

// Scale is scale()/scale3d()/scaleX()/Y()/Z().
type Scale struct {
	X, Y, Z float64
	is3D    bool
}

func (s *Scale) Is3D() bool { return s.is3D }

func (s *Scale) String() string {
	if s.is3D {
		return fmt.Sprintf("scale3d(%s, %s, %s)", formatFloat(s.X), formatFloat(s.Y), formatFloat(s.Z))
	}
	return fmt.Sprintf("scale(%s, %s)", formatFloat(s.X), formatFloat(s.Y))
}

// Skew is skew(x[, y]), holding both angles.
type Skew struct {
	X, Y Numeric3
}

func (*Skew) Is3D() bool { return false }

func (s *Skew) String() string { return fmt.Sprintf("skew(%s, %s)", s.X, s.Y) }

// SkewX is skewX(a), kept distinct from Skew since skewX/skewY are their
// own serialization forms rather than a single-axis Skew.
type SkewX struct {
	Angle Numeric3
}

func (*SkewX) Is3D() bool { return false }

func (s *SkewX) String() string { return fmt.Sprintf("skewX(%s)", s.Angle) }

// SkewY is skewY(a).
type SkewY struct {
	Angle Numeric3
}

func (*SkewY) Is3D() bool { return false }

func (s *SkewY) String() string { return fmt.Sprintf("skewY(%s)", s.Angle) }

// Perspective is perspective(length).
type Perspective struct {
	Length Numeric3
}

func (*Perspective) Is3D() bool { return true }

func (p *Perspective) String() string { return fmt.Sprintf("perspective(%s)", p.Length) }

// MatrixComponent is matrix(a, b, c, d, e, f): always 2-D.
type MatrixComponent struct {
	Values [6]float64
}

func (*MatrixComponent) Is3D() bool { return false }

func (m *MatrixComponent) String() string {
	parts := make([]string, 6)
	for i, v := range m.Values {
		parts[i] = formatFloat(v)
	}
	return "matrix(" + strings.Join(parts, ", ") + ")"
}

// Numeric3 is the subset of cssvalue.StyleValue a transform argument may
// be: a length, angle, or number, already folded by the calc()
// sublanguage's smart builders.
type Numeric3 = cssvalue.StyleValue

func formatFloat(v float64) string {
	return cssvalue.Num(v).String()
}
