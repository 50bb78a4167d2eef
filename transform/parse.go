// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/oy3o/css-typed-om-polyfill/calc"
	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueconfig"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/oy3o/css-typed-om-polyfill/lexer"
)

var zeroLength = mustZeroPx()

func mustZeroPx() cssvalue.StyleValue {
	u, _ := cssvalue.NewUnit(0, "px")
	return u
}

// Parse parses a "transform" property value into a TransformValue.
func Parse(text string) (*TransformValue, error) {
	return ParseWithConfig(text, cssvalueconfig.Default())
}

// ParseWithConfig is Parse with an explicit configuration.
func ParseWithConfig(text string, cfg *cssvalueconfig.Config) (*TransformValue, error) {
	lx := lexer.New(text)
	var components []Component
	for {
		tok := lx.Peek()
		if tok.Kind == lexer.EOF {
			break
		}
		if tok.Kind != lexer.FUNC {
			return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "expected transform function, got %q", tok.Text)
		}
		lx.Next()
		c, err := parseComponent(tok.Text, lx, cfg)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	if len(components) == 0 {
		return nil, cssvalueerr.New(cssvalueerr.MissingOperand, "transform requires at least one function")
	}
	return &TransformValue{Components: components}, nil
}

// parseComponent parses one function's argument list (the '(' has
// already been consumed by the FUNC token) and dispatches on name.
func parseComponent(name string, lx *lexer.Lexer, cfg *cssvalueconfig.Config) (Component, error) {
	args, err := parseArgs(lx, cfg)
	if err != nil {
		return nil, err
	}

	switch name {
	case "translate", "translate3d":
		return newTranslate(args, name == "translate3d")
	case "translatex":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Translate{X: args[0], Y: zeroLength, Z: zeroLength}, nil
		})
	case "translatey":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Translate{X: zeroLength, Y: args[0], Z: zeroLength}, nil
		})
	case "translatez":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Translate{X: zeroLength, Y: zeroLength, Z: args[0], is3D: true}, nil
		})
	case "rotate":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Rotate{Angle: args[0]}, nil
		})
	case "rotate3d":
		return newRotate3D(args)
	case "rotatex":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Rotate{AxisX: 1, Angle: args[0], is3D: true}, nil
		})
	case "rotatey":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Rotate{AxisY: 1, Angle: args[0], is3D: true}, nil
		})
	case "rotatez":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Rotate{AxisZ: 1, Angle: args[0], is3D: true}, nil
		})
	case "scale", "scale3d":
		return newScale(args, name == "scale3d")
	case "scalex":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Scale{X: numberOf(args[0]), Y: 1, Z: 1}, nil
		})
	case "scaley":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Scale{X: 1, Y: numberOf(args[0]), Z: 1}, nil
		})
	case "scalez":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Scale{X: 1, Y: 1, Z: numberOf(args[0]), is3D: true}, nil
		})
	case "skew":
		return newSkew(args)
	case "skewx":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &SkewX{Angle: args[0]}, nil
		})
	case "skewy":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &SkewY{Angle: args[0]}, nil
		})
	case "perspective":
		return requireArgs(args, 1, name, func() (Component, error) {
			return &Perspective{Length: args[0]}, nil
		})
	case "matrix":
		return newMatrix(args)
	default:
		return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "unknown transform function %q", name)
	}
}

func zeroAngle() cssvalue.StyleValue {
	u, _ := cssvalue.NewUnit(0, "deg")
	return u
}

func requireArgs(args []cssvalue.StyleValue, n int, name string, build func() (Component, error)) (Component, error) {
	if len(args) != n {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "%s() requires %d argument(s), got %d", name, n, len(args))
	}
	return build()
}

func newTranslate(args []cssvalue.StyleValue, is3D bool) (Component, error) {
	if is3D {
		if len(args) != 3 {
			return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "translate3d() requires exactly 3 arguments, got %d", len(args))
		}
		return &Translate{X: args[0], Y: args[1], Z: args[2], is3D: true}, nil
	}
	if len(args) < 1 || len(args) > 2 {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "translate() requires 1-2 arguments, got %d", len(args))
	}
	y := zeroLength
	if len(args) == 2 {
		y = args[1]
	}
	return &Translate{X: args[0], Y: y, Z: zeroLength}, nil
}

func newRotate3D(args []cssvalue.StyleValue) (Component, error) {
	if len(args) != 4 {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "rotate3d() requires exactly 4 arguments, got %d", len(args))
	}
	return &Rotate{
		AxisX: numberOf(args[0]), AxisY: numberOf(args[1]), AxisZ: numberOf(args[2]),
		Angle: args[3], is3D: true,
	}, nil
}

func newScale(args []cssvalue.StyleValue, is3D bool) (Component, error) {
	if is3D {
		if len(args) != 3 {
			return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "scale3d() requires exactly 3 arguments, got %d", len(args))
		}
		return &Scale{X: numberOf(args[0]), Y: numberOf(args[1]), Z: numberOf(args[2]), is3D: true}, nil
	}
	if len(args) < 1 || len(args) > 2 {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "scale() requires 1-2 arguments, got %d", len(args))
	}
	x := numberOf(args[0])
	y := x
	if len(args) == 2 {
		y = numberOf(args[1])
	}
	return &Scale{X: x, Y: y, Z: 1}, nil
}

func newSkew(args []cssvalue.StyleValue) (Component, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "skew() requires 1-2 arguments, got %d", len(args))
	}
	y := zeroAngle()
	if len(args) == 2 {
		y = args[1]
	}
	return &Skew{X: args[0], Y: y}, nil
}

func newMatrix(args []cssvalue.StyleValue) (Component, error) {
	if len(args) != 6 {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "matrix() requires exactly 6 arguments, got %d", len(args))
	}
	var m MatrixComponent
	for i, a := range args {
		m.Values[i] = numberOf(a)
	}
	return &m, nil
}

// numberOf extracts the float64 value of a UnitValue, returning 0 for
// any other node. The unit is not checked: a dimensioned UnitValue
// yields its bare value.
func numberOf(v cssvalue.StyleValue) float64 {
	if u, ok := v.(*cssvalue.UnitValue); ok {
		return u.Value
	}
	return 0
}

// parseArgs parses a comma-separated argument list up to the closing
// ')', consuming it, via the shared calc() expression grammar (so a
// transform argument may itself be a calc()/var() expression).
func parseArgs(lx *lexer.Lexer, cfg *cssvalueconfig.Config) ([]cssvalue.StyleValue, error) {
	if lx.Peek().Kind == lexer.CLOSE {
		lx.Next()
		return nil, nil
	}
	var args []cssvalue.StyleValue
	for {
		v, err := calc.ParseExprFrom(lx, cfg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		tok := lx.Next()
		if tok.Kind == lexer.CLOSE {
			return args, nil
		}
		if tok.Kind != lexer.COMMA {
			return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "expected ',' or ')', got %q", tok.Text)
		}
	}
}
