// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssparser implements the property-aware value parser entry
// point: dispatching to the transform parser or the calc()-sublanguage
// expression parser, with the strict/lenient var()-masking fallback
// policy.
package cssparser

import (
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/calc"
	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueconfig"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/oy3o/css-typed-om-polyfill/transform"
)

// strictProperties is the fixed set of properties whose parse failures
// propagate unless the text contains var().
var strictProperties = map[string]bool{
	"width": true, "height": true, "min-width": true, "min-height": true,
	"max-width": true, "max-height": true, "top": true, "left": true,
	"right": true, "bottom": true, "margin": true, "padding": true,
	"font-size": true, "transform": true, "rotate": true, "scale": true,
	"translate": true, "opacity": true, "z-index": true, "flex-grow": true,
	"flex-shrink": true, "order": true,
}

// IsStrict reports whether property is in the built-in strict-property
// set. cssvalueconfig.Config.ExtraStrictProperties augment this set at
// the call sites that accept a Config.
func IsStrict(property string) bool {
	return strictProperties[property]
}

// Parse parses text for the named property using the built-in strict
// set and default recursion limits.
func Parse(property, text string) (cssvalue.StyleValue, error) {
	return ParseWithConfig(property, text, cssvalueconfig.Default())
}

// ParseWithConfig is Parse with an explicit configuration, whose
// ExtraStrictProperties augments the built-in strict-property set.
func ParseWithConfig(property, text string, cfg *cssvalueconfig.Config) (cssvalue.StyleValue, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, cssvalueerr.New(cssvalueerr.ParseFailure, "empty value")
	}

	strict := IsStrict(property) || containsString(cfg.ExtraStrictProperties, property)
	hasVar := strings.Contains(trimmed, "var(")

	if property == "transform" {
		tv, err := transform.ParseWithConfig(trimmed, cfg)
		if err != nil {
			if strict && !hasVar {
				return nil, err
			}
			return cssvalue.NewUnparsed(text), nil
		}
		return tv, nil
	}

	v, err := calc.ParseWithConfig(trimmed, cfg)
	if err != nil {
		if strict && !hasVar {
			return nil, err
		}
		return cssvalue.NewUnparsed(text), nil
	}
	return v, nil
}

// ParseAll splits text at top-level commas (ignoring commas inside
// balanced parentheses and string literals) and parses each segment via
// ParseWithConfig; each segment falls back independently.
func ParseAll(property, text string) ([]cssvalue.StyleValue, error) {
	return ParseAllWithConfig(property, text, cssvalueconfig.Default())
}

// ParseAllWithConfig is ParseAll with an explicit configuration.
func ParseAllWithConfig(property, text string, cfg *cssvalueconfig.Config) ([]cssvalue.StyleValue, error) {
	segments, err := splitTopLevelCommas(text)
	if err != nil {
		return nil, err
	}
	values := make([]cssvalue.StyleValue, len(segments))
	for i, seg := range segments {
		v, err := ParseWithConfig(property, seg, cfg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// splitTopLevelCommas splits text on commas that are not nested inside
// parentheses or a single- or double-quoted string literal.
func splitTopLevelCommas(text string) ([]string, error) {
	var segments []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			} else if b == '\\' {
				i++
			}
		case b == '\'' || b == '"':
			quote = b
		case b == '(':
			depth++
		case b == ')':
			if depth == 0 {
				return nil, cssvalueerr.New(cssvalueerr.ParseFailure, "unbalanced closing parenthesis")
			}
			depth--
		case b == ',' && depth == 0:
			segments = append(segments, text[start:i])
			start = i + 1
		}
	}
	if quote != 0 || depth != 0 {
		return nil, cssvalueerr.New(cssvalueerr.ParseFailure, "unbalanced parenthesis or string literal")
	}
	segments = append(segments, text[start:])
	return segments, nil
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
