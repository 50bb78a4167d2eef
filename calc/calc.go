// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements a recursive-descent parser for the calc()
// math sublanguage: expr/term/unary/factor, calc()/min()/max()/clamp()
// dispatch, and var() references with raw-fallback capture. Every
// arithmetic constructor call routes through cssvalue's smart builders,
// so folding happens eagerly during parse.
package calc

import (
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueconfig"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/oy3o/css-typed-om-polyfill/lexer"
)

// parser holds the mutable state of one parse: the lexer and the
// remaining recursion budget, carried through a recursive descent and
// reported by return value rather than an accumulated error list.
type parser struct {
	lx       *lexer.Lexer
	maxDepth int
	depth    int
}

// Parse parses text as a calc()-grammar expression (the full micro
// language, not wrapped in an outer calc()) and requires the lexer to
// reach EOF afterward. It uses the default configuration; cssparser
// calls ParseWithConfig for every non-transform property value.
func Parse(text string) (cssvalue.StyleValue, error) {
	return ParseWithConfig(text, cssvalueconfig.Default())
}

// ParseWithConfig is Parse with an explicit configuration, primarily so
// callers can set a non-default recursion depth cap.
func ParseWithConfig(text string, cfg *cssvalueconfig.Config) (cssvalue.StyleValue, error) {
	p := &parser{lx: lexer.New(text), maxDepth: cfg.MaxCalcDepth}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.lx.Peek(); tok.Kind != lexer.EOF {
		return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "unexpected trailing token %q", tok.Text)
	}
	return v, nil
}

// ParseExprFrom parses a single expr production directly off an
// existing lexer, without requiring EOF afterward. It is exported for
// other packages (transform) whose own grammars embed a
// calc()-sublanguage expression as one argument among several.
func ParseExprFrom(lx *lexer.Lexer, cfg *cssvalueconfig.Config) (cssvalue.StyleValue, error) {
	p := &parser{lx: lx, maxDepth: cfg.MaxCalcDepth}
	return p.parseExpr()
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return cssvalueerr.New(cssvalueerr.ParseFailure, "calc() nesting exceeds maximum depth")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseExpr implements expr := term (('+'|'-') term)*.
func (p *parser) parseExpr() (cssvalue.StyleValue, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []cssvalue.Numeric{}
	leftNum, isNumeric := left.(cssvalue.Numeric)
	if !isNumeric {
		return left, nil
	}
	terms = append(terms, leftNum)

	for {
		tok := p.lx.Peek()
		if tok.Kind != lexer.OP || (tok.Text != "+" && tok.Text != "-") {
			break
		}
		p.lx.Next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		rightNum, ok := right.(cssvalue.Numeric)
		if !ok {
			return nil, cssvalueerr.New(cssvalueerr.TypeMismatch, "non-numeric operand in arithmetic context")
		}
		if tok.Text == "-" {
			rightNum = cssvalue.NewNegate(rightNum)
		}
		terms = append(terms, rightNum)
	}

	if len(terms) == 1 {
		return terms[0], nil
	}
	return cssvalue.NewSum(terms...)
}

// parseTerm implements term := unary (('*'|'/') unary)*.
func (p *parser) parseTerm() (cssvalue.StyleValue, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	leftNum, isNumeric := left.(cssvalue.Numeric)
	if !isNumeric {
		return left, nil
	}
	factors := []cssvalue.Numeric{leftNum}

	for {
		tok := p.lx.Peek()
		if tok.Kind != lexer.OP || (tok.Text != "*" && tok.Text != "/") {
			break
		}
		p.lx.Next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		rightNum, ok := right.(cssvalue.Numeric)
		if !ok {
			return nil, cssvalueerr.New(cssvalueerr.TypeMismatch, "non-numeric operand in arithmetic context")
		}
		if tok.Text == "/" {
			inv, err := cssvalue.NewInvert(rightNum)
			if err != nil {
				return nil, err
			}
			rightNum = inv
		}
		factors = append(factors, rightNum)
	}

	if len(factors) == 1 {
		return factors[0], nil
	}
	return cssvalue.NewProduct(factors...)
}

// parseUnary implements unary := '-' unary | '+' unary | factor.
func (p *parser) parseUnary() (cssvalue.StyleValue, error) {
	tok := p.lx.Peek()
	if tok.Kind == lexer.OP && (tok.Text == "-" || tok.Text == "+") {
		p.lx.Next()
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.Text == "+" {
			return v, nil
		}
		num, ok := v.(cssvalue.Numeric)
		if !ok {
			return nil, cssvalueerr.New(cssvalueerr.TypeMismatch, "unary minus applied to non-numeric operand")
		}
		return cssvalue.NewNegate(num), nil
	}
	return p.parseFactor()
}

// parseFactor implements factor := NUM | DIM | '(' expr ')' | FUNC args ')' | IDENT.
func (p *parser) parseFactor() (cssvalue.StyleValue, error) {
	tok := p.lx.Next()
	switch tok.Kind {
	case lexer.NUM:
		return cssvalue.Num(tok.Num), nil
	case lexer.DIM:
		return &cssvalue.UnitValue{Value: tok.Num, Unit: tok.Text}, nil
	case lexer.OPEN:
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.CLOSE, ")"); err != nil {
			return nil, err
		}
		return v, nil
	case lexer.FUNC:
		return p.parseFunc(tok.Text)
	case lexer.IDENT:
		return cssvalue.NewKeyword(tok.Text), nil
	default:
		return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "unexpected token %q", tok.Text)
	}
}

func (p *parser) expect(kind lexer.Kind, what string) error {
	tok := p.lx.Next()
	if tok.Kind != kind {
		return cssvalueerr.Errorf(cssvalueerr.ParseFailure, "expected %q, got %q", what, tok.Text)
	}
	return nil
}

// parseFunc dispatches on a FUNC token's name (the lexer has already
// consumed through the opening '(').
func (p *parser) parseFunc(name string) (cssvalue.StyleValue, error) {
	switch name {
	case "calc":
		return p.parseCalcArgs()
	case "min":
		return p.parseMinMax(false)
	case "max":
		return p.parseMinMax(true)
	case "clamp":
		return p.parseClampArgs()
	case "var":
		return p.parseVarArgs()
	default:
		return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "unknown function %q", name)
	}
}

// parseCalcArgs handles calc(e): exactly one argument.
func (p *parser) parseCalcArgs() (cssvalue.StyleValue, error) {
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.CLOSE, ")"); err != nil {
		return nil, err
	}
	return v, nil
}

// parseMinMax handles min(e1, ..., en) / max(...): at least one argument.
func (p *parser) parseMinMax(isMax bool) (cssvalue.StyleValue, error) {
	operands, err := p.parseCommaArgs()
	if err != nil {
		return nil, err
	}
	if len(operands) == 0 {
		return nil, cssvalueerr.New(cssvalueerr.MissingOperand, "min/max requires at least one argument")
	}
	if isMax {
		return cssvalue.NewMax(operands...)
	}
	return cssvalue.NewMin(operands...)
}

// parseClampArgs handles clamp(l, v, u): exactly three arguments.
func (p *parser) parseClampArgs() (cssvalue.StyleValue, error) {
	operands, err := p.parseCommaArgs()
	if err != nil {
		return nil, err
	}
	if len(operands) != 3 {
		return nil, cssvalueerr.Errorf(cssvalueerr.TypeMismatch, "clamp() requires exactly 3 arguments, got %d", len(operands))
	}
	return cssvalue.NewClamp(operands[0], operands[1], operands[2])
}

// parseCommaArgs parses a comma-separated list of expr productions up to
// the closing ')', consuming it.
func (p *parser) parseCommaArgs() ([]cssvalue.Numeric, error) {
	var operands []cssvalue.Numeric
	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		num, ok := v.(cssvalue.Numeric)
		if !ok {
			return nil, cssvalueerr.New(cssvalueerr.TypeMismatch, "non-numeric argument in numeric function")
		}
		operands = append(operands, num)
		tok := p.lx.Next()
		if tok.Kind == lexer.CLOSE {
			return operands, nil
		}
		if tok.Kind != lexer.COMMA {
			return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "expected ',' or ')', got %q", tok.Text)
		}
	}
}

// parseVarArgs handles var(--name [, fallback]). The fallback, if
// present, is captured as raw text (not recursively parsed) between the
// comma and the matching closing parenthesis, respecting nested
// parenthesis depth.
func (p *parser) parseVarArgs() (cssvalue.StyleValue, error) {
	nameTok := p.lx.Next()
	if nameTok.Kind != lexer.IDENT || !strings.HasPrefix(nameTok.Text, "--") {
		return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "expected custom property name, got %q", nameTok.Text)
	}

	tok := p.lx.Next()
	switch tok.Kind {
	case lexer.CLOSE:
		return cssvalue.NewVariableReference(nameTok.Text, nil), nil
	case lexer.COMMA:
		raw, err := p.captureRawUntilClose()
		if err != nil {
			return nil, err
		}
		return cssvalue.NewVariableReference(nameTok.Text, cssvalue.NewUnparsed(raw)), nil
	default:
		return nil, cssvalueerr.Errorf(cssvalueerr.ParseFailure, "expected ',' or ')' in var(), got %q", tok.Text)
	}
}

// captureRawUntilClose returns the trimmed source text from the current
// position up to (but not including) the matching top-level ')',
// tracking nested parenthesis depth, and leaves the scanner positioned
// just after that ')'.
func (p *parser) captureRawUntilClose() (string, error) {
	start := p.lx.Pos()
	depth := 0
	for {
		tok := p.lx.Next()
		switch tok.Kind {
		case lexer.EOF:
			return "", cssvalueerr.New(cssvalueerr.ParseFailure, "unbalanced parenthesis in var() fallback")
		case lexer.OPEN, lexer.FUNC:
			depth++
		case lexer.CLOSE:
			if depth == 0 {
				end := tok.Pos
				return strings.TrimSpace(p.lx.Source()[start:end]), nil
			}
			depth--
		}
	}
}
