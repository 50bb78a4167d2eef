// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"testing"

	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleAddition(t *testing.T) {
	v, err := Parse("10px + 5px")
	require.NoError(t, err)
	assert.Equal(t, "15px", v.String())
}

func TestParseOperatorPrecedence(t *testing.T) {
	v, err := Parse("2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, "14", v.String())
}

func TestParseParenthesized(t *testing.T) {
	v, err := Parse("(2 + 3) * 4")
	require.NoError(t, err)
	assert.Equal(t, "20", v.String())
}

func TestParseDivisionDistributesOverSum(t *testing.T) {
	v, err := Parse("(100% - 20px) / 2")
	require.NoError(t, err)
	assert.Equal(t, "calc(50% + -10px)", v.String())
}

func TestParseUnaryMinus(t *testing.T) {
	v, err := Parse("-5px + 10px")
	require.NoError(t, err)
	assert.Equal(t, "5px", v.String())
}

func TestParseNegatedVarSerializesAsScalarProduct(t *testing.T) {
	v, err := Parse("-(var(--x))")
	require.NoError(t, err)
	assert.Equal(t, "calc(-1 * var(--x))", v.String())
}

func TestParseCalcFunctionUnwraps(t *testing.T) {
	v, err := Parse("calc(1px + 2px)")
	require.NoError(t, err)
	assert.Equal(t, "3px", v.String())
}

func TestParseMinMax(t *testing.T) {
	v, err := Parse("min(10px, 20px)")
	require.NoError(t, err)
	assert.Equal(t, "min(10px, 20px)", v.String())

	v, err = Parse("max(10px, 20px, 5px)")
	require.NoError(t, err)
	assert.Equal(t, "max(10px, 20px, 5px)", v.String())
}

func TestParseClamp(t *testing.T) {
	v, err := Parse("clamp(10px, 50%, 100px)")
	require.NoError(t, err)
	assert.Equal(t, "clamp(10px, 50%, 100px)", v.String())
}

func TestParseClampWrongArity(t *testing.T) {
	_, err := Parse("clamp(10px, 50%)")
	require.Error(t, err)
}

func TestParseVarNoFallback(t *testing.T) {
	v, err := Parse("var(--w)")
	require.NoError(t, err)
	assert.Equal(t, "var(--w)", v.String())
}

func TestParseVarWithFallback(t *testing.T) {
	v, err := Parse("var(--w, 100px)")
	require.NoError(t, err)
	ref, ok := v.(*cssvalue.VariableReferenceValue)
	require.True(t, ok)
	assert.Equal(t, "--w", ref.Name)
	assert.Equal(t, "var(--w, 100px)", v.String())
}

func TestParseVarWithNestedFunctionFallback(t *testing.T) {
	v, err := Parse("var(--w, calc(1px + 2px))")
	require.NoError(t, err)
	assert.Equal(t, "var(--w, calc(1px + 2px))", v.String())
}

func TestParseVarUnbalancedParenErrors(t *testing.T) {
	_, err := Parse("var(--w, (10px)")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.ParseFailure))
}

func TestParseKeywordAlone(t *testing.T) {
	v, err := Parse("auto")
	require.NoError(t, err)
	assert.Equal(t, "auto", v.String())
}

func TestParseUnknownFunctionErrors(t *testing.T) {
	_, err := Parse("bogus(1px)")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.ParseFailure))
}

func TestParseTrailingTokensError(t *testing.T) {
	_, err := Parse("10px 20px")
	require.Error(t, err)
}

func TestParseTypeMismatchInSum(t *testing.T) {
	_, err := Parse("10deg + 10s")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.TypeMismatch))
}

func TestParseZeroPlusLengthTypeMismatch(t *testing.T) {
	_, err := Parse("0 + 10px")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.TypeMismatch))
}

func TestParseDivisionByZeroErrors(t *testing.T) {
	_, err := Parse("10px / 0")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.RangeViolation))
}
