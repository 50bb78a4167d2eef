// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssparser

import (
	"testing"

	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleLength(t *testing.T) {
	v, err := Parse("width", "10px")
	require.NoError(t, err)
	assert.Equal(t, "10px", v.String())
}

func TestParseEmptyFails(t *testing.T) {
	_, err := Parse("width", "   ")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.ParseFailure))
}

func TestParseStrictPropertyFailurePropagates(t *testing.T) {
	_, err := Parse("width", "not a real value !!!")
	require.Error(t, err)
}

func TestParseStrictPropertyWithVarFallsBack(t *testing.T) {
	v, err := Parse("width", "not valid var(--x)")
	require.NoError(t, err)
	_, ok := v.(*cssvalue.UnparsedValue)
	assert.True(t, ok)
}

func TestParseNonStrictPropertyFallsBack(t *testing.T) {
	v, err := Parse("color", "not a real value !!!")
	require.NoError(t, err)
	_, ok := v.(*cssvalue.UnparsedValue)
	assert.True(t, ok)
}

func TestParseTransformDispatch(t *testing.T) {
	v, err := Parse("transform", "translate(10px, 10px)")
	require.NoError(t, err)
	assert.Equal(t, "translate(10px, 10px)", v.String())
}

func TestParseTransformStrictFailurePropagates(t *testing.T) {
	_, err := Parse("transform", "bogus(1px)")
	require.Error(t, err)
}

func TestParseVarReference(t *testing.T) {
	v, err := Parse("width", "var(--w, 100px)")
	require.NoError(t, err)
	assert.Equal(t, "var(--w, 100px)", v.String())
}

func TestParseAllSplitsTopLevelCommas(t *testing.T) {
	values, err := ParseAll("font-family", "Arial, sans-serif")
	require.NoError(t, err)
	require.Len(t, values, 2)
}

func TestParseAllIgnoresCommasInParens(t *testing.T) {
	values, err := ParseAll("width", "calc(1px + 2px)")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "3px", values[0].String())
}

func TestParseAllIgnoresCommasInQuotes(t *testing.T) {
	segments, err := splitTopLevelCommas(`"a, b", c`)
	require.NoError(t, err)
	require.Len(t, segments, 2)
}

func TestParseAllUnbalancedParenErrors(t *testing.T) {
	_, err := ParseAll("width", "calc(1px + 2px")
	require.Error(t, err)
}

func TestIsStrict(t *testing.T) {
	assert.True(t, IsStrict("width"))
	assert.False(t, IsStrict("color"))
}
