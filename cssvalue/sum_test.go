// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalue

import (
	"testing"

	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSumFoldsSameUnit(t *testing.T) {
	result, err := NewSum(mustUnit(t, 10, "px"), mustUnit(t, 5, "px"))
	require.NoError(t, err)
	u, ok := result.(*UnitValue)
	require.True(t, ok)
	assert.Equal(t, 15.0, u.Value)
	assert.Equal(t, "px", u.Unit)
}

func TestNewSumSingleTermUnwrapped(t *testing.T) {
	result, err := NewSum(mustUnit(t, 10, "px"))
	require.NoError(t, err)
	_, ok := result.(*UnitValue)
	assert.True(t, ok)
}

func TestNewSumMixedLengthPercentStaysSum(t *testing.T) {
	result, err := NewSum(mustUnit(t, 100, "%"), mustUnit(t, -20, "px"))
	require.NoError(t, err)
	sum, ok := result.(*MathSum)
	require.True(t, ok)
	require.Len(t, sum.Terms, 2)
	assert.Equal(t, "calc(100% + -20px)", sum.String())
}

func TestNewSumFlattensNestedSums(t *testing.T) {
	inner, err := NewSum(mustUnit(t, 1, "px"), mustUnit(t, 2, "em"))
	require.NoError(t, err)
	result, err := NewSum(inner.(*MathSum), mustUnit(t, 3, "px"))
	require.NoError(t, err)
	sum, ok := result.(*MathSum)
	require.True(t, ok)
	require.Len(t, sum.Terms, 2)
}

func TestNewSumTypeMismatch(t *testing.T) {
	_, err := NewSum(mustUnit(t, 1, "deg"), mustUnit(t, 1, "s"))
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.TypeMismatch))
}

func TestNewSumPureNumberVsLengthMismatch(t *testing.T) {
	_, err := NewSum(Num(0), mustUnit(t, 10, "px"))
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.TypeMismatch))
}

func TestNewSumWithVariableSkipsFolding(t *testing.T) {
	v := NewVariableReference("--x", nil)
	result, err := NewSum(mustUnit(t, 10, "px"), v)
	require.NoError(t, err)
	sum, ok := result.(*MathSum)
	require.True(t, ok)
	require.Len(t, sum.Terms, 2)
}

func TestNewSumNegateSerializesAsMinus(t *testing.T) {
	result, err := NewSum(mustUnit(t, 10, "px"), NewNegate(NewVariableReference("--x", nil)).(*MathNegate))
	require.NoError(t, err)
	assert.Equal(t, "calc(10px - var(--x))", result.String())
}
