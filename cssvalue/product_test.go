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

func TestNewProductFoldsScalars(t *testing.T) {
	result, err := NewProduct(Num(2), Num(3))
	require.NoError(t, err)
	u, ok := result.(*UnitValue)
	require.True(t, ok)
	assert.Equal(t, 6.0, u.Value)
	assert.Equal(t, "number", u.Unit)
}

func TestNewProductScalarTimesUnit(t *testing.T) {
	result, err := NewProduct(mustUnit(t, 10, "px"), Num(2))
	require.NoError(t, err)
	u, ok := result.(*UnitValue)
	require.True(t, ok)
	assert.Equal(t, 20.0, u.Value)
	assert.Equal(t, "px", u.Unit)
}

func TestNewProductDivision(t *testing.T) {
	inv, err := NewInvert(Num(2))
	require.NoError(t, err)
	result, err := NewProduct(mustUnit(t, 10, "px"), inv)
	require.NoError(t, err)
	u, ok := result.(*UnitValue)
	require.True(t, ok)
	assert.Equal(t, 5.0, u.Value)
	assert.Equal(t, "px", u.Unit)
}

func TestNewProductDistributesOverSum(t *testing.T) {
	sum, err := NewSum(mustUnit(t, 100, "%"), mustUnit(t, -20, "px"))
	require.NoError(t, err)
	inv, err := NewInvert(Num(2))
	require.NoError(t, err)
	result, err := NewProduct(sum, inv)
	require.NoError(t, err)
	assert.Equal(t, "calc(50% + -10px)", result.String())
}

func TestNewProductZeroScalarCollapsesToNumber(t *testing.T) {
	result, err := NewProduct(mustUnit(t, 10, "px"), Num(0))
	require.NoError(t, err)
	assert.Equal(t, "0", result.String())
}

func TestNewProductZeroScalarOverSumCollapsesToNumber(t *testing.T) {
	sum, err := NewSum(mustUnit(t, 100, "%"), mustUnit(t, -20, "px"))
	require.NoError(t, err)
	result, err := NewProduct(sum, Num(0))
	require.NoError(t, err)
	assert.Equal(t, "0", result.String())
}

func TestNewProductTwoDimensionedFactorsError(t *testing.T) {
	_, err := NewProduct(mustUnit(t, 1, "px"), mustUnit(t, 1, "em"))
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.TypeMismatch))
}

func TestNewProductByZeroDivisorErrors(t *testing.T) {
	_, err := NewInvert(Num(0))
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.RangeViolation))
}

func TestNewProductNegativeOneNegates(t *testing.T) {
	result, err := NewProduct(mustUnit(t, 10, "px"), Num(-1))
	require.NoError(t, err)
	u, ok := result.(*UnitValue)
	require.True(t, ok)
	assert.Equal(t, -10.0, u.Value)
}

func TestNewProductFlattensNested(t *testing.T) {
	inner, err := NewProduct(Num(2), Num(3))
	require.NoError(t, err)
	result, err := NewProduct(inner, Num(2))
	require.NoError(t, err)
	u, ok := result.(*UnitValue)
	require.True(t, ok)
	assert.Equal(t, 12.0, u.Value)
}
