// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "percent", Canonicalize("%"))
	assert.Equal(t, "number", Canonicalize(""))
	assert.Equal(t, "px", Canonicalize("PX"))
	assert.Equal(t, "deg", Canonicalize("Deg"))
}

func TestCategoryOfKnownUnits(t *testing.T) {
	cases := map[string]Category{
		"px": LengthCategory, "rem": LengthCategory, "vb": LengthCategory,
		"deg": AngleCategory, "turn": AngleCategory,
		"s": TimeCategory, "ms": TimeCategory,
		"hz": FrequencyCategory, "khz": FrequencyCategory,
		"dpi": ResolutionCategory, "dppx": ResolutionCategory,
		"fr":      FlexCategory,
		"percent": PercentCategory,
		"number":  NumberCategory,
	}
	for unit, want := range cases {
		got, err := CategoryOf(unit)
		require.NoError(t, err)
		assert.Equal(t, want, got, unit)
	}
}

func TestCategoryOfUnknownUnit(t *testing.T) {
	_, err := CategoryOf("furlong")
	require.Error(t, err)
}

func TestTypeVectorOfNumberIsZero(t *testing.T) {
	v, err := TypeVectorOf("number")
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestTypeVectorOfNonNumber(t *testing.T) {
	v, err := TypeVectorOf("px")
	require.NoError(t, err)
	assert.Equal(t, int8(1), v[Length])
	assert.Equal(t, int8(0), v[Percent])

	v, err = TypeVectorOf("percent")
	require.NoError(t, err)
	assert.Equal(t, int8(1), v[Percent])
}

func TestCompatibleEqual(t *testing.T) {
	lenV, _ := TypeVectorOf("px")
	lenV2, _ := TypeVectorOf("em")
	assert.True(t, Compatible(lenV, lenV2))
}

func TestCompatibleLengthPercentMix(t *testing.T) {
	lenV, _ := TypeVectorOf("px")
	pctV, _ := TypeVectorOf("percent")
	assert.True(t, Compatible(lenV, pctV))
}

func TestIncompatibleNumberAndLength(t *testing.T) {
	assert.False(t, Compatible(Zero, mustVector("px")))
}

func TestIncompatibleDifferentNonLengthDims(t *testing.T) {
	assert.False(t, Compatible(mustVector("deg"), mustVector("s")))
}

func TestMergeUnionsSetDimensions(t *testing.T) {
	lenV, _ := TypeVectorOf("px")
	pctV, _ := TypeVectorOf("percent")
	m := Merge(lenV, pctV)
	assert.Equal(t, int8(1), m[Length])
	assert.Equal(t, int8(1), m[Percent])
}

func TestAddSub(t *testing.T) {
	lenV, _ := TypeVectorOf("px")
	sum := Add(lenV, lenV)
	assert.Equal(t, int8(2), sum[Length])
	diff := Sub(sum, lenV)
	assert.Equal(t, int8(1), diff[Length])
}

func mustVector(unit string) Vector {
	v, err := TypeVectorOf(unit)
	if err != nil {
		panic(err)
	}
	return v
}
