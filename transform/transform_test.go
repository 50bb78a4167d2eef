// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTranslate(t *testing.T) {
	v, err := Parse("translate(10px, 20px)")
	require.NoError(t, err)
	assert.Equal(t, "translate(10px, 20px)", v.String())
	assert.True(t, v.Is2D())
}

func TestParseTranslateSingleArgDefaultsY(t *testing.T) {
	v, err := Parse("translate(10px)")
	require.NoError(t, err)
	assert.Equal(t, "translate(10px, 0px)", v.String())
}

func TestParseTranslate3D(t *testing.T) {
	v, err := Parse("translate3d(1px, 2px, 3px)")
	require.NoError(t, err)
	assert.False(t, v.Is2D())
	assert.Equal(t, "translate3d(1px, 2px, 3px)", v.String())
}

func TestParseTranslateXYZ(t *testing.T) {
	v, err := Parse("translateX(5px) translateY(6px) translateZ(7px)")
	require.NoError(t, err)
	assert.Len(t, v.Components, 3)
	assert.False(t, v.Is2D())
}

func TestParseRotate(t *testing.T) {
	v, err := Parse("rotate(45deg)")
	require.NoError(t, err)
	assert.Equal(t, "rotate(45deg)", v.String())
	assert.True(t, v.Is2D())
}

func TestParseRotate3D(t *testing.T) {
	v, err := Parse("rotate3d(1, 0, 0, 45deg)")
	require.NoError(t, err)
	assert.False(t, v.Is2D())
}

func TestParseScaleDefaultsY(t *testing.T) {
	v, err := Parse("scale(2)")
	require.NoError(t, err)
	assert.Equal(t, "scale(2, 2)", v.String())
}

func TestParseScaleWrongArity(t *testing.T) {
	_, err := Parse("scale(1, 2, 3, 4)")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.TypeMismatch))
}

func TestParseSkewDefaultsY(t *testing.T) {
	v, err := Parse("skew(10deg)")
	require.NoError(t, err)
	assert.Equal(t, "skew(10deg, 0deg)", v.String())
}

func TestParseSkewXY(t *testing.T) {
	v, err := Parse("skewX(10deg) skewY(20deg)")
	require.NoError(t, err)
	assert.Equal(t, "skewX(10deg) skewY(20deg)", v.String())
	assert.True(t, v.Is2D())
}

func TestParsePerspective(t *testing.T) {
	v, err := Parse("perspective(100px)")
	require.NoError(t, err)
	assert.False(t, v.Is2D())
	assert.Equal(t, "perspective(100px)", v.String())
}

func TestParseMatrix(t *testing.T) {
	v, err := Parse("matrix(1, 0, 0, 1, 10, 20)")
	require.NoError(t, err)
	assert.Equal(t, "matrix(1, 0, 0, 1, 10, 20)", v.String())
	assert.True(t, v.Is2D())
}

func TestParseMatrixWrongArity(t *testing.T) {
	_, err := Parse("matrix(1, 2, 3)")
	require.Error(t, err)
}

func TestParseMultipleComponents(t *testing.T) {
	v, err := Parse("translate(10px, 10px) rotate(45deg) scale(2)")
	require.NoError(t, err)
	assert.Len(t, v.Components, 3)
}

func TestParseUnknownFunctionErrors(t *testing.T) {
	_, err := Parse("bogus(1px)")
	require.Error(t, err)
	assert.True(t, cssvalueerr.Is(err, cssvalueerr.ParseFailure))
}

func TestParseEmptyErrors(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}

type fakeMatrix struct{ trace []string }

func (m *fakeMatrix) Multiply(other HostMatrix) HostMatrix {
	o := other.(*fakeMatrix)
	return &fakeMatrix{trace: append(append([]string{}, m.trace...), o.trace...)}
}

func TestToMatrixFoldsInOrder(t *testing.T) {
	v, err := Parse("translate(1px, 1px) scale(2)")
	require.NoError(t, err)

	identity := &fakeMatrix{}
	result, err := v.ToMatrix(identity, func(text string) (HostMatrix, error) {
		return &fakeMatrix{trace: []string{text}}, nil
	})
	require.NoError(t, err)
	fm := result.(*fakeMatrix)
	assert.Equal(t, []string{"translate(1px, 1px)", "scale(2, 2)"}, fm.trace)
}
