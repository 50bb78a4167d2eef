// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvalueerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndIs(t *testing.T) {
	err := New(RangeViolation, "division by zero")
	require.Error(t, err)
	assert.True(t, Is(err, RangeViolation))
	assert.False(t, Is(err, ParseFailure))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(ParseFailure, nil))
}

func TestErrorfAndUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := Errorf(TypeMismatch, "wrapping: %w", base)
	assert.True(t, Is(err, TypeMismatch))
	assert.ErrorIs(t, err, base)
}

func TestWithContext(t *testing.T) {
	err := New(MissingOperand, "no values given")
	err = WithContext(err, "StylePropertyMap.set")
	assert.Contains(t, err.Error(), "StylePropertyMap.set")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TypeMismatch", TypeMismatch.String())
	assert.Equal(t, "RangeViolation", RangeViolation.String())
	assert.Equal(t, "ParseFailure", ParseFailure.String())
	assert.Equal(t, "MissingOperand", MissingOperand.String())
}
