// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kebab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKebabCamelCase(t *testing.T) {
	c := New()
	assert.Equal(t, "background-color", c.ToKebab("backgroundColor"))
}

func TestToKebabAlreadyKebab(t *testing.T) {
	c := New()
	assert.Equal(t, "font-size", c.ToKebab("font-size"))
}

func TestToKebabIsCached(t *testing.T) {
	c := New()
	first := c.ToKebab("zIndex")
	second := c.ToKebab("zIndex")
	assert.Equal(t, first, second)
	assert.Equal(t, "z-index", first)
}
