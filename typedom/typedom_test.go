// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typedom

import (
	"testing"

	"github.com/oy3o/css-typed-om-polyfill/stylemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFactories(t *testing.T) {
	assert.Equal(t, "10px", Px(10).String())
	assert.Equal(t, "50%", Percent(50).String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "90deg", Deg(90).String())
	assert.Equal(t, "2fr", Fr(2).String())
}

type fakeHost struct {
	props map[string]string
	order []string
}

func newFakeHost() *fakeHost { return &fakeHost{props: map[string]string{}} }

func (h *fakeHost) GetPropertyValue(name string) string { return h.props[name] }
func (h *fakeHost) SetProperty(name, value string) {
	if _, ok := h.props[name]; !ok {
		h.order = append(h.order, name)
	}
	h.props[name] = value
}
func (h *fakeHost) RemoveProperty(name string) { delete(h.props, name) }
func (h *fakeHost) Length() int                { return len(h.order) }
func (h *fakeHost) Item(i int) string          { return h.order[i] }
func (h *fakeHost) CSSText() string            { return "" }
func (h *fakeHost) SetCSSText(string)          {}

func TestAttributeStyleMapMemoizes(t *testing.T) {
	built := 0
	registry := NewRegistry(func(element any) stylemap.HostStyle {
		built++
		return newFakeHost()
	})

	el := &struct{ id int }{id: 1}
	m1 := registry.AttributeStyleMap(el)
	m2 := registry.AttributeStyleMap(el)

	assert.Same(t, m1, m2)
	assert.Equal(t, 1, built)
}

func TestAttributeStyleMapDistinctPerElement(t *testing.T) {
	registry := NewRegistry(func(element any) stylemap.HostStyle {
		return newFakeHost()
	})

	elA := &struct{ id int }{id: 1}
	elB := &struct{ id int }{id: 2}
	mA := registry.AttributeStyleMap(elA)
	mB := registry.AttributeStyleMap(elB)

	assert.NotSame(t, mA, mB)
}

func TestInstallNoOpWhenNative(t *testing.T) {
	registry := NewRegistry(func(element any) stylemap.HostStyle { return newFakeHost() })
	registry.SetNative(true)
	Install(registry)
	require.True(t, registry.HasNative())
}
