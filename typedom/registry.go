// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typedom

import (
	"sync"
	"weak"

	"github.com/oy3o/css-typed-om-polyfill/cssvalueconfig"
	"github.com/oy3o/css-typed-om-polyfill/stylemap"
)

// StyleMapFactory builds the HostStyle a Registry adapts for a given
// host element, e.g. reading the element's inline style object.
type StyleMapFactory func(element any) stylemap.HostStyle

// Registry is the explicit stand-in for the mutable global/prototype
// object a CSS Typed OM host installs onto: a per-registry installation flag
// plus the element -> attributeStyleMap memoization table.
type Registry struct {
	mu       sync.Mutex
	native   bool
	factory  StyleMapFactory
	cfg      *cssvalueconfig.Config
	maps     map[any]weak.Pointer[stylemap.Map]
}

// NewRegistry returns a Registry that builds each element's HostStyle
// via factory.
func NewRegistry(factory StyleMapFactory) *Registry {
	return &Registry{
		factory: factory,
		cfg:     cssvalueconfig.Default(),
		maps:    make(map[any]weak.Pointer[stylemap.Map]),
	}
}

// SetNative marks the registry as backed by a host-native implementation,
// making Install a no-op. Corresponds to the load-time probe a host makes
// for a known-native numeric-value type and a known-native factory:
// Go has no equivalent runtime type probe, so callers set this
// explicitly after performing whatever probe makes sense for their host.
func (r *Registry) SetNative(native bool) { r.native = native }

// HasNative reports whether a native implementation was previously
// registered, per SetNative.
func (r *Registry) HasNative() bool { return r.native }

// Install is a no-op if r.HasNative(); otherwise it is a marker call a
// caller makes once at startup to signal that the polyfilled factories
// and AttributeStyleMap should be considered "installed" — Go has no
// global/prototype object to mutate, so there is nothing else to do.
func Install(r *Registry) {
	if r.HasNative() {
		return
	}
	r.native = false
}

// AttributeStyleMap returns the memoized stylemap.Map for element,
// building one via the registry's StyleMapFactory on first access. The
// memoization table holds only weak references to the returned maps, so
// a Map with no other live reference may be recreated on a later call,
// mirroring a weak reference to its host element.
func (r *Registry) AttributeStyleMap(element any) *stylemap.Map {
	r.mu.Lock()
	defer r.mu.Unlock()

	if wp, ok := r.maps[element]; ok {
		if m := wp.Value(); m != nil {
			return m
		}
	}

	m := stylemap.NewWithConfig(r.factory(element), r.cfg)
	r.maps[element] = weak.Make(m)
	return m
}
