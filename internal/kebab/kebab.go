// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kebab converts caller-supplied property names (which may
// arrive camelCase, as from a host language binding) to kebab-case
// CSS property names, caching results in a bounded LRU.
package kebab

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

const maxCacheEntries = 500

// Cache converts and caches camelCase-to-kebab-case property name
// conversions, capped at 500 entries.
type Cache struct {
	entries *lru.Cache[string, string]
}

// New returns a ready-to-use Cache.
func New() *Cache {
	c, err := lru.New[string, string](maxCacheEntries)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// maxCacheEntries never is.
		panic(err)
	}
	return &Cache{entries: c}
}

// ToKebab converts name to kebab-case, using and populating the cache.
// A name already in kebab-case (or containing no uppercase letters)
// round-trips unchanged.
func (c *Cache) ToKebab(name string) string {
	if v, ok := c.entries.Get(name); ok {
		return v
	}
	v := toKebab(name)
	c.entries.Add(name, v)
	return v
}

func toKebab(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
