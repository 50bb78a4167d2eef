// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stylemap implements the property-map adapter over a host
// element's inline style interface: get/getAll/set/append/delete/has and
// the entries/keys/values/forEach iteration protocol.
//
// Parse failures downgrade to an UnparsedValue rather than propagating,
// with a diagnostic logged via log/slog at LevelWarn to the package-level
// Logger, which a caller can replace.
package stylemap

import (
	"log/slog"
	"strings"

	"github.com/oy3o/css-typed-om-polyfill/cssparser"
	"github.com/oy3o/css-typed-om-polyfill/cssvalue"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueconfig"
	"github.com/oy3o/css-typed-om-polyfill/cssvalueerr"
	"github.com/oy3o/css-typed-om-polyfill/internal/kebab"
)

// HostStyle is the host element's style interface this package adapts,
// the interface a host's inline style object is expected to satisfy.
type HostStyle interface {
	GetPropertyValue(name string) string
	SetProperty(name, value string)
	RemoveProperty(name string)
	Length() int
	Item(index int) string
	CSSText() string
	SetCSSText(text string)
}

// commaListProperties is the fixed set of properties GetAll splits on
// top-level commas.
var commaListProperties = map[string]bool{
	"transition": true, "animation": true, "box-shadow": true,
	"text-shadow": true, "background": true, "background-image": true,
	"font-family": true, "stroke-dasharray": true,
}

// Logger is the diagnostic logger Get/GetAll write to when downgrading
// a parse failure to UnparsedValue. Defaults to slog's default logger;
// a caller may replace it to redirect or silence these diagnostics.
var Logger = slog.Default()

// Entry pairs a kebab-case property name with its parsed value, the
// element type of Entries/ForEach.
type Entry struct {
	Name  string
	Value cssvalue.StyleValue
}

// Map wraps a HostStyle, converting caller-supplied names to kebab-case
// and parsing/serializing values through cssparser/cssvalue.
type Map struct {
	host  HostStyle
	cache *kebab.Cache
	cfg   *cssvalueconfig.Config
}

// New wraps host in a Map using default parsing configuration.
func New(host HostStyle) *Map {
	return NewWithConfig(host, cssvalueconfig.Default())
}

// NewWithConfig wraps host in a Map using an explicit configuration.
func NewWithConfig(host HostStyle, cfg *cssvalueconfig.Config) *Map {
	return &Map{host: host, cache: kebab.New(), cfg: cfg}
}

func (m *Map) isCommaList(name string) bool {
	return commaListProperties[name] || containsString(m.cfg.ExtraCommaListProperties, name)
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// Get reads the host's current text for name, parses it, and returns
// the tree. It returns (nil, nil) if the host has no value for name.
// A parse failure downgrades to an UnparsedValue, with a diagnostic
// logged at LevelWarn.
func (m *Map) Get(name string) (cssvalue.StyleValue, error) {
	kebabName := m.cache.ToKebab(name)
	text := m.host.GetPropertyValue(kebabName)
	if text == "" {
		return nil, nil
	}
	v, err := cssparser.ParseWithConfig(kebabName, text, m.cfg)
	if err != nil {
		Logger.Warn("stylemap: downgrading unparseable property to UnparsedValue",
			"property", kebabName, "value", text, "error", err)
		return cssvalue.NewUnparsed(text), nil
	}
	return v, nil
}

// GetAll reads name and, if it is a comma-list property, splits and
// parses each top-level-comma-separated segment; otherwise it returns a
// single-element list from Get (or an empty list if Get returns nil).
func (m *Map) GetAll(name string) ([]cssvalue.StyleValue, error) {
	kebabName := m.cache.ToKebab(name)
	text := m.host.GetPropertyValue(kebabName)
	if text == "" {
		return nil, nil
	}
	if !m.isCommaList(kebabName) {
		v, err := m.Get(name)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, nil
		}
		return []cssvalue.StyleValue{v}, nil
	}
	values, err := cssparser.ParseAllWithConfig(kebabName, text, m.cfg)
	if err != nil {
		Logger.Warn("stylemap: downgrading unparseable comma-list property to UnparsedValue",
			"property", kebabName, "value", text, "error", err)
		return []cssvalue.StyleValue{cssvalue.NewUnparsed(text)}, nil
	}
	return values, nil
}

// Set serializes values via String(), joins them with spaces, and
// writes the result to the host. It requires at least one value.
func (m *Map) Set(name string, values ...cssvalue.StyleValue) error {
	if len(values) == 0 {
		return cssvalueerr.New(cssvalueerr.MissingOperand, "set requires at least one value")
	}
	kebabName := m.cache.ToKebab(name)
	m.host.SetProperty(kebabName, joinValues(values))
	return nil
}

// Append composes the new text as Set does, then joins it to any
// existing value: comma-separated for comma-list properties, space
// separated otherwise.
func (m *Map) Append(name string, values ...cssvalue.StyleValue) error {
	if len(values) == 0 {
		return cssvalueerr.New(cssvalueerr.MissingOperand, "append requires at least one value")
	}
	kebabName := m.cache.ToKebab(name)
	next := joinValues(values)
	existing := m.host.GetPropertyValue(kebabName)
	if existing == "" {
		m.host.SetProperty(kebabName, next)
		return nil
	}
	sep := " "
	if m.isCommaList(kebabName) {
		sep = ", "
	}
	m.host.SetProperty(kebabName, existing+sep+next)
	return nil
}

func joinValues(values []cssvalue.StyleValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Delete removes name from the host.
func (m *Map) Delete(name string) {
	m.host.RemoveProperty(m.cache.ToKebab(name))
}

// Clear removes all properties from the host.
func (m *Map) Clear() {
	m.host.SetCSSText("")
}

// Has reports whether the host currently has a non-empty value for name.
func (m *Map) Has(name string) bool {
	return m.host.GetPropertyValue(m.cache.ToKebab(name)) != ""
}

// Size returns the number of longhand properties the host currently
// exposes.
func (m *Map) Size() int {
	return m.host.Length()
}

// names returns the host's current indexed longhand property names.
func (m *Map) names() []string {
	n := m.host.Length()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = m.host.Item(i)
	}
	return names
}

// Keys returns the host's current longhand property names.
func (m *Map) Keys() []string {
	return m.names()
}

// Values returns the parsed value for each of the host's current
// longhand properties, in the same order as Keys.
func (m *Map) Values() ([]cssvalue.StyleValue, error) {
	var values []cssvalue.StyleValue
	for _, name := range m.names() {
		v, err := m.Get(name)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Entries returns a (name, parsed value) pair for each of the host's
// current longhand properties.
func (m *Map) Entries() ([]Entry, error) {
	var entries []Entry
	for _, name := range m.names() {
		v, err := m.Get(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Value: v})
	}
	return entries, nil
}

// ForEach calls fn once per (name, parsed value) pair, in the host's
// current longhand-list order. It stops and returns the first error
// encountered while parsing.
func (m *Map) ForEach(fn func(name string, value cssvalue.StyleValue)) error {
	entries, err := m.Entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fn(e.Name, e.Value)
	}
	return nil
}
