// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssvalueconfig holds the tunables the parsing packages read at
// construction time: recursion limits and the strict/comma-list property
// sets, kept in a loadable struct rather than compiled-in constants so a
// host application can raise or lower them without a rebuild.
package cssvalueconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable limits of the parsing packages.
type Config struct {
	// MaxCalcDepth bounds calc() expression recursion depth.
	MaxCalcDepth int `yaml:"maxCalcDepth"`
	// ExtraStrictProperties augments the built-in strict-property set
	// with additional property names.
	ExtraStrictProperties []string `yaml:"extraStrictProperties"`
	// ExtraCommaListProperties augments the built-in comma-list property
	// set with additional property names.
	ExtraCommaListProperties []string `yaml:"extraCommaListProperties"`
}

// defaultMaxCalcDepth is the default recursion cap.
const defaultMaxCalcDepth = 1000

// Default returns a Config with the built-in defaults and no extra
// property names.
func Default() *Config {
	return &Config{MaxCalcDepth: defaultMaxCalcDepth}
}

// Load reads a YAML configuration file, filling in defaults for any
// field the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.MaxCalcDepth <= 0 {
		cfg.MaxCalcDepth = defaultMaxCalcDepth
	}
	return cfg, nil
}
