// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone returns a copy of the config. Values are immutable scalars so the copy
// shares nothing mutable with the original.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{namespaces: make(map[string]Section, len(c.namespaces))}
	for ns, section := range c.namespaces {
		copied := make(Section, len(section))
		for prop, v := range section {
			copied[prop] = v
		}
		out.namespaces[ns] = copied
	}
	return out
}
