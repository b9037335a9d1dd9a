// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import "strconv"

// Section returns a copy of the named namespace or nil if missing.
func (c *Config) Section(namespace string) Section {
	section, ok := c.namespaces[namespace]
	if !ok {
		return nil
	}
	out := make(Section, len(section))
	for k, v := range section {
		out[k] = v
	}
	return out
}

// RegisterDefaults inserts defaults into a namespace without overwriting existing keys.
func (c *Config) RegisterDefaults(namespace string, defaults Section) {
	for prop, v := range defaults {
		if c.Get(namespace, prop).IsAbsent() {
			c.Insert(namespace, prop, v)
		}
	}
}

// GetString retrieves a string value from the config.
func (c *Config) GetString(namespace, property, defaultValue string) string {
	v, ok := c.Get(namespace, property).Get()
	if !ok {
		return defaultValue
	}
	switch s := v.(type) {
	case String:
		return string(s)
	case Color:
		return s.String()
	}
	return defaultValue
}

// GetInt retrieves an integer value from the config.
func (c *Config) GetInt(namespace, property string, defaultValue int64) int64 {
	v, ok := c.Get(namespace, property).Get()
	if !ok {
		return defaultValue
	}
	switch n := v.(type) {
	case Integer:
		return int64(n)
	case Float:
		return int64(n)
	case String:
		if parsed, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetFloat retrieves a float value from the config.
func (c *Config) GetFloat(namespace, property string, defaultValue float64) float64 {
	v, ok := c.Get(namespace, property).Get()
	if !ok {
		return defaultValue
	}
	switch n := v.(type) {
	case Float:
		return float64(n)
	case Integer:
		return float64(n)
	case String:
		if parsed, err := strconv.ParseFloat(string(n), 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the config.
func (c *Config) GetBool(namespace, property string, defaultValue bool) bool {
	v, ok := c.Get(namespace, property).Get()
	if !ok {
		return defaultValue
	}
	switch b := v.(type) {
	case Boolean:
		return bool(b)
	case Integer:
		return b != 0
	case String:
		if parsed, err := strconv.ParseBool(string(b)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetColor retrieves a color value from the config.
func (c *Config) GetColor(namespace, property string, defaultValue Color) Color {
	if v, ok := c.Get(namespace, property).Get(); ok {
		if col, ok := v.(Color); ok {
			return col
		}
	}
	return defaultValue
}
