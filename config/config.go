// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Two-level namespaced configuration store.

package config

import (
	"errors"
	"sort"

	"github.com/samber/mo"
)

var (
	// ErrUnsupported marks a config construct the store cannot represent.
	ErrUnsupported = errors.New("unsupported config value")
	// ErrParse wraps any failure to read a config document.
	ErrParse = errors.New("config parse error")
)

// Section stores the properties of one namespace.
type Section map[string]Value

// Config maps namespace -> property -> Value. The zero value is not usable;
// create one with New.
type Config struct {
	namespaces map[string]Section
}

// Entry is a flattened (namespace, property, value) triple.
type Entry struct {
	Namespace string
	Property  string
	Value     Value
}

// New returns an empty config.
func New() *Config {
	return &Config{namespaces: make(map[string]Section)}
}

// Insert stores value under namespace/property, overwriting any previous value.
func (c *Config) Insert(namespace, property string, value Value) {
	section, ok := c.namespaces[namespace]
	if !ok {
		section = make(Section)
		c.namespaces[namespace] = section
	}
	section[property] = value
}

// Get returns the value stored under namespace/property.
func (c *Config) Get(namespace, property string) mo.Option[Value] {
	if section, ok := c.namespaces[namespace]; ok {
		if v, ok := section[property]; ok {
			return mo.Some(v)
		}
	}
	return mo.None[Value]()
}

// Remove deletes namespace/property and returns the value it held.
// A namespace left without properties is dropped.
func (c *Config) Remove(namespace, property string) mo.Option[Value] {
	section, ok := c.namespaces[namespace]
	if !ok {
		return mo.None[Value]()
	}
	v, ok := section[property]
	if !ok {
		return mo.None[Value]()
	}
	delete(section, property)
	if len(section) == 0 {
		delete(c.namespaces, namespace)
	}
	return mo.Some(v)
}

// Merge applies every entry of other onto c. Entries of other win on conflict.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	for ns, section := range other.namespaces {
		for prop, v := range section {
			c.Insert(ns, prop, v)
		}
	}
	return c
}

// Namespaces returns the namespace names in sorted order.
func (c *Config) Namespaces() []string {
	names := make([]string, 0, len(c.namespaces))
	for ns := range c.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// Entries returns every value sorted by namespace then property.
func (c *Config) Entries() []Entry {
	var out []Entry
	for _, ns := range c.Namespaces() {
		section := c.namespaces[ns]
		props := make([]string, 0, len(section))
		for p := range section {
			props = append(props, p)
		}
		sort.Strings(props)
		for _, p := range props {
			out = append(out, Entry{Namespace: ns, Property: p, Value: section[p]})
		}
	}
	return out
}

// Len returns the total number of properties.
func (c *Config) Len() int {
	n := 0
	for _, section := range c.namespaces {
		n += len(section)
	}
	return n
}

// Equal reports whether both configs hold exactly the same entries.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.namespaces) != len(other.namespaces) {
		return false
	}
	for ns, section := range c.namespaces {
		otherSection, ok := other.namespaces[ns]
		if !ok || len(section) != len(otherSection) {
			return false
		}
		for prop, v := range section {
			if ov, ok := otherSection[prop]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}
