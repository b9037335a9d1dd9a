// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/codec.go
// Summary: TOML encoding and decoding of config documents.

package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Parse decodes a TOML document where each top-level table is a namespace and
// each key within it is a property. Anything that is not a scalar inside a
// namespace table is rejected.
func Parse(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	cfg := New()
	for ns, table := range raw {
		props, ok := table.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: top-level key %q: %w", ErrParse, ns, ErrUnsupported)
		}
		for prop, scalar := range props {
			v, err := ParseValue(scalar)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrParse, ns, prop, err)
			}
			cfg.Insert(ns, prop, v)
		}
	}
	return cfg, nil
}

// Decode reads and parses a TOML document from r.
func Decode(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Encode writes the config as TOML. Colors are written as #rrggbbaa strings.
func (c *Config) Encode(w io.Writer) error {
	doc := make(map[string]map[string]interface{}, len(c.namespaces))
	for ns, section := range c.namespaces {
		props := make(map[string]interface{}, len(section))
		for prop, v := range section {
			props[prop] = v.encode()
		}
		doc[ns] = props
	}
	return toml.NewEncoder(w).Encode(doc)
}

// Marshal returns the TOML form of the config.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
