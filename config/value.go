// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/value.go
// Summary: Typed scalar values stored in the configuration.

package config

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindColor:
		return "color"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a configuration scalar. Values compare structurally with ==.
type Value interface {
	Kind() Kind
	String() string
	// encode returns the representation handed to the TOML encoder.
	encode() interface{}
}

// Integer is a signed 64-bit value.
type Integer int64

// Float is a 64-bit IEEE-754 value.
type Float float64

// Boolean is a true/false value.
type Boolean bool

// String is free text that did not parse as anything more specific.
type String string

func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Boolean) Kind() Kind { return KindBoolean }
func (String) Kind() Kind  { return KindString }

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }
func (v String) String() string  { return string(v) }

func (v Integer) encode() interface{} { return int64(v) }
func (v Float) encode() interface{}   { return float64(v) }
func (v Boolean) encode() interface{} { return bool(v) }
func (v String) encode() interface{}  { return string(v) }

// ParseValue converts a decoded TOML scalar into a Value, preferring the most
// specific interpretation. Strings shaped like #rrggbb or #rrggbbaa become Colors.
func ParseValue(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case int64:
		return Integer(v), nil
	case int:
		return Integer(v), nil
	case float64:
		return Float(v), nil
	case bool:
		return Boolean(v), nil
	case string:
		if c, err := ParseColor(v); err == nil {
			return c, nil
		}
		return String(v), nil
	case Value:
		return v, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, raw)
}
