// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/color.go
// Summary: RGBA color value and its #rrggbb[aa] text form.

package config

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var errNotColor = errors.New("not a color")

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{0xff, 0xff, 0xff, 0xff}
	Black = Color{0x00, 0x00, 0x00, 0xff}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xff} }

func (Color) Kind() Kind { return KindColor }

// String renders the color as lowercase #rrggbbaa.
func (c Color) String() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

func (c Color) encode() interface{} { return c.String() }

// ParseColor parses #rrggbb or #rrggbbaa. The six digit form is opaque.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", errNotColor, s)
	}
	raw, err := hex.DecodeString(s[1:])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", errNotColor, s)
	}
	c := Color{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}
