// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theming/theme.go
// Summary: Theme palette and metadata parsed from theme files.

package theming

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/framegrace/strelka/config"
)

// ID names a theme, e.g. "core.light".
type ID string

// Palette holds the colors widgets draw with.
type Palette struct {
	Background config.Color
	Foreground config.Color
	Accent     config.Color
	Border     config.Color
	Muted      config.Color
	Selection  config.Color
}

// Theme is an immutable theme snapshot.
type Theme struct {
	ID      ID
	Dark    bool
	Palette Palette
}

// Metadata describes where a theme comes from.
type Metadata struct {
	ID          ID
	Name        string
	Author      string
	Description string
	Dark        bool
	// Base names the chroma style that seeds unset palette colors.
	Base string
}

// Parse reads a theme document. The document uses the config file format with
// a [metadata] and a [palette] namespace. fallbackID names the theme when
// metadata.id is missing.
func Parse(data []byte, fallbackID ID) (*Theme, Metadata, error) {
	cfg, err := config.Parse(data)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("parse theme: %w", err)
	}

	meta := Metadata{
		ID:          ID(cfg.GetString("metadata", "id", string(fallbackID))),
		Name:        cfg.GetString("metadata", "name", ""),
		Author:      cfg.GetString("metadata", "author", ""),
		Description: cfg.GetString("metadata", "description", ""),
		Dark:        cfg.GetBool("metadata", "dark", false),
		Base:        cfg.GetString("metadata", "base", ""),
	}
	if meta.ID == "" {
		return nil, meta, fmt.Errorf("parse theme: missing metadata.id")
	}
	if meta.Name == "" {
		meta.Name = string(meta.ID)
	}

	seed := basePalette(meta.Base, meta.Dark)
	theme := &Theme{
		ID:   meta.ID,
		Dark: meta.Dark,
		Palette: Palette{
			Background: cfg.GetColor("palette", "background", seed.Background),
			Foreground: cfg.GetColor("palette", "foreground", seed.Foreground),
			Accent:     cfg.GetColor("palette", "accent", seed.Accent),
			Border:     cfg.GetColor("palette", "border", seed.Border),
			Muted:      cfg.GetColor("palette", "muted", seed.Muted),
			Selection:  cfg.GetColor("palette", "selection", seed.Selection),
		},
	}
	return theme, meta, nil
}

// basePalette derives a palette from a chroma style. Unknown or empty names
// fall back to plain black-on-white (or the reverse for dark themes).
func basePalette(base string, dark bool) Palette {
	p := Palette{
		Background: config.White,
		Foreground: config.Black,
		Accent:     config.RGB(0x1f, 0x6f, 0xeb),
		Border:     config.RGB(0xc0, 0xc0, 0xc0),
		Muted:      config.RGB(0x80, 0x80, 0x80),
		Selection:  config.RGB(0xdd, 0xee, 0xff),
	}
	if dark {
		p.Background, p.Foreground = config.Black, config.White
		p.Border = config.RGB(0x40, 0x40, 0x40)
		p.Selection = config.RGB(0x30, 0x30, 0x50)
	}
	if base == "" {
		return p
	}
	style, ok := styles.Registry[base]
	if !ok {
		return p
	}

	bg := style.Get(chroma.Background)
	if bg.Background.IsSet() {
		p.Background = fromChroma(bg.Background)
	}
	if bg.Colour.IsSet() {
		p.Foreground = fromChroma(bg.Colour)
	}
	if kw := style.Get(chroma.Keyword); kw.Colour.IsSet() {
		p.Accent = fromChroma(kw.Colour)
	}
	if cm := style.Get(chroma.Comment); cm.Colour.IsSet() {
		p.Muted = fromChroma(cm.Colour)
	}
	return p
}

func fromChroma(c chroma.Colour) config.Color {
	return config.RGB(c.Red(), c.Green(), c.Blue())
}
