// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theming/catalog.go
// Summary: Registry of available themes and the published active theme.
// Usage: Mutated only by the session reducer; widgets read Current() from any
// goroutine.

package theming

import (
	"sort"
	"sync/atomic"

	"github.com/framegrace/strelka/internal/logging"
)

// DefaultID is the theme active before configuration is applied.
const DefaultID ID = "core.light"

type entry struct {
	theme *Theme
	meta  Metadata
}

// Catalog maps theme ids to themes and serves the active one.
type Catalog struct {
	themes  map[ID]entry
	active  ID
	current atomic.Pointer[Theme]
}

// NewCatalog returns a catalog seeded with the embedded built-in themes, with
// DefaultID active.
func NewCatalog() *Catalog {
	c := &Catalog{
		themes: make(map[ID]entry),
		active: DefaultID,
	}
	for _, l := range BuiltIns() {
		c.Insert(l.Theme, l.Metadata)
	}
	if c.current.Load() == nil {
		c.current.Store(&Theme{ID: DefaultID, Palette: basePalette("", false)})
	}
	return c
}

// Insert adds or replaces a theme. Replacing the active theme republishes it.
func (c *Catalog) Insert(theme *Theme, meta Metadata) {
	if theme == nil {
		return
	}
	c.themes[theme.ID] = entry{theme: theme, meta: meta}
	if theme.ID == c.active {
		c.current.Store(theme)
	}
	logging.Debug("Themes: added", "id", theme.ID, "name", meta.Name)
}

// Set activates id and publishes its snapshot. Unknown ids are ignored.
func (c *Catalog) Set(id ID) bool {
	e, ok := c.themes[id]
	if !ok {
		logging.Debug("Themes: unknown theme", "id", id)
		return false
	}
	c.active = id
	c.current.Store(e.theme)
	return true
}

// Current returns the active theme snapshot. Safe for concurrent use.
func (c *Catalog) Current() *Theme {
	return c.current.Load()
}

// CurrentID returns the active theme id.
func (c *Catalog) CurrentID() ID {
	return c.active
}

// Get returns a theme and its metadata.
func (c *Catalog) Get(id ID) (*Theme, Metadata, bool) {
	e, ok := c.themes[id]
	return e.theme, e.meta, ok
}

// IDs returns the known theme ids sorted.
func (c *Catalog) IDs() []ID {
	ids := make([]ID, 0, len(c.themes))
	for id := range c.themes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of known themes.
func (c *Catalog) Len() int { return len(c.themes) }
