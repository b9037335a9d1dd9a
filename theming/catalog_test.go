// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theming

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/strelka/config"
)

func TestCatalogBuiltIns(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, DefaultID, c.CurrentID())
	assert.Equal(t, DefaultID, c.Current().ID)

	_, meta, ok := c.Get("core.dark")
	require.True(t, ok)
	assert.True(t, meta.Dark)
	assert.Equal(t, "monokai", meta.Base)
}

func TestCatalogSetUnknownKeepsActive(t *testing.T) {
	c := NewCatalog()
	assert.False(t, c.Set("nope"))
	assert.Equal(t, DefaultID, c.CurrentID())

	assert.True(t, c.Set("core.dark"))
	assert.Equal(t, ID("core.dark"), c.Current().ID)
	assert.True(t, c.Current().Dark)
}

func TestCatalogInsertRepublishesActive(t *testing.T) {
	c := NewCatalog()
	replacement := &Theme{ID: DefaultID, Palette: Palette{Accent: config.RGB(1, 2, 3)}}
	c.Insert(replacement, Metadata{ID: DefaultID})
	assert.Same(t, replacement, c.Current())
}

func TestParseUsesChromaBase(t *testing.T) {
	text := `
[metadata]
id = "test.mono"
base = "monokai"
dark = true

[palette]
accent = "#ff0000"
`
	theme, meta, err := Parse([]byte(text), "ignored")
	require.NoError(t, err)
	assert.Equal(t, ID("test.mono"), meta.ID)
	assert.Equal(t, "test.mono", meta.Name)
	assert.Equal(t, config.RGB(0xff, 0, 0), theme.Palette.Accent)
	// monokai paints a dark background.
	bg := theme.Palette.Background
	assert.Less(t, int(bg.R)+int(bg.G)+int(bg.B), 3*0x80)
}

func TestParseFallbackID(t *testing.T) {
	theme, _, err := Parse([]byte("[palette]\nborder = \"#010203\"\n"), "file.name")
	require.NoError(t, err)
	assert.Equal(t, ID("file.name"), theme.ID)
	assert.Equal(t, config.RGB(1, 2, 3), theme.Palette.Border)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.toml"), []byte("[metadata]\nid = \"user.b\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), []byte("[metadata]\nname = \"A\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("[metadata\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	var got []ID
	err := Discover(context.Background(), dir, func(l Loaded) { got = append(got, l.Theme.ID) })
	require.NoError(t, err)
	assert.Equal(t, []ID{"a", "user.b"}, got)
}

func TestDiscoverMissingDir(t *testing.T) {
	called := false
	err := Discover(context.Background(), filepath.Join(t.TempDir(), "none"), func(Loaded) { called = true })
	require.NoError(t, err)
	assert.False(t, called)
}
