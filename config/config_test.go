// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	text := `
		[system]
		scale = 2.0
		version = 128
		accent = "#ffffff"
		name = "Strelka"
		debug = false
	`
	cfg, err := Parse([]byte(text))
	require.NoError(t, err)

	assert.Equal(t, Value(Float(2.0)), cfg.Get("system", "scale").MustGet())
	assert.Equal(t, Value(Integer(128)), cfg.Get("system", "version").MustGet())
	assert.Equal(t, Value(White), cfg.Get("system", "accent").MustGet())
	assert.Equal(t, Value(String("Strelka")), cfg.Get("system", "name").MustGet())
	assert.Equal(t, Value(Boolean(false)), cfg.Get("system", "debug").MustGet())
}

func TestParseRejectsUnsupportedConstructs(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"array", "[system]\nlist = [1, 2]\n"},
		{"nested table", "[system.inner]\nkey = 1\n"},
		{"top-level scalar", "theme = \"core.light\"\n"},
		{"datetime", "[system]\nwhen = 1979-05-27T07:32:00Z\n"},
		{"syntax", "[system\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.text))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestInsertThenGet(t *testing.T) {
	values := []Value{
		Integer(-7),
		Float(3.25),
		Boolean(true),
		String("hello"),
		Color{1, 2, 3, 4},
	}
	cfg := New()
	for _, v := range values {
		cfg.Insert("ns", "prop", v)
		assert.Equal(t, v, cfg.Get("ns", "prop").MustGet())
	}
}

func TestRemove(t *testing.T) {
	cfg := New()
	cfg.Insert("a", "x", Integer(1))

	assert.True(t, cfg.Remove("a", "missing").IsAbsent())
	assert.True(t, cfg.Remove("missing", "x").IsAbsent())

	got := cfg.Remove("a", "x")
	assert.Equal(t, Value(Integer(1)), got.MustGet())
	assert.True(t, cfg.Get("a", "x").IsAbsent())
	assert.Empty(t, cfg.Namespaces())
}

func TestMergeOverwritesConflicts(t *testing.T) {
	a := New()
	a.Insert("system", "theme", String("core.light"))
	a.Insert("system", "keep", Integer(1))
	b := New()
	b.Insert("system", "theme", String("core.dark"))
	b.Insert("editor", "wrap", Boolean(true))

	a.Merge(b)
	assert.Equal(t, Value(String("core.dark")), a.Get("system", "theme").MustGet())
	assert.Equal(t, Value(Integer(1)), a.Get("system", "keep").MustGet())
	assert.Equal(t, Value(Boolean(true)), a.Get("editor", "wrap").MustGet())
}

func TestMergeIsAssociativeNotCommutative(t *testing.T) {
	mk := func(v int64) *Config {
		c := New()
		c.Insert("n", "p", Integer(v))
		c.Insert("n", Integer(v).String(), Integer(v))
		return c
	}
	left := mk(1).Merge(mk(2)).Merge(mk(3))
	right := mk(1).Merge(mk(2).Merge(mk(3)))
	assert.True(t, left.Equal(right))

	ab := mk(1).Merge(mk(2))
	ba := mk(2).Merge(mk(1))
	assert.False(t, ab.Equal(ba))
}

func TestRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Insert("system", "theme", String("core.light"))
	cfg.Insert("system", "scale", Float(2))
	cfg.Insert("system", "ratio", Float(0.125))
	cfg.Insert("system", "version", Integer(-42))
	cfg.Insert("system", "debug", Boolean(true))
	cfg.Insert("colors", "accent", Color{0x11, 0x22, 0x33, 0x44})
	cfg.Insert("colors", "text", String("plain words"))

	data, err := cfg.Marshal()
	require.NoError(t, err)
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(cfg), "encoded:\n%s", data)
}

func TestColorRoundTrip(t *testing.T) {
	for _, in := range []string{"#AABBCCDD", "#00000000", "#12ab34ff"} {
		c, err := ParseColor(in)
		require.NoError(t, err)
		assert.Equal(t, toLower(in), c.String())
	}

	c, err := ParseColor("#112233")
	require.NoError(t, err)
	assert.Equal(t, Color{0x11, 0x22, 0x33, 0xff}, c)

	for _, bad := range []string{"", "#12", "112233", "#11223", "#gg2233", "#1122334"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := New()
	cfg.Insert("system", "ttl", Integer(250))
	cfg.Insert("system", "scale", Float(1.5))
	cfg.Insert("system", "debug", Boolean(true))
	cfg.Insert("system", "accent", RGB(1, 2, 3))

	assert.Equal(t, int64(250), cfg.GetInt("system", "ttl", 0))
	assert.Equal(t, 1.5, cfg.GetFloat("system", "scale", 0))
	assert.True(t, cfg.GetBool("system", "debug", false))
	assert.Equal(t, RGB(1, 2, 3), cfg.GetColor("system", "accent", Black))
	assert.Equal(t, "fallback", cfg.GetString("system", "missing", "fallback"))
	assert.Equal(t, int64(9), cfg.GetInt("other", "ttl", 9))
}

func TestRegisterDefaultsKeepsExisting(t *testing.T) {
	cfg := New()
	cfg.Insert("system", "theme", String("core.dark"))
	cfg.RegisterDefaults("system", Section{
		"theme": String("core.light"),
		"extra": Integer(1),
	})
	assert.Equal(t, "core.dark", cfg.GetString("system", "theme", ""))
	assert.Equal(t, int64(1), cfg.GetInt("system", "extra", 0))
}

func toLower(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b >= 'A' && b <= 'Z' {
			out[i] = b + ('a' - 'A')
		}
	}
	return string(out)
}
