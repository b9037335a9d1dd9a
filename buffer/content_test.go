// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package buffer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/strelka/document"
)

func perform(c *Content, actions ...Action) {
	for _, a := range actions {
		c.Perform(a)
	}
}

func TestContentEditing(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		actions []Action
		want    string
		line    int
		col     int
	}{
		{"insert", "", []Action{Insert{'h'}, Insert{'i'}}, "hi", 0, 2},
		{"enter splits", "hello", []Action{Move{Right}, Move{Right}, Enter{}}, "he\nllo", 1, 0},
		{"backspace joins", "ab\ncd", []Action{Move{Down}, Home{}, Backspace{}}, "abcd", 0, 2},
		{"backspace at origin", "ab", []Action{Backspace{}}, "ab", 0, 0},
		{"delete joins next", "ab\ncd", []Action{End{}, Delete{}}, "abcd", 0, 2},
		{"delete rune", "abc", []Action{Delete{}}, "bc", 0, 0},
		{"paste multiline", "xy", []Action{Move{Right}, Paste{"1\n2"}}, "x1\n2y", 1, 1},
		{"click clamps", "a\nbc", []Action{Click{Line: 9, Col: 9}}, "a\nbc", 1, 2},
		{"down clamps column", "abcd\nx", []Action{End{}, Move{Down}}, "abcd\nx", 1, 1},
		{"left wraps", "ab\ncd", []Action{Move{Down}, Move{Left}}, "ab\ncd", 0, 2},
		{"right wraps", "ab\ncd", []Action{End{}, Move{Right}}, "ab\ncd", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.initial)
			perform(c, tt.actions...)
			assert.Equal(t, tt.want, c.Text())
			line, col := c.Cursor()
			assert.Equal(t, tt.line, line, "line")
			assert.Equal(t, tt.col, col, "col")
		})
	}
}

func TestIsEditClassification(t *testing.T) {
	edits := []Action{Insert{'a'}, Paste{"x"}, Enter{}, Backspace{}, Delete{}}
	moves := []Action{Move{Left}, Home{}, End{}, Click{}}
	for _, a := range edits {
		assert.True(t, a.IsEdit(), "%T", a)
	}
	for _, a := range moves {
		assert.False(t, a.IsEdit(), "%T", a)
	}
}

func TestDisplayColumnWideRunes(t *testing.T) {
	c := New("日本x")
	perform(c, End{})
	assert.Equal(t, 5, c.DisplayColumn())
}

func TestDisplayColumnCountsTabAsOneCell(t *testing.T) {
	c := New("\tab")
	perform(c, End{})
	assert.Equal(t, 3, c.DisplayColumn())

	c = New("\t界")
	perform(c, End{})
	assert.Equal(t, 3, c.DisplayColumn())
}

func TestHandlerIntegration(t *testing.T) {
	h := document.NewHandler(New("hello"), "/tmp/a.txt")
	h.Perform(Move{Right})
	assert.False(t, h.Changed)
	h.Perform(Insert{'!'})
	assert.True(t, h.Changed)
	assert.Equal(t, "h!ello", h.Text())
}

func TestFromKey(t *testing.T) {
	a, ok := FromKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, Insert{'q'}, a)

	a, ok = FromKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, Backspace{}, a)

	_, ok = FromKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModAlt))
	assert.False(t, ok)

	_, ok = FromKey(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	assert.False(t, ok)
}
