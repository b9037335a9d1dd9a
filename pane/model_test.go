// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package pane

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOpenGetOpen(t *testing.T) {
	m := NewModel()
	assert.True(t, m.GetOpen().IsAbsent())

	id := m.Add(Buffer())
	assert.Equal(t, ID(0), id)
	assert.True(t, m.GetOpenID().IsAbsent(), "add must not focus")

	m.Open(id)
	assert.Equal(t, Buffer(), m.GetOpen().MustGet())
	assert.Equal(t, id, m.GetOpenID().MustGet())
}

func TestOpenUnknownIsNoop(t *testing.T) {
	m := NewModel()
	id := m.Add(NewDocument())
	m.Open(id)
	m.Open(id + 42)
	assert.Equal(t, id, m.GetOpenID().MustGet())
}

func TestRemoveFocusedClearsFocus(t *testing.T) {
	m := NewModel()
	a := m.Add(NewDocument())
	b := m.Add(Config())
	m.Open(b)

	removed := m.Remove(b)
	assert.Equal(t, Config(), removed.MustGet())
	assert.True(t, m.GetOpenID().IsAbsent())
	assert.Equal(t, []ID{a}, m.IDs())

	assert.True(t, m.Remove(b).IsAbsent())
}

func TestReplaceKeepsIDAndFocus(t *testing.T) {
	m := NewModel()
	a := m.Add(NewDocument())
	b := m.Add(Buffer())
	m.Open(a)

	m.Replace(a, Editor(7))
	assert.Equal(t, a, m.GetOpenID().MustGet())
	assert.Equal(t, Editor(7), m.GetOpen().MustGet())
	assert.Equal(t, []ID{a, b}, m.IDs())

	m.Replace(99, Config())
	assert.Equal(t, 2, m.Count())
}

func TestIDsNeverReused(t *testing.T) {
	m := NewModel()
	a := m.Add(NewDocument())
	m.Remove(a)
	b := m.Add(NewDocument())
	assert.Greater(t, b, a)
}

func TestReferencesDocument(t *testing.T) {
	m := NewModel()
	m.Add(Editor(1))
	m.Add(Editor(1))
	m.Add(Editor(2))
	m.Add(NewDocument())
	assert.Equal(t, 2, m.ReferencesDocument(1))
	assert.Equal(t, 1, m.ReferencesDocument(2))
	assert.Equal(t, 0, m.ReferencesDocument(3))
}

func TestFocusStaysValidUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := NewModel()
	var live []ID
	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			live = append(live, m.Add(NewDocument()))
		case 1:
			if len(live) > 0 {
				m.Open(live[rng.Intn(len(live))])
			}
		case 2:
			if len(live) > 0 {
				j := rng.Intn(len(live))
				m.Remove(live[j])
				live = append(live[:j], live[j+1:]...)
			}
		case 3:
			m.Open(ID(rng.Intn(1000)))
		}
		require.Equal(t, len(live), m.Count())
		if id, ok := m.GetOpenID().Get(); ok {
			_, exists := m.Get(id)
			require.True(t, exists, "focused pane %d must exist", id)
		}
	}
}
