// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pane/model.go
// Summary: Ordered pane collection with at most one focused pane.

package pane

import (
	"github.com/samber/mo"

	"github.com/framegrace/strelka/document"
)

// Model holds the open panes in insertion order and tracks the focused one.
type Model struct {
	panes  map[ID]Pane
	order  []ID
	nextID ID
	openID mo.Option[ID]
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{panes: make(map[ID]Pane)}
}

// Add appends pane under a fresh id. It does not change focus.
func (m *Model) Add(p Pane) ID {
	id := m.nextID
	m.nextID++
	m.panes[id] = p
	m.order = append(m.order, id)
	return id
}

// Open focuses id. Unknown ids are ignored.
func (m *Model) Open(id ID) {
	if _, ok := m.panes[id]; ok {
		m.openID = mo.Some(id)
	}
}

// Get returns the pane stored under id.
func (m *Model) Get(id ID) (Pane, bool) {
	p, ok := m.panes[id]
	return p, ok
}

// GetOpen returns the focused pane.
func (m *Model) GetOpen() mo.Option[Pane] {
	id, ok := m.openID.Get()
	if !ok {
		return mo.None[Pane]()
	}
	return mo.Some(m.panes[id])
}

// GetOpenID returns the id of the focused pane.
func (m *Model) GetOpenID() mo.Option[ID] {
	return m.openID
}

// Replace swaps the content of id, keeping its id, position and focus.
// Unknown ids are ignored.
func (m *Model) Replace(id ID, p Pane) {
	if _, ok := m.panes[id]; ok {
		m.panes[id] = p
	}
}

// Remove drops id and returns the pane it held. Removing the focused pane
// clears the focus.
func (m *Model) Remove(id ID) mo.Option[Pane] {
	p, ok := m.panes[id]
	if !ok {
		return mo.None[Pane]()
	}
	delete(m.panes, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if open, ok := m.openID.Get(); ok && open == id {
		m.openID = mo.None[ID]()
	}
	return mo.Some(p)
}

// Count returns the number of panes.
func (m *Model) Count() int { return len(m.panes) }

// IsEmpty reports whether no panes remain; the session seeds a welcome pane then.
func (m *Model) IsEmpty() bool { return len(m.panes) == 0 }

// IDs returns pane ids in insertion order.
func (m *Model) IDs() []ID {
	out := make([]ID, len(m.order))
	copy(out, m.order)
	return out
}

// ReferencesDocument counts the editor panes showing doc.
func (m *Model) ReferencesDocument(doc document.ID) int {
	n := 0
	for _, p := range m.panes {
		if id, ok := p.EditorDocument(); ok && id == doc {
			n++
		}
	}
	return n
}
