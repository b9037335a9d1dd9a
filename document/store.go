// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: document/store.go
// Summary: Identifier-keyed collection of open documents.

package document

import "sort"

// Store owns every open document handler.
type Store struct {
	documents map[ID]*Handler
	nextID    ID
}

// NewStore returns an empty store whose first id is 1.
func NewStore() *Store {
	return &Store{
		documents: make(map[ID]*Handler),
		nextID:    1,
	}
}

// Add inserts handler under a fresh id.
func (s *Store) Add(handler *Handler) ID {
	id := s.nextID
	s.nextID++
	s.documents[id] = handler
	return id
}

// Get returns the handler for id. The handler is owned by the store; mutate it
// only from the session reducer.
func (s *Store) Get(id ID) (*Handler, bool) {
	h, ok := s.documents[id]
	return h, ok
}

// Remove drops the handler for id. Unknown ids are ignored.
func (s *Store) Remove(id ID) {
	delete(s.documents, id)
}

// Count returns the number of open documents.
func (s *Store) Count() int {
	return len(s.documents)
}

// IDs returns the ids of all open documents in ascending order.
func (s *Store) IDs() []ID {
	ids := make([]ID, 0, len(s.documents))
	for id := range s.documents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
