// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEdit struct {
	text   string
	mutate bool
}

func (e fakeEdit) IsEdit() bool { return e.mutate }

type fakeBuffer struct {
	sb strings.Builder
}

func (b *fakeBuffer) Perform(edit Edit) {
	if e, ok := edit.(fakeEdit); ok && e.mutate {
		b.sb.WriteString(e.text)
	}
}

func (b *fakeBuffer) Text() string { return b.sb.String() }

func TestStoreIDsStrictlyIncrease(t *testing.T) {
	s := NewStore()
	var last ID
	for i := 0; i < 50; i++ {
		id := s.Add(NewHandler(&fakeBuffer{}, "/tmp/f"))
		require.Greater(t, id, last)
		last = id
		if i%3 == 0 {
			s.Remove(id)
		}
	}
	assert.Equal(t, ID(50), last)
}

func TestStoreStartsAtOne(t *testing.T) {
	s := NewStore()
	assert.Equal(t, ID(1), s.Add(NewHandler(&fakeBuffer{}, "")))
}

func TestStoreUnknownIDs(t *testing.T) {
	s := NewStore()
	id := s.Add(NewHandler(&fakeBuffer{}, "/x/a.txt"))

	_, ok := s.Get(id + 100)
	assert.False(t, ok)

	s.Remove(id + 100)
	assert.Equal(t, 1, s.Count())

	s.Remove(id)
	s.Remove(id)
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.IDs())
}

func TestHandlerDirtyTracking(t *testing.T) {
	h := NewHandler(&fakeBuffer{}, "/x/a.txt")
	assert.Equal(t, "a.txt", h.Filename)

	h.Perform(fakeEdit{text: "ignored"})
	assert.False(t, h.Changed)
	assert.Equal(t, "", h.Text())

	h.Perform(fakeEdit{text: "hi", mutate: true})
	assert.True(t, h.Changed)
	assert.Equal(t, "hi", h.Text())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "", FileName(""))
	assert.Equal(t, "a.txt", FileName("/x/a.txt"))
	assert.Equal(t, "dir", FileName("/x/dir/"))
}
