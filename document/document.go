// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: document/document.go
// Summary: Open text documents and their dirty tracking.

package document

import (
	"path/filepath"
	"strconv"
)

// ID identifies an open document. IDs are allocated from 1 and never reused.
type ID uint64

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Edit is an action the UI layer applies to a Buffer.
type Edit interface {
	// IsEdit reports whether the action mutates the text (as opposed to moving
	// the caret or scrolling).
	IsEdit() bool
}

// Buffer is the editable text target supplied by the UI layer.
type Buffer interface {
	Perform(edit Edit)
	Text() string
}

// Handler bundles a buffer with its file metadata and dirty flag.
type Handler struct {
	Buffer   Buffer
	Path     string
	Filename string
	Language string
	Changed  bool
}

// NewHandler builds a clean handler for path. The filename is derived from path.
func NewHandler(buf Buffer, path string) *Handler {
	return &Handler{
		Buffer:   buf,
		Path:     path,
		Filename: FileName(path),
	}
}

// Perform applies edit to the buffer, marking the handler changed when the
// edit mutates text.
func (h *Handler) Perform(edit Edit) {
	if edit == nil {
		return
	}
	if edit.IsEdit() {
		h.Changed = true
	}
	h.Buffer.Perform(edit)
}

// Text returns the current buffer contents.
func (h *Handler) Text() string {
	if h.Buffer == nil {
		return ""
	}
	return h.Buffer.Text()
}

// FileName returns the display name for path.
func FileName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}
