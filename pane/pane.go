// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pane/pane.go
// Summary: Pane kinds shown in the editor's visual slots.

package pane

import (
	"fmt"
	"strconv"

	"github.com/framegrace/strelka/document"
)

// ID identifies a pane. IDs are allocated from 0 and are distinct from
// document ids.
type ID uint64

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Kind selects what a pane shows.
type Kind int

const (
	// KindNewDocument is the empty welcome pane.
	KindNewDocument Kind = iota
	// KindEditor edits one document.
	KindEditor
	// KindBuffer is the experimental buffer view.
	KindBuffer
	// KindConfig shows the configuration store.
	KindConfig
	// KindExplorer lists the open working directory.
	KindExplorer
)

func (k Kind) String() string {
	switch k {
	case KindNewDocument:
		return "new-document"
	case KindEditor:
		return "editor"
	case KindBuffer:
		return "buffer"
	case KindConfig:
		return "config"
	case KindExplorer:
		return "explorer"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Pane is the content of a visual slot. Document is meaningful only for
// editor panes.
type Pane struct {
	Kind     Kind
	Document document.ID
}

func NewDocument() Pane { return Pane{Kind: KindNewDocument} }

func Editor(id document.ID) Pane { return Pane{Kind: KindEditor, Document: id} }

func Buffer() Pane { return Pane{Kind: KindBuffer} }

func Config() Pane { return Pane{Kind: KindConfig} }

func Explorer() Pane { return Pane{Kind: KindExplorer} }

// EditorDocument returns the document shown by an editor pane.
func (p Pane) EditorDocument() (document.ID, bool) {
	if p.Kind != KindEditor {
		return 0, false
	}
	return p.Document, true
}

func (p Pane) String() string {
	if p.Kind == KindEditor {
		return fmt.Sprintf("editor(%d)", p.Document)
	}
	return p.Kind.String()
}
