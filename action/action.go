// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: action/action.go
// Summary: User and plugin intents, and the generic actions that mutate the
// session stores.
// Usage: Every user-initiated intent is wrapped in an Action so plugins can
// observe and rewrite it before the session applies it.

package action

import (
	"fmt"

	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/pane"
)

// Family groups generic actions by the store they touch.
type Family int

const (
	FamilyFile Family = iota
	FamilyPane
	FamilyDocument
)

func (f Family) String() string {
	switch f {
	case FamilyFile:
		return "file"
	case FamilyPane:
		return "pane"
	case FamilyDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Generic is a leaf mutation applied directly to a store.
type Generic interface {
	Family() Family
	fmt.Stringer
}

// Action is an intent offered to plugins before it is applied.
type Action struct {
	Generic Generic
}

// New wraps g as an Action.
func New(g Generic) Action {
	return Action{Generic: g}
}

func (a Action) String() string {
	if a.Generic == nil {
		return "action(<nil>)"
	}
	return "action(" + a.Generic.String() + ")"
}

// File actions.

// PickFile asks the user for a file and opens it into the current pane.
type PickFile struct{}

// OpenFileCurrentTab opens Path into the focused pane when it is a
// NewDocument pane, else into a new editor pane.
type OpenFileCurrentTab struct{ Path string }

// OpenFileForceCurrentTab opens Path into the focused pane whatever it holds.
type OpenFileForceCurrentTab struct{ Path string }

// OpenFileNewTab opens Path into a new editor pane.
type OpenFileNewTab struct{ Path string }

func (PickFile) Family() Family                { return FamilyFile }
func (OpenFileCurrentTab) Family() Family      { return FamilyFile }
func (OpenFileForceCurrentTab) Family() Family { return FamilyFile }
func (OpenFileNewTab) Family() Family          { return FamilyFile }

func (PickFile) String() string                  { return "file.pick" }
func (a OpenFileCurrentTab) String() string      { return fmt.Sprintf("file.open-current(%s)", a.Path) }
func (a OpenFileForceCurrentTab) String() string { return fmt.Sprintf("file.open-force(%s)", a.Path) }
func (a OpenFileNewTab) String() string          { return fmt.Sprintf("file.open-new(%s)", a.Path) }

// Pane actions.

// AddPane adds Pane and focuses it.
type AddPane struct{ Pane pane.Pane }

// OpenPane focuses ID.
type OpenPane struct{ ID pane.ID }

// ClosePane removes ID.
type ClosePane struct{ ID pane.ID }

// ReplacePane swaps the content of ID, keeping its id and focus.
type ReplacePane struct {
	ID   pane.ID
	Pane pane.Pane
}

func (AddPane) Family() Family     { return FamilyPane }
func (OpenPane) Family() Family    { return FamilyPane }
func (ClosePane) Family() Family   { return FamilyPane }
func (ReplacePane) Family() Family { return FamilyPane }

func (a AddPane) String() string     { return fmt.Sprintf("pane.add(%s)", a.Pane) }
func (a OpenPane) String() string    { return fmt.Sprintf("pane.open(%d)", a.ID) }
func (a ClosePane) String() string   { return fmt.Sprintf("pane.close(%d)", a.ID) }
func (a ReplacePane) String() string { return fmt.Sprintf("pane.replace(%d, %s)", a.ID, a.Pane) }

// Document actions.

// AddDocument creates a document with Text at Path. An empty Path makes an
// untitled document. Open also shows it in a new editor pane.
type AddDocument struct {
	Path string
	Text string
	Open bool
}

// OpenDocument shows ID in a new editor pane.
type OpenDocument struct{ ID document.ID }

// SaveDocument writes ID to its path.
type SaveDocument struct{ ID document.ID }

// RemoveDocument drops ID from the store.
type RemoveDocument struct{ ID document.ID }

func (AddDocument) Family() Family    { return FamilyDocument }
func (OpenDocument) Family() Family   { return FamilyDocument }
func (SaveDocument) Family() Family   { return FamilyDocument }
func (RemoveDocument) Family() Family { return FamilyDocument }

func (a AddDocument) String() string    { return fmt.Sprintf("document.add(%q)", a.Path) }
func (a OpenDocument) String() string   { return fmt.Sprintf("document.open(%d)", a.ID) }
func (a SaveDocument) String() string   { return fmt.Sprintf("document.save(%d)", a.ID) }
func (a RemoveDocument) String() string { return fmt.Sprintf("document.remove(%d)", a.ID) }
