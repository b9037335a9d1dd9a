// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/message.go
// Summary: Messages reduced by Session.Update.

package session

import (
	"github.com/gdamore/tcell/v2"
	"github.com/samber/mo"

	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/notification"
	"github.com/framegrace/strelka/theming"
)

// Message is the single input type of the reducer.
type Message interface {
	isMessage()
}

// Placement selects where an opened file is shown.
type Placement int

const (
	// PlaceCurrent reuses the focused pane when it is a NewDocument pane.
	PlaceCurrent Placement = iota
	// PlaceForceCurrent always replaces the focused pane.
	PlaceForceCurrent
	// PlaceNewTab always adds a pane.
	PlaceNewTab
)

// ActionMessage carries a user intent that plugins may rewrite.
type ActionMessage struct{ Action action.Action }

// GenericMessage applies a generic action without consulting plugins.
type GenericMessage struct{ Generic action.Generic }

// OpenedFile reports the completion of a file read.
type OpenedFile struct {
	Result    mo.Result[fileio.Opened]
	Placement Placement
}

// SavedFile reports the completion of a save.
type SavedFile struct {
	ID  document.ID
	Err error
}

// TextEditorAction applies an edit to a document buffer.
type TextEditorAction struct {
	Document document.ID
	Edit     document.Edit
}

// LoadTheme activates a theme.
type LoadTheme struct{ ID theming.ID }

// AddTheme inserts a theme into the catalog.
type AddTheme struct {
	Theme    *theming.Theme
	Metadata theming.Metadata
}

// LoadPlugin loads (Load true) or unloads a plugin.
type LoadPlugin struct {
	ID   string
	Load bool
}

// PluginMessage delivers a hotkey message to a plugin.
type PluginMessage struct {
	ID      string
	Message string
}

// KeyPress is a key reported by the terminal.
type KeyPress struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// OpenDirectory makes Path the working directory.
type OpenDirectory struct{ Path string }

// DirectoryResolved carries the canonical form of an OpenDirectory path,
// or why it is not a usable directory.
type DirectoryResolved struct {
	Path string
	Err  error
}

// DirectoryContent reports the listing of Path.
type DirectoryContent struct {
	Path    string
	Entries []fileio.Entry
	Err     error
}

// SendNotification shows Text to the user.
type SendNotification struct{ Text string }

// RemoveNotification dismisses a notification.
type RemoveNotification struct{ ID notification.ID }

// DocumentAdded reports the id allocated by an AddDocument action.
type DocumentAdded struct{ ID document.ID }

// Quit asks the session to stop.
type Quit struct{}

// NoOp does nothing.
type NoOp struct{}

func (ActionMessage) isMessage()      {}
func (GenericMessage) isMessage()     {}
func (OpenedFile) isMessage()         {}
func (SavedFile) isMessage()          {}
func (TextEditorAction) isMessage()   {}
func (LoadTheme) isMessage()          {}
func (AddTheme) isMessage()           {}
func (LoadPlugin) isMessage()         {}
func (PluginMessage) isMessage()      {}
func (KeyPress) isMessage()           {}
func (OpenDirectory) isMessage()      {}
func (DirectoryResolved) isMessage()  {}
func (DirectoryContent) isMessage()   {}
func (SendNotification) isMessage()   {}
func (RemoveNotification) isMessage() {}
func (DocumentAdded) isMessage()      {}
func (Quit) isMessage()               {}
func (NoOp) isMessage()               {}

// Act wraps g as an ActionMessage.
func Act(g action.Generic) Message {
	return ActionMessage{Action: action.New(g)}
}
