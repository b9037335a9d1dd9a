// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: state/state.go
// Summary: Aggregate session state shared read-only with hotkeys and plugins.

package state

import (
	"github.com/framegrace/strelka/config"
	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/notification"
	"github.com/framegrace/strelka/pane"
	"github.com/framegrace/strelka/theming"
)

// State owns the session stores. Only the session reducer mutates it; hotkey
// bindings and plugins receive it to read.
type State struct {
	Documents     *document.Store
	Panes         *pane.Model
	Config        *config.Config
	Themes        *theming.Catalog
	Notifications *notification.List
	// Directory is the listing of the last opened directory.
	Directory []fileio.Entry
}

// New returns an empty state using cfg. A nil cfg starts empty.
func New(cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.New()
	}
	return &State{
		Documents:     document.NewStore(),
		Panes:         pane.NewModel(),
		Config:        cfg,
		Themes:        theming.NewCatalog(),
		Notifications: notification.NewList(),
	}
}

// FocusedDocument returns the document shown by the focused pane, if any.
func (s *State) FocusedDocument() (document.ID, bool) {
	p, ok := s.Panes.GetOpen().Get()
	if !ok {
		return 0, false
	}
	return p.EditorDocument()
}
