// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/view.go
// Summary: Immutable read model handed to the frontend after each update.

package session

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/strelka/config"
	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/notification"
	"github.com/framegrace/strelka/pane"
	"github.com/framegrace/strelka/theming"
)

// MaxTitleWidth is the widest pane title in terminal cells.
const MaxTitleWidth = 24

// View is a snapshot of everything the frontend draws.
type View struct {
	Panes         []PaneView
	Theme         *theming.Theme
	Notifications []notification.Notification
	Config        []config.Entry
	Workdir       string
	Directory     []fileio.Entry
}

// PaneView describes one pane.
type PaneView struct {
	ID      pane.ID
	Kind    pane.Kind
	Title   string
	Focused bool
	// Document is set for editor panes whose document exists.
	Document *DocumentView
}

// DocumentView is a copy of a document's visible state.
type DocumentView struct {
	ID         document.ID
	Filename   string
	Path       string
	Language   string
	Changed    bool
	Text       string
	CursorLine int
	CursorCol  int
	// DisplayCol is the caret column in terminal cells.
	DisplayCol int
}

type cursorer interface {
	Cursor() (line, col int)
}

type displayColumner interface {
	DisplayColumn() int
}

// Focused returns the focused pane view.
func (v View) Focused() (PaneView, bool) {
	for _, p := range v.Panes {
		if p.Focused {
			return p, true
		}
	}
	return PaneView{}, false
}

// View builds the read model. The result shares no mutable state with the
// session.
func (s *Session) View() View {
	st := s.state
	focused, hasFocus := st.Panes.GetOpenID().Get()

	v := View{
		Theme:         st.Themes.Current(),
		Notifications: st.Notifications.All(),
		Config:        st.Config.Entries(),
		Workdir:       s.workdir(),
		Directory:     append([]fileio.Entry(nil), st.Directory...),
	}
	for _, id := range st.Panes.IDs() {
		p, _ := st.Panes.Get(id)
		pv := PaneView{
			ID:      id,
			Kind:    p.Kind,
			Focused: hasFocus && id == focused,
		}
		if doc, ok := p.EditorDocument(); ok {
			if h, exists := st.Documents.Get(doc); exists {
				pv.Document = documentView(doc, h)
			}
		}
		pv.Title = title(pv)
		v.Panes = append(v.Panes, pv)
	}
	return v
}

func documentView(id document.ID, h *document.Handler) *DocumentView {
	dv := &DocumentView{
		ID:       id,
		Filename: h.Filename,
		Path:     h.Path,
		Language: h.Language,
		Changed:  h.Changed,
		Text:     h.Text(),
	}
	if c, ok := h.Buffer.(cursorer); ok {
		dv.CursorLine, dv.CursorCol = c.Cursor()
		dv.DisplayCol = dv.CursorCol
	}
	if d, ok := h.Buffer.(displayColumner); ok {
		dv.DisplayCol = d.DisplayColumn()
	}
	return dv
}

func title(pv PaneView) string {
	var t string
	switch pv.Kind {
	case pane.KindNewDocument:
		t = "New document"
	case pane.KindEditor:
		if pv.Document == nil {
			t = "Closed document"
			break
		}
		t = pv.Document.Filename
		if pv.Document.Changed {
			t += " •"
		}
	case pane.KindBuffer:
		t = "Buffer"
	case pane.KindConfig:
		t = "Config"
	case pane.KindExplorer:
		t = "Explorer"
	default:
		t = pv.Kind.String()
	}
	return runewidth.Truncate(t, MaxTitleWidth, "…")
}
