// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/hotkeys.go
// Summary: Default key bindings.

package session

import (
	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/hotkey"
	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/pane"
	"github.com/framegrace/strelka/state"
	"github.com/framegrace/strelka/theming"
)

func (s *Session) bind(hk hotkey.HotKey, b hotkey.Binding[Message]) {
	s.hotkeys.Bind(hk, b)
	logging.Debug("Session: added hotkey", "key", hk)
}

func (s *Session) bindDefaults() {
	ctrl := func(r rune) hotkey.HotKey { return hotkey.New(hotkey.Ctrl, r) }

	s.bind(ctrl('o'), func(*state.State) Message {
		return Act(action.PickFile{})
	})
	s.bind(ctrl('d'), func(*state.State) Message {
		return LoadTheme{ID: theming.ID("core.dark")}
	})
	s.bind(ctrl('t'), func(*state.State) Message {
		return Act(action.AddPane{Pane: pane.NewDocument()})
	})
	s.bind(ctrl('w'), func(st *state.State) Message {
		if id, ok := st.Panes.GetOpenID().Get(); ok {
			return Act(action.ClosePane{ID: id})
		}
		return nil
	})
	s.bind(ctrl('b'), func(*state.State) Message {
		return Act(action.AddPane{Pane: pane.Buffer()})
	})
	s.bind(ctrl(','), func(*state.State) Message {
		return Act(action.AddPane{Pane: pane.Config()})
	})

	s.bind(ctrl('s'), func(st *state.State) Message {
		if doc, ok := st.FocusedDocument(); ok {
			return Act(action.SaveDocument{ID: doc})
		}
		return nil
	})
	s.bind(ctrl('n'), func(*state.State) Message {
		return Act(action.AddDocument{Open: true})
	})
	s.bind(ctrl('e'), func(*state.State) Message {
		return Act(action.AddPane{Pane: pane.Explorer()})
	})
	s.bind(ctrl('q'), func(*state.State) Message {
		return Quit{}
	})
}
