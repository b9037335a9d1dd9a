// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/ui.go
// Summary: Converts frontend events and terminal keys into messages.

package session

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/pane"
)

// UIEvent is an intent raised by a frontend widget.
type UIEvent interface {
	isUIEvent()
}

// UIPickFile is raised by the "open file" entry of the new-document pane.
type UIPickFile struct{}

// UINewPane asks for a new pane.
type UINewPane struct{ Pane pane.Pane }

// UIOpenPane focuses a pane, e.g. by clicking its tab.
type UIOpenPane struct{ ID pane.ID }

// UIClosePane closes a pane.
type UIClosePane struct{ ID pane.ID }

// UIEdit is an edit performed in an editor widget.
type UIEdit struct {
	Document document.ID
	Edit     document.Edit
}

// UIOpenPath opens a file picked from the explorer.
type UIOpenPath struct{ Path string }

func (UIPickFile) isUIEvent()  {}
func (UINewPane) isUIEvent()   {}
func (UIOpenPane) isUIEvent()  {}
func (UIClosePane) isUIEvent() {}
func (UIEdit) isUIEvent()      {}
func (UIOpenPath) isUIEvent()  {}

// MapUI converts a frontend event into a message. User intents go through
// the action pipeline so plugins can observe them.
func MapUI(ev UIEvent) Message {
	switch e := ev.(type) {
	case UIPickFile:
		return Act(action.PickFile{})
	case UINewPane:
		return Act(action.AddPane{Pane: e.Pane})
	case UIOpenPane:
		return Act(action.OpenPane{ID: e.ID})
	case UIClosePane:
		return Act(action.ClosePane{ID: e.ID})
	case UIEdit:
		return TextEditorAction{Document: e.Document, Edit: e.Edit}
	case UIOpenPath:
		return Act(action.OpenFileCurrentTab{Path: e.Path})
	}
	return NoOp{}
}

// Subscription turns terminal key events into KeyPress messages until ctx is
// done or keys is closed.
func Subscription(ctx context.Context, keys <-chan *tcell.EventKey) <-chan Message {
	out := make(chan Message)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-keys:
				if !ok {
					return
				}
				if ev == nil {
					continue
				}
				msg := KeyPress{Key: ev.Key(), Rune: ev.Rune(), Mods: ev.Modifiers()}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
