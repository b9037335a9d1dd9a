// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/keys.go
// Summary: Maps terminal key events to buffer actions.

package buffer

import "github.com/gdamore/tcell/v2"

// FromKey returns the action for an editing key. Chords carrying Ctrl or Alt
// are not editing keys and belong to the hotkey dispatcher.
func FromKey(ev *tcell.EventKey) (Action, bool) {
	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 && ev.Key() == tcell.KeyRune {
		return nil, false
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		return Move{Dir: Left}, true
	case tcell.KeyRight:
		return Move{Dir: Right}, true
	case tcell.KeyUp:
		return Move{Dir: Up}, true
	case tcell.KeyDown:
		return Move{Dir: Down}, true
	case tcell.KeyHome:
		return Home{}, true
	case tcell.KeyEnd:
		return End{}, true
	case tcell.KeyEnter:
		return Enter{}, true
	case tcell.KeyTab:
		return Insert{Rune: '\t'}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Backspace{}, true
	case tcell.KeyDelete:
		return Delete{}, true
	case tcell.KeyRune:
		return Insert{Rune: ev.Rune()}, true
	}
	return nil, false
}
