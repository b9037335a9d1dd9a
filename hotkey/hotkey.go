// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hotkey/hotkey.go
// Summary: Keyboard chords and their normalization from terminal key events.

package hotkey

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Modifiers is the modifier set of a chord. Shift is folded into the key.
type Modifiers uint8

const (
	None Modifiers = iota
	Ctrl
	Alt
	CtrlAlt
)

func (m Modifiers) String() string {
	switch m {
	case None:
		return ""
	case Ctrl:
		return "Ctrl"
	case Alt:
		return "Alt"
	case CtrlAlt:
		return "Ctrl-Alt"
	default:
		return "?"
	}
}

// Normalize folds modifier flags into a Modifiers value.
func Normalize(ctrl, alt bool) Modifiers {
	switch {
	case ctrl && alt:
		return CtrlAlt
	case ctrl:
		return Ctrl
	case alt:
		return Alt
	default:
		return None
	}
}

// HotKey is a (modifiers, character) chord. It is comparable.
type HotKey struct {
	Modifiers Modifiers
	Key       rune
}

// New returns the chord mods+key.
func New(mods Modifiers, key rune) HotKey {
	return HotKey{Modifiers: mods, Key: key}
}

func (h HotKey) String() string {
	if h.Modifiers == None {
		return string(h.Key)
	}
	return fmt.Sprintf("%s-%c", h.Modifiers, h.Key)
}

// Parse reads the String form back, e.g. "Ctrl-w" or "Ctrl-Alt-h".
func Parse(s string) (HotKey, error) {
	mods := None
	rest := s
	for {
		switch {
		case strings.HasPrefix(rest, "Ctrl-") && len(rest) > len("Ctrl-"):
			rest = rest[len("Ctrl-"):]
			mods = Normalize(true, mods == Alt || mods == CtrlAlt)
			continue
		case strings.HasPrefix(rest, "Alt-") && len(rest) > len("Alt-"):
			rest = rest[len("Alt-"):]
			mods = Normalize(mods == Ctrl || mods == CtrlAlt, true)
			continue
		}
		break
	}
	r := []rune(rest)
	if len(r) != 1 {
		return HotKey{}, fmt.Errorf("invalid hotkey %q", s)
	}
	return HotKey{Modifiers: mods, Key: r[0]}, nil
}

// FromEvent converts a terminal key press into a chord. Terminals report
// Ctrl+letter either as KeyCtrlA..KeyCtrlZ or as a rune carrying ModCtrl; both
// map to the same chord. Keys that are not characters (arrows, Backspace, Tab,
// Enter, function keys) are not chords.
func FromEvent(key tcell.Key, r rune, mods tcell.ModMask) (HotKey, bool) {
	ctrl := mods&tcell.ModCtrl != 0
	alt := mods&tcell.ModAlt != 0

	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		letter := rune('a' + int(key-tcell.KeyCtrlA))
		return HotKey{Modifiers: Normalize(true, alt), Key: letter}, true
	}
	if key != tcell.KeyRune || r == 0 {
		return HotKey{}, false
	}
	if ctrl {
		r = unicode.ToLower(r)
	}
	return HotKey{Modifiers: Normalize(ctrl, alt), Key: r}, true
}
