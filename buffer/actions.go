// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/actions.go
// Summary: Edit and caret actions understood by Content.

package buffer

// Direction is a caret movement direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Action is a single editor action. Mutating actions report IsEdit true.
type Action interface {
	IsEdit() bool
}

// Move moves the caret one step.
type Move struct{ Dir Direction }

// Home moves the caret to the start of the line.
type Home struct{}

// End moves the caret to the end of the line.
type End struct{}

// Click places the caret at a line and rune column.
type Click struct{ Line, Col int }

// Insert types one rune at the caret.
type Insert struct{ Rune rune }

// Paste inserts text at the caret; newlines split lines.
type Paste struct{ Text string }

// Enter splits the line at the caret.
type Enter struct{}

// Backspace deletes the rune before the caret, joining lines at column 0.
type Backspace struct{}

// Delete deletes the rune under the caret.
type Delete struct{}

func (Move) IsEdit() bool      { return false }
func (Home) IsEdit() bool      { return false }
func (End) IsEdit() bool       { return false }
func (Click) IsEdit() bool     { return false }
func (Insert) IsEdit() bool    { return true }
func (Paste) IsEdit() bool     { return true }
func (Enter) IsEdit() bool     { return true }
func (Backspace) IsEdit() bool { return true }
func (Delete) IsEdit() bool    { return true }
