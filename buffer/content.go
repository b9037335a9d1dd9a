// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/content.go
// Summary: Line-based editable text with a caret.
// Usage: Default document.Buffer used for editor panes.

package buffer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/strelka/document"
)

// Content is a minimal multiline text buffer.
type Content struct {
	Lines  []string
	CaretX int
	CaretY int
}

// New returns a buffer holding text with the caret at the start.
func New(text string) *Content {
	return &Content{Lines: strings.Split(text, "\n")}
}

// NewBuffer adapts New to the document.Buffer factory signature.
func NewBuffer(text string) document.Buffer { return New(text) }

// Text returns the buffer contents joined with newlines.
func (c *Content) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Cursor returns the caret line and rune column.
func (c *Content) Cursor() (line, col int) {
	return c.CaretY, c.CaretX
}

// DisplayColumn returns the caret column in terminal cells. A tab takes one
// cell, matching how the frontend draws it.
func (c *Content) DisplayColumn() int {
	line := []rune(c.Lines[c.CaretY])
	col := 0
	for _, r := range line[:c.CaretX] {
		if r == '\t' {
			col++
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

// Perform applies an action. Actions of foreign types are ignored.
func (c *Content) Perform(edit document.Edit) {
	switch a := edit.(type) {
	case Move:
		c.move(a.Dir)
	case Home:
		c.CaretX = 0
	case End:
		c.CaretX = len([]rune(c.Lines[c.CaretY]))
	case Click:
		c.CaretY, c.CaretX = a.Line, a.Col
	case Insert:
		c.insertRune(a.Rune)
	case Paste:
		c.insertText(a.Text)
	case Enter:
		c.splitLine()
	case Backspace:
		c.backspace()
	case Delete:
		c.deleteAtCaret()
	default:
		return
	}
	c.clampCaret()
}

func (c *Content) move(dir Direction) {
	switch dir {
	case Left:
		if c.CaretX > 0 {
			c.CaretX--
		} else if c.CaretY > 0 {
			c.CaretY--
			c.CaretX = len([]rune(c.Lines[c.CaretY]))
		}
	case Right:
		if c.CaretX < len([]rune(c.Lines[c.CaretY])) {
			c.CaretX++
		} else if c.CaretY < len(c.Lines)-1 {
			c.CaretY++
			c.CaretX = 0
		}
	case Up:
		c.CaretY--
	case Down:
		c.CaretY++
	}
}

func (c *Content) clampCaret() {
	if c.CaretY >= len(c.Lines) {
		c.CaretY = len(c.Lines) - 1
	}
	if c.CaretY < 0 {
		c.CaretY = 0
	}
	maxX := len([]rune(c.Lines[c.CaretY]))
	if c.CaretX < 0 {
		c.CaretX = 0
	}
	if c.CaretX > maxX {
		c.CaretX = maxX
	}
}

func (c *Content) splitLine() {
	line := []rune(c.Lines[c.CaretY])
	head := string(line[:c.CaretX])
	tail := string(line[c.CaretX:])
	c.Lines[c.CaretY] = head
	c.Lines = append(c.Lines[:c.CaretY+1], append([]string{tail}, c.Lines[c.CaretY+1:]...)...)
	c.CaretY++
	c.CaretX = 0
}

func (c *Content) insertRune(r rune) {
	if r == '\n' {
		c.splitLine()
		return
	}
	line := []rune(c.Lines[c.CaretY])
	line = append(line[:c.CaretX], append([]rune{r}, line[c.CaretX:]...)...)
	c.Lines[c.CaretY] = string(line)
	c.CaretX++
}

func (c *Content) insertText(s string) {
	for _, r := range s {
		c.insertRune(r)
	}
}

func (c *Content) backspace() {
	if c.CaretX > 0 {
		line := []rune(c.Lines[c.CaretY])
		c.Lines[c.CaretY] = string(append(line[:c.CaretX-1], line[c.CaretX:]...))
		c.CaretX--
		return
	}
	if c.CaretY > 0 {
		prev := c.Lines[c.CaretY-1]
		c.CaretX = len([]rune(prev))
		c.Lines[c.CaretY-1] = prev + c.Lines[c.CaretY]
		c.Lines = append(c.Lines[:c.CaretY], c.Lines[c.CaretY+1:]...)
		c.CaretY--
	}
}

func (c *Content) deleteAtCaret() {
	line := []rune(c.Lines[c.CaretY])
	if c.CaretX < len(line) {
		c.Lines[c.CaretY] = string(append(line[:c.CaretX], line[c.CaretX+1:]...))
		return
	}
	if c.CaretY < len(c.Lines)-1 {
		c.Lines[c.CaretY] += c.Lines[c.CaretY+1]
		c.Lines = append(c.Lines[:c.CaretY+1], c.Lines[c.CaretY+2:]...)
	}
}
