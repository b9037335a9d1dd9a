// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/strelka/frontend.go
// Summary: tcell frontend drawing the session view and prompting for paths.
// Usage: render is the runtime frame callback; poll feeds key events to the
// session subscription; PickFile implements fileio.Picker.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/strelka/config"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/pane"
	"github.com/framegrace/strelka/session"
	"github.com/framegrace/strelka/theming"
)

var welcome = []string{
	"Strelka",
	"",
	"Ctrl-O  open file        Ctrl-N  new document",
	"Ctrl-T  new tab          Ctrl-W  close tab",
	"Ctrl-S  save             Ctrl-E  explorer",
	"Ctrl-,  configuration    Ctrl-D  dark theme",
	"Ctrl-B  buffer           Ctrl-Q  quit",
}

type promptResult struct {
	path      string
	cancelled bool
}

type prompt struct {
	label string
	text  []rune
	reply chan promptResult
}

type frontend struct {
	screen tcell.Screen

	mu     sync.Mutex
	view   session.View
	prompt *prompt

	// drawMu serializes frames; render, poll and PickFile redraw from
	// different goroutines.
	drawMu sync.Mutex
}

func newFrontend(screen tcell.Screen) *frontend {
	return &frontend{screen: screen}
}

// PickFile shows a path prompt on the status line and waits for Enter or Esc.
func (f *frontend) PickFile(ctx context.Context, dir string) (string, error) {
	start := dir
	if start != "" && !strings.HasSuffix(start, string(filepath.Separator)) {
		start += string(filepath.Separator)
	}
	p := &prompt{label: "Open: ", text: []rune(start), reply: make(chan promptResult, 1)}

	f.mu.Lock()
	if f.prompt != nil {
		f.mu.Unlock()
		return "", fileio.ErrCancelled
	}
	f.prompt = p
	f.mu.Unlock()
	f.redraw()

	defer func() {
		f.mu.Lock()
		if f.prompt == p {
			f.prompt = nil
		}
		f.mu.Unlock()
		f.redraw()
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.reply:
		if r.cancelled || strings.TrimSpace(r.path) == "" {
			return "", fileio.ErrCancelled
		}
		return r.path, nil
	}
}

// poll reads terminal events until the screen is finalized or ctx ends.
// Keys go to the prompt when one is open, else to keys.
func (f *frontend) poll(ctx context.Context, keys chan<- *tcell.EventKey) {
	defer close(keys)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			f.screen.Sync()
			f.redraw()
		case *tcell.EventKey:
			if f.promptKey(e) {
				f.redraw()
				continue
			}
			select {
			case keys <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (f *frontend) promptKey(ev *tcell.EventKey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.prompt
	if p == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		p.reply <- promptResult{path: string(p.text)}
		f.prompt = nil
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.reply <- promptResult{cancelled: true}
		f.prompt = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.text) > 0 {
			p.text = p.text[:len(p.text)-1]
		}
	case tcell.KeyRune:
		p.text = append(p.text, ev.Rune())
	}
	return true
}

// render is the runtime frame callback.
func (f *frontend) render(v session.View) {
	f.mu.Lock()
	f.view = v
	f.mu.Unlock()
	f.redraw()
}

func (f *frontend) redraw() {
	f.mu.Lock()
	v := f.view
	var p *prompt
	if f.prompt != nil {
		cp := *f.prompt
		cp.text = append([]rune(nil), f.prompt.text...)
		p = &cp
	}
	f.mu.Unlock()

	f.drawMu.Lock()
	defer f.drawMu.Unlock()
	draw(f.screen, v, p)
	f.screen.Show()
}

type palette struct {
	base, tab, active, muted, accent tcell.Style
}

func stylesFor(t *theming.Theme) palette {
	if t == nil {
		s := tcell.StyleDefault
		return palette{base: s, tab: s, active: s.Reverse(true), muted: s.Dim(true), accent: s.Bold(true)}
	}
	c := func(col config.Color) tcell.Color {
		return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
	}
	pal := t.Palette
	base := tcell.StyleDefault.Background(c(pal.Background)).Foreground(c(pal.Foreground))
	return palette{
		base:   base,
		tab:    base.Background(c(pal.Border)),
		active: base.Background(c(pal.Selection)).Foreground(c(pal.Accent)).Bold(true),
		muted:  base.Foreground(c(pal.Muted)),
		accent: base.Foreground(c(pal.Accent)),
	}
}

func draw(screen tcell.Screen, v session.View, p *prompt) {
	st := stylesFor(v.Theme)
	w, h := screen.Size()
	screen.SetStyle(st.base)
	screen.Clear()
	screen.HideCursor()
	if w <= 0 || h <= 0 {
		return
	}

	// Tab bar.
	x := 0
	fill(screen, 0, w, st.tab)
	for _, pv := range v.Panes {
		style := st.tab
		if pv.Focused {
			style = st.active
		}
		x = text(screen, x, 0, w, " "+pv.Title+" ", style)
		x = text(screen, x, 0, w, "│", st.tab)
	}

	bodyTop, bodyBottom := 1, h-1
	if focused, ok := v.Focused(); ok {
		drawBody(screen, v, focused, st, bodyTop, bodyBottom, w)
	}

	// Status line.
	y := h - 1
	fill(screen, y, w, st.tab)
	switch {
	case p != nil:
		end := text(screen, 0, y, w, p.label+string(p.text), st.accent)
		screen.ShowCursor(end, y)
	case len(v.Notifications) > 0:
		text(screen, 0, y, w, v.Notifications[len(v.Notifications)-1].Text, st.accent)
	default:
		status := ""
		if v.Theme != nil {
			status = string(v.Theme.ID)
		}
		if focused, ok := v.Focused(); ok && focused.Document != nil {
			d := focused.Document
			status = fmt.Sprintf("%s  %s  %d:%d  %s", d.Path, d.Language, d.CursorLine+1, d.CursorCol+1, status)
		}
		text(screen, 0, y, w, status, st.muted)
	}
}

func drawBody(screen tcell.Screen, v session.View, pv session.PaneView, st palette, top, bottom, w int) {
	var lines []string
	style := st.base
	switch pv.Kind {
	case pane.KindNewDocument:
		lines = welcome
	case pane.KindEditor:
		if pv.Document == nil {
			return
		}
		lines = strings.Split(pv.Document.Text, "\n")
	case pane.KindBuffer:
		lines = []string{"Scratch buffer (experimental)"}
		style = st.muted
	case pane.KindConfig:
		for _, e := range v.Config {
			lines = append(lines, fmt.Sprintf("%s.%s = %s", e.Namespace, e.Property, e.Value))
		}
	case pane.KindExplorer:
		lines = append(lines, v.Workdir)
		for _, e := range v.Directory {
			name := e.Name
			if e.Dir {
				name += "/"
			}
			lines = append(lines, "  "+name)
		}
	}

	// Keep the caret visible.
	first := 0
	rows := bottom - top
	if d := pv.Document; d != nil && rows > 0 && d.CursorLine >= rows {
		first = d.CursorLine - rows + 1
	}
	for i := 0; i < rows && first+i < len(lines); i++ {
		text(screen, 0, top+i, w, lines[first+i], style)
	}
	if d := pv.Document; d != nil && rows > 0 {
		screen.ShowCursor(d.DisplayCol, top+d.CursorLine-first)
	}
}

func fill(screen tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// text draws s from x, clipped at w, and returns the column after it.
func text(screen tcell.Screen, x, y, w int, s string, style tcell.Style) int {
	for _, r := range s {
		if r == '\t' {
			r = ' '
		}
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
