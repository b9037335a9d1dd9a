// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/notification"
	"github.com/framegrace/strelka/pane"
	"github.com/framegrace/strelka/session"
)

func newTestFrontend(t *testing.T) (*frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 6)
	t.Cleanup(screen.Fini)
	return newFrontend(screen), screen
}

func readScreenLine(screen tcell.Screen, x, y, width int) string {
	runes := make([]rune, width)
	for i := 0; i < width; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		if ch == 0 {
			ch = ' '
		}
		runes[i] = ch
	}
	return strings.TrimRight(string(runes), " ")
}

func TestRenderDrawsTabsAndEditor(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.render(session.View{
		Panes: []session.PaneView{
			{ID: 1, Kind: pane.KindNewDocument, Title: "New document"},
			{ID: 2, Kind: pane.KindEditor, Title: "a.txt", Focused: true, Document: &session.DocumentView{
				Path: "/tmp/a.txt", Text: "hello\nworld", CursorLine: 1, CursorCol: 2, DisplayCol: 2,
			}},
		},
	})

	assert.Equal(t, " New document │ a.txt │", readScreenLine(screen, 0, 0, 40))
	assert.Equal(t, "hello", readScreenLine(screen, 0, 1, 40))
	assert.Equal(t, "world", readScreenLine(screen, 0, 2, 40))
	assert.Contains(t, readScreenLine(screen, 0, 5, 40), "2:3")
}

func TestRenderShowsLatestNotification(t *testing.T) {
	f, screen := newTestFrontend(t)
	v := session.View{Panes: []session.PaneView{{ID: 1, Kind: pane.KindNewDocument, Title: "New document", Focused: true}}}
	f.render(v)
	assert.Equal(t, "Strelka", readScreenLine(screen, 0, 1, 40))

	v.Notifications = []notification.Notification{{ID: "a", Text: "first"}, {ID: "b", Text: "second"}}
	f.render(v)
	assert.Equal(t, "second", readScreenLine(screen, 0, 5, 40))
}

func waitForPrompt(t *testing.T, f *frontend) {
	t.Helper()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.prompt != nil
	}, time.Second, 5*time.Millisecond)
}

func TestPickFileReturnsTypedPath(t *testing.T) {
	f, screen := newTestFrontend(t)

	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		p, err := f.PickFile(context.Background(), "/src")
		done <- result{p, err}
	}()
	waitForPrompt(t, f)

	assert.Equal(t, "Open: /src/", readScreenLine(screen, 0, 5, 40))
	for _, r := range "ab" {
		assert.True(t, f.promptKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
	f.promptKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	f.promptKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, "/src/a", r.path)
	case <-time.After(time.Second):
		t.Fatal("PickFile did not return")
	}
	assert.False(t, f.promptKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestPickFileEscapeCancels(t *testing.T) {
	f, _ := newTestFrontend(t)

	done := make(chan error, 1)
	go func() {
		_, err := f.PickFile(context.Background(), "")
		done <- err
	}()
	waitForPrompt(t, f)
	f.promptKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, fileio.ErrCancelled)
	case <-time.After(time.Second):
		t.Fatal("PickFile did not return")
	}
}

func TestPickFileStopsOnContext(t *testing.T) {
	f, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := f.PickFile(ctx, "")
		done <- err
	}()
	waitForPrompt(t, f)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("PickFile did not return")
	}
}
