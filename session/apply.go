// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/apply.go
// Summary: Applies generic actions to the stores and schedules file tasks.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasepe/codename"
	"github.com/samber/mo"

	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/buffer"
	"github.com/framegrace/strelka/config"
	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/event"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/hotkey"
	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/pane"
)

func (s *Session) apply(g action.Generic) Task {
	logging.Debug("Session: apply", "action", g)
	switch a := g.(type) {
	case action.PickFile:
		return s.pickFile()
	case action.OpenFileCurrentTab:
		return s.openFile(a.Path, PlaceCurrent)
	case action.OpenFileForceCurrentTab:
		return s.openFile(a.Path, PlaceForceCurrent)
	case action.OpenFileNewTab:
		return s.openFile(a.Path, PlaceNewTab)

	case action.AddPane:
		s.addPane(a.Pane)
	case action.OpenPane:
		if _, ok := s.state.Panes.Get(a.ID); !ok {
			logging.Debug("Session: open unknown pane", "id", a.ID)
			return None()
		}
		s.state.Panes.Open(a.ID)
		s.broadcast(event.PaneFocused, a.ID)
	case action.ClosePane:
		s.closePane(a.ID)
	case action.ReplacePane:
		s.replacePane(a.ID, a.Pane)

	case action.AddDocument:
		id := s.addDocument(a.Path, a.Text, "")
		tasks := []Task{Done(DocumentAdded{ID: id})}
		if a.Open {
			// Reduced now so keys already queued land in the new editor.
			tasks = append(tasks, s.Update(Act(action.AddPane{Pane: pane.Editor(id)})))
		}
		return Batch(tasks...)
	case action.OpenDocument:
		if _, ok := s.state.Documents.Get(a.ID); !ok {
			return None()
		}
		return s.Update(Act(action.AddPane{Pane: pane.Editor(a.ID)}))
	case action.SaveDocument:
		return s.saveDocument(a.ID)
	case action.RemoveDocument:
		s.removeDocument(a.ID)

	default:
		logging.Warn("Session: unknown action", "action", g)
	}
	return None()
}

func (s *Session) addPane(p pane.Pane) pane.ID {
	id := s.state.Panes.Add(p)
	s.state.Panes.Open(id)
	s.broadcast(event.PaneAdded, id)
	s.broadcast(event.PaneFocused, id)
	return id
}

func (s *Session) closePane(id pane.ID) {
	removed, ok := s.state.Panes.Remove(id).Get()
	if !ok {
		logging.Debug("Session: close unknown pane", "id", id)
		return
	}
	s.broadcast(event.PaneClosed, id)
	if doc, isEditor := removed.EditorDocument(); isEditor {
		s.releaseDocument(doc)
	}
	if s.state.Panes.IsEmpty() {
		s.addPane(pane.NewDocument())
	}
}

func (s *Session) replacePane(id pane.ID, p pane.Pane) {
	old, ok := s.state.Panes.Get(id)
	if !ok {
		logging.Debug("Session: replace unknown pane", "id", id)
		return
	}
	s.state.Panes.Replace(id, p)
	s.broadcast(event.PaneReplaced, id)
	if doc, isEditor := old.EditorDocument(); isEditor && old != p {
		s.releaseDocument(doc)
	}
}

// releaseDocument drops doc once no pane shows it.
func (s *Session) releaseDocument(doc document.ID) {
	if s.state.Panes.ReferencesDocument(doc) > 0 {
		return
	}
	s.removeDocument(doc)
}

func (s *Session) removeDocument(id document.ID) {
	if _, ok := s.state.Documents.Get(id); !ok {
		return
	}
	s.state.Documents.Remove(id)
	s.broadcast(event.DocumentRemoved, id)
}

func (s *Session) addDocument(path, text, language string) document.ID {
	h := document.NewHandler(s.newBuffer(text), path)
	h.Language = language
	if path == "" {
		h.Filename = s.untitledName()
	}
	id := s.state.Documents.Add(h)
	s.broadcast(event.DocumentAdded, id)
	return id
}

func (s *Session) untitledName() string {
	if s.names == nil {
		return fmt.Sprintf("untitled-%d", s.state.Documents.Count()+1)
	}
	return "untitled-" + codename.Generate(s.names, 0)
}

func (s *Session) workdir() string {
	return s.state.Config.GetString(config.SystemNamespace, "workdir", "")
}

func (s *Session) pickFile() Task {
	files, dir := s.files, s.workdir()
	return Perform(func(ctx context.Context) Message {
		path, err := files.Pick(ctx, dir)
		if errors.Is(err, fileio.ErrCancelled) {
			return NoOp{}
		}
		if err != nil {
			return OpenedFile{Result: mo.Err[fileio.Opened](err), Placement: PlaceCurrent}
		}
		return OpenedFile{Result: mo.TupleToResult(files.Open(ctx, path)), Placement: PlaceCurrent}
	}, func(m Message) Message { return m })
}

func (s *Session) openFile(path string, placement Placement) Task {
	files := s.files
	return Perform(func(ctx context.Context) mo.Result[fileio.Opened] {
		return mo.TupleToResult(files.Open(ctx, path))
	}, func(r mo.Result[fileio.Opened]) Message {
		return OpenedFile{Result: r, Placement: placement}
	})
}

func (s *Session) openedFile(m OpenedFile) Task {
	opened, err := m.Result.Get()
	if err != nil {
		logging.Warn("Session: open failed", "err", err)
		return s.notify(fmt.Sprintf("Could not open file: %v", err))
	}

	id := s.addDocument(opened.Path, opened.Content, opened.Language)
	editor := pane.Editor(id)
	focused, hasFocus := s.state.Panes.GetOpenID().Get()
	current, _ := s.state.Panes.GetOpen().Get()

	switch {
	case m.Placement == PlaceCurrent && hasFocus && current.Kind == pane.KindNewDocument:
		s.replacePane(focused, editor)
	case m.Placement == PlaceForceCurrent && hasFocus:
		s.replacePane(focused, editor)
	default:
		s.addPane(editor)
	}
	return Done(DocumentAdded{ID: id})
}

func (s *Session) saveDocument(id document.ID) Task {
	h, ok := s.state.Documents.Get(id)
	if !ok {
		logging.Debug("Session: save unknown document", "id", id)
		return None()
	}
	files, path, text := s.files, h.Path, h.Text()
	return Perform(func(ctx context.Context) error {
		return files.Save(ctx, path, text)
	}, func(err error) Message {
		return SavedFile{ID: id, Err: err}
	})
}

func (s *Session) savedFile(m SavedFile) Task {
	h, ok := s.state.Documents.Get(m.ID)
	if !ok {
		return None()
	}
	if m.Err != nil {
		logging.Warn("Session: save failed", "id", m.ID, "path", h.Path, "err", m.Err)
		return s.notify(fmt.Sprintf("Could not save %s: %v", h.Filename, m.Err))
	}
	h.Changed = false
	s.broadcast(event.DocumentSaved, m.ID)
	return None()
}

func (s *Session) keyPress(m KeyPress) Task {
	if hk, ok := hotkey.FromEvent(m.Key, m.Rune, m.Mods); ok {
		if msg, bound := s.hotkeys.Dispatch(s.state, hk); bound {
			// Reduced inline; a round trip through the executor would let
			// keys queued behind this one overtake it.
			return s.Update(msg)
		}
	}

	// Unbound editing keys go to the focused editor.
	doc, ok := s.state.FocusedDocument()
	if !ok {
		return None()
	}
	edit, ok := buffer.FromKey(tcell.NewEventKey(m.Key, m.Rune, m.Mods))
	if !ok {
		return None()
	}
	s.ApplyTextEdit(doc, edit)
	return None()
}

// openDirectory resolves path through the file system off the reducer;
// directoryResolved switches the workdir once it is known to be a directory.
func (s *Session) openDirectory(path string) Task {
	files := s.files
	return Perform(func(ctx context.Context) Message {
		dir, err := files.ResolveDir(ctx, path)
		return DirectoryResolved{Path: dir, Err: err}
	}, func(m Message) Message { return m })
}

func (s *Session) directoryResolved(m DirectoryResolved) Task {
	if m.Err != nil {
		logging.Debug("Session: open directory", "path", m.Path, "err", m.Err)
		return None()
	}
	s.state.Config.Insert(config.SystemNamespace, "workdir", config.String(m.Path))
	return s.listDirectory(m.Path)
}

func (s *Session) listDirectory(dir string) Task {
	files := s.files
	return Perform(func(ctx context.Context) Message {
		entries, err := files.ReadDir(ctx, dir)
		return DirectoryContent{Path: dir, Entries: entries, Err: err}
	}, func(m Message) Message { return m })
}
