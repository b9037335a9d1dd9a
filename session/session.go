// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/session.go
// Summary: Session facade owning the stores, plugin host and hotkeys.
// Usage: An executor calls Update for every message, runs the returned tasks
// and renders View after each update.

package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/lucasepe/codename"

	"github.com/framegrace/strelka/buffer"
	"github.com/framegrace/strelka/config"
	"github.com/framegrace/strelka/document"
	"github.com/framegrace/strelka/event"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/hotkey"
	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/pane"
	"github.com/framegrace/strelka/plugin"
	"github.com/framegrace/strelka/state"
	"github.com/framegrace/strelka/theming"
)

const (
	// DefaultThemeDir is searched for theme files at startup.
	DefaultThemeDir = "./themes"
	// DefaultNotificationTTL is how long a notification stays visible.
	DefaultNotificationTTL = 5 * time.Second
)

// Session is the single owner of editor state. It is not safe for
// concurrent use; all calls must come from the executor goroutine.
type Session struct {
	state    *state.State
	plugins  *plugin.Host
	hotkeys  *hotkey.Registry[Message]
	events   *event.Dispatcher
	files    fileio.System
	themeDir string
	ttl      time.Duration

	newBuffer func(text string) document.Buffer
	names     *rand.Rand
	extra     []plugin.Plugin
	quitting  bool
}

// Option configures a Session.
type Option func(*Session)

// WithFiles sets the file system used by file tasks.
func WithFiles(files fileio.System) Option {
	return func(s *Session) { s.files = files }
}

// WithThemeDir sets the directory searched for theme files.
func WithThemeDir(dir string) Option {
	return func(s *Session) { s.themeDir = dir }
}

// WithPlugin registers p after the built-in plugins.
func WithPlugin(p plugin.Plugin) Option {
	return func(s *Session) { s.extra = append(s.extra, p) }
}

// WithBufferFactory sets how document buffers are created.
func WithBufferFactory(fn func(text string) document.Buffer) Option {
	return func(s *Session) { s.newBuffer = fn }
}

// WithNotificationTTL sets how long notifications stay visible. Zero keeps
// them until removed.
func WithNotificationTTL(d time.Duration) Option {
	return func(s *Session) { s.ttl = d }
}

// New builds a session over cfg and returns the tasks to run at startup:
// loading every registered plugin, discovering themes and then applying the
// configured theme.
func New(cfg *config.Config, opts ...Option) (*Session, Task) {
	s := &Session{
		state:     state.New(cfg),
		plugins:   plugin.NewHost(),
		hotkeys:   hotkey.NewRegistry[Message](),
		events:    event.NewDispatcher(),
		files:     fileio.NewLocal(nil),
		themeDir:  DefaultThemeDir,
		ttl:       DefaultNotificationTTL,
		newBuffer: buffer.NewBuffer,
	}
	if ms := s.state.Config.GetInt(config.SystemNamespace, "notification_ttl_ms", -1); ms >= 0 {
		s.ttl = time.Duration(ms) * time.Millisecond
	}
	for _, opt := range opts {
		opt(s)
	}
	if rng, err := codename.DefaultRNG(); err == nil {
		s.names = rng
	} else {
		logging.Warn("Session: name generator unavailable", "err", err)
	}

	for _, p := range append([]plugin.Plugin{plugin.NewExample()}, s.extra...) {
		if err := s.plugins.Register(p); err != nil {
			logging.Error("Session: plugin registration failed", "err", err)
		}
	}

	id := s.state.Panes.Add(pane.NewDocument())
	s.state.Panes.Open(id)

	s.bindDefaults()

	var tasks []Task
	for _, id := range s.plugins.IDs() {
		tasks = append(tasks, Done(LoadPlugin{ID: id, Load: true}))
	}
	themeID := theming.ID(s.state.Config.GetString(config.SystemNamespace, "theme", string(theming.DefaultID)))
	tasks = append(tasks, s.discoverThemes().Then(Done(LoadTheme{ID: themeID})))
	if dir := s.state.Config.GetString(config.SystemNamespace, "workdir", ""); dir != "" {
		tasks = append(tasks, s.listDirectory(dir))
	}
	return s, Batch(tasks...)
}

func (s *Session) discoverThemes() Task {
	dir := s.themeDir
	return Stream(func(ctx context.Context, emit func(Message)) {
		err := theming.Discover(ctx, dir, func(l theming.Loaded) {
			emit(AddTheme{Theme: l.Theme, Metadata: l.Metadata})
		})
		if err != nil {
			logging.Warn("Session: theme discovery failed", "dir", dir, "err", err)
		}
	})
}

// State exposes the session state for reading.
func (s *Session) State() *state.State { return s.state }

// Plugins exposes the plugin host.
func (s *Session) Plugins() *plugin.Host { return s.plugins }

// Hotkeys exposes the hotkey registry so callers can add user bindings.
func (s *Session) Hotkeys() *hotkey.Registry[Message] { return s.hotkeys }

// Theme returns the active theme id.
func (s *Session) Theme() theming.ID { return s.state.Themes.CurrentID() }

// Subscribe registers a listener for state change events.
func (s *Session) Subscribe(l event.Listener) { s.events.Subscribe(l) }

// Unsubscribe removes a listener.
func (s *Session) Unsubscribe(l event.Listener) { s.events.Unsubscribe(l) }

// Quitting reports whether a Quit message has been handled.
func (s *Session) Quitting() bool { return s.quitting }

func (s *Session) broadcast(t event.Type, payload interface{}) {
	s.events.Broadcast(event.Event{Type: t, Payload: payload})
}

// Update reduces msg and returns the follow-up work. It never blocks and
// never fails; errors become notifications or are dropped.
func (s *Session) Update(msg Message) Task {
	switch m := msg.(type) {
	case nil, NoOp:
		return None()

	case ActionMessage:
		var tasks []Task
		for _, g := range s.plugins.ProcessAction(s.state, m.Action) {
			tasks = append(tasks, s.apply(g))
		}
		return Batch(tasks...)

	case GenericMessage:
		return s.apply(m.Generic)

	case OpenedFile:
		return s.openedFile(m)

	case SavedFile:
		return s.savedFile(m)

	case TextEditorAction:
		s.ApplyTextEdit(m.Document, m.Edit)
		return None()

	case AddTheme:
		if m.Theme == nil {
			return None()
		}
		s.state.Themes.Insert(m.Theme, m.Metadata)
		if m.Theme.ID == s.state.Themes.CurrentID() {
			s.broadcast(event.ThemeChanged, m.Theme.ID)
		}
		return None()

	case LoadTheme:
		if s.state.Themes.Set(m.ID) {
			s.broadcast(event.ThemeChanged, m.ID)
		}
		return None()

	case LoadPlugin:
		return s.loadPlugin(m)

	case PluginMessage:
		reqs, ok := s.plugins.HandleMessage(s.state, m.ID, m.Message)
		if !ok {
			return None()
		}
		return s.pluginRequests(m.ID, reqs)

	case KeyPress:
		return s.keyPress(m)

	case OpenDirectory:
		return s.openDirectory(m.Path)
	case DirectoryResolved:
		return s.directoryResolved(m)

	case DirectoryContent:
		if m.Err != nil {
			logging.Warn("Session: directory listing failed", "path", m.Path, "err", m.Err)
			return None()
		}
		s.state.Directory = m.Entries
		return None()

	case SendNotification:
		return s.notify(m.Text)

	case RemoveNotification:
		s.state.Notifications.Remove(m.ID)
		return None()

	case DocumentAdded:
		logging.Debug("Session: document added", "id", m.ID)
		return None()

	case Quit:
		s.quitting = true
		return None()
	}

	logging.Warn("Session: unhandled message", "type", msg)
	return None()
}

// ApplyTextEdit applies edit to document id. Mutating edits mark the
// document changed. Unknown ids are ignored.
func (s *Session) ApplyTextEdit(id document.ID, edit document.Edit) {
	h, ok := s.state.Documents.Get(id)
	if !ok {
		logging.Debug("Session: edit for unknown document", "id", id)
		return
	}
	wasChanged := h.Changed
	h.Perform(edit)
	if h.Changed && !wasChanged {
		s.broadcast(event.DocumentChanged, id)
	}
}

func (s *Session) notify(text string) Task {
	n := s.state.Notifications.Add(text)
	s.broadcast(event.NotificationAdded, n.ID)
	if s.ttl <= 0 {
		return None()
	}
	ttl, id := s.ttl, n.ID
	// The runner only arms a timer so no worker sits out the TTL.
	return Stream(func(ctx context.Context, emit func(Message)) {
		time.AfterFunc(ttl, func() {
			if ctx.Err() == nil {
				emit(RemoveNotification{ID: id})
			}
		})
	})
}

func (s *Session) loadPlugin(m LoadPlugin) Task {
	if m.Load {
		reqs, ok := s.plugins.Load(m.ID)
		if !ok {
			return None()
		}
		s.broadcast(event.PluginLoaded, m.ID)
		return s.pluginRequests(m.ID, reqs)
	}
	reqs, ok := s.plugins.Unload(m.ID)
	if !ok {
		return None()
	}
	s.hotkeys.RemovePlugin(m.ID)
	s.broadcast(event.PluginUnloaded, m.ID)
	return s.pluginRequests(m.ID, reqs)
}

func (s *Session) pluginRequests(id string, reqs []plugin.Request) Task {
	var tasks []Task
	for _, req := range reqs {
		switch r := req.(type) {
		case plugin.RegisterHotkey:
			msg := PluginMessage{ID: id, Message: r.Message}
			s.hotkeys.BindPlugin(id, r.Key, func(*state.State) Message { return msg })
			logging.Info("Session: plugin hotkey", "plugin", id, "key", r.Key)
		case plugin.SendNotification:
			tasks = append(tasks, s.notify(r.Text))
		case plugin.Emit:
			if r.Action != nil {
				tasks = append(tasks, s.Update(GenericMessage{Generic: r.Action}))
			}
		}
	}
	return Batch(tasks...)
}
