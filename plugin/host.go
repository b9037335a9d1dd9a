// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: plugin/host.go
// Summary: Registry of plugins and their lifecycle.
// Usage: The session registers plugins at startup, toggles them with
// LoadPlugin messages and offers every Action to ProcessAction.

package plugin

import (
	"fmt"
	"sync"

	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/state"
)

// Lifecycle is the state of a registered plugin.
type Lifecycle int

const (
	Registered Lifecycle = iota
	Loaded
)

func (l Lifecycle) String() string {
	if l == Loaded {
		return "loaded"
	}
	return "registered"
}

// Record is a registered plugin with its metadata and state.
type Record struct {
	Info      Info
	Plugin    Plugin
	Lifecycle Lifecycle
}

// Host manages the collection of plugins.
type Host struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewHost creates a new empty host.
func NewHost() *Host {
	return &Host{records: make(map[string]*Record)}
}

// Register adds p in the Registered state. A second plugin with the same id
// is rejected with ErrDuplicate.
func (h *Host) Register(p Plugin) error {
	info := p.Info()
	if err := info.Validate(); err != nil {
		return fmt.Errorf("register plugin: %w", err)
	}

	h.mu.Lock()
	if _, exists := h.records[info.ID]; exists {
		h.mu.Unlock()
		logging.Warn("Plugins: rejected duplicate registration", "id", info.ID)
		return fmt.Errorf("register %s: %w", info.ID, ErrDuplicate)
	}
	h.records[info.ID] = &Record{Info: info, Plugin: p}
	h.order = append(h.order, info.ID)
	h.mu.Unlock()

	p.OnRegister()
	logging.Info("Plugins: registered", "id", info.ID, "name", info.Name, "version", info.Version)
	return nil
}

// Load moves id to Loaded and returns the requests of its OnLoad. Unknown or
// already loaded plugins are left alone and report false.
func (h *Host) Load(id string) ([]Request, bool) {
	p, ok := h.transition(id, Registered, Loaded)
	if !ok {
		return nil, false
	}
	logging.Info("Plugins: loaded", "id", id)
	return p.OnLoad(), true
}

// Unload moves id back to Registered and returns the requests of its
// OnUnload.
func (h *Host) Unload(id string) ([]Request, bool) {
	p, ok := h.transition(id, Loaded, Registered)
	if !ok {
		return nil, false
	}
	logging.Info("Plugins: unloaded", "id", id)
	return p.OnUnload(), true
}

func (h *Host) transition(id string, from, to Lifecycle) (Plugin, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec, ok := h.records[id]
	if !ok {
		logging.Debug("Plugins: unknown plugin", "id", id)
		return nil, false
	}
	if rec.Lifecycle != from {
		return nil, false
	}
	rec.Lifecycle = to
	return rec.Plugin, true
}

// IDs returns plugin ids in registration order.
func (h *Host) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.order...)
}

// Get returns a copy of the record for id.
func (h *Host) Get(id string) (Record, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rec, ok := h.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Records returns copies of all records in registration order.
func (h *Host) Records() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Record, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, *h.records[id])
	}
	return out
}

// Count returns the number of registered plugins.
func (h *Host) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.order)
}

func (h *Host) loaded() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []Record
	for _, id := range h.order {
		if rec := h.records[id]; rec.Lifecycle == Loaded {
			out = append(out, *rec)
		}
	}
	return out
}

// ProcessAction offers a to loaded plugins in registration order. The first
// plugin returning a non-nil list decides the result. Without one, a passes
// through unchanged.
func (h *Host) ProcessAction(st *state.State, a action.Action) []action.Generic {
	for _, rec := range h.loaded() {
		if out := rec.Plugin.ProcessAction(st, a); out != nil {
			logging.Debug("Plugins: rewrote action", "id", rec.Info.ID, "action", a, "into", len(out))
			return out
		}
	}
	if a.Generic == nil {
		return []action.Generic{}
	}
	return []action.Generic{a.Generic}
}

// HandleMessage routes a hotkey message to plugin id. Only loaded plugins
// implementing MessageHandler receive it.
func (h *Host) HandleMessage(st *state.State, id, message string) ([]Request, bool) {
	rec, ok := h.Get(id)
	if !ok || rec.Lifecycle != Loaded {
		return nil, false
	}
	handler, ok := rec.Plugin.(MessageHandler)
	if !ok {
		return nil, false
	}
	return handler.HandleMessage(st, message), true
}
