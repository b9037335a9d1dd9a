// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: event/dispatcher.go
// Summary: Broadcasts session state changes to subscribed listeners.
// Usage: The session publishes events from inside Update; frontends and tests
// subscribe to observe pane, document and theme changes.

package event

import "sync"

// Type defines the type of an event.
type Type int

const (
	// Pane events
	PaneAdded Type = iota
	PaneFocused
	PaneClosed
	PaneReplaced
	// Document events
	DocumentAdded
	DocumentRemoved
	DocumentSaved
	DocumentChanged
	// Global events
	ThemeChanged
	PluginLoaded
	PluginUnloaded
	NotificationAdded
)

var typeNames = [...]string{
	PaneAdded:         "pane-added",
	PaneFocused:       "pane-focused",
	PaneClosed:        "pane-closed",
	PaneReplaced:      "pane-replaced",
	DocumentAdded:     "document-added",
	DocumentRemoved:   "document-removed",
	DocumentSaved:     "document-saved",
	DocumentChanged:   "document-changed",
	ThemeChanged:      "theme-changed",
	PluginLoaded:      "plugin-loaded",
	PluginUnloaded:    "plugin-unloaded",
	NotificationAdded: "notification-added",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event represents a change passed through the system.
// Payload carries the affected id (pane.ID, document.ID, theming.ID, plugin
// id or notification id) or nil.
type Event struct {
	Type    Type
	Payload interface{}
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher manages a list of listeners and broadcasts events to them.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *Dispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener. ListenerFunc values are not comparable and
// cannot be unsubscribed; wrap them in a pointer type if that is needed.
func (d *Dispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners in subscription order.
func (d *Dispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners...)
	d.mu.RUnlock()
	for _, l := range listeners {
		l.OnEvent(event)
	}
}
