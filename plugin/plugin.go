// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: plugin/plugin.go
// Summary: Plugin capability set, metadata and the requests a plugin can make.

package plugin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/hotkey"
	"github.com/framegrace/strelka/state"
)

// ErrDuplicate is returned when registering an id that is already taken.
var ErrDuplicate = errors.New("plugin already registered")

// Info describes a plugin.
type Info struct {
	// ID is the unique identifier, e.g. "core.example".
	ID          string
	Name        string
	Author      string
	Version     string
	Description string
}

// NewInfo starts an Info for id. The name defaults to the id.
func NewInfo(id string) Info {
	return Info{ID: id, Name: id}
}

func (i Info) WithName(name string) Info               { i.Name = name; return i }
func (i Info) WithAuthor(author string) Info           { i.Author = author; return i }
func (i Info) WithVersion(version string) Info         { i.Version = version; return i }
func (i Info) WithDescription(description string) Info { i.Description = description; return i }

// Validate checks that the metadata is usable.
func (i Info) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.ContainsAny(i.ID, " \t\n") {
		return fmt.Errorf("id %q must not contain whitespace", i.ID)
	}
	return nil
}

// Plugin is an in-process extension.
type Plugin interface {
	Info() Info
	// OnRegister is called once when the host accepts the plugin.
	OnRegister()
	// OnLoad is called on every Registered to Loaded transition.
	OnLoad() []Request
	// OnUnload is called on every Loaded to Registered transition.
	OnUnload() []Request
	// ProcessAction may rewrite a into an ordered list of generic actions.
	// Returning nil passes the action through; an empty non-nil slice
	// swallows it.
	ProcessAction(st *state.State, a action.Action) []action.Generic
}

// MessageHandler is implemented by plugins that bind hotkeys.
type MessageHandler interface {
	HandleMessage(st *state.State, message string) []Request
}

// Base supplies no-op implementations of the optional callbacks.
type Base struct{}

func (Base) OnRegister()         {}
func (Base) OnLoad() []Request   { return nil }
func (Base) OnUnload() []Request { return nil }
func (Base) ProcessAction(*state.State, action.Action) []action.Generic {
	return nil
}

// Request is something a plugin asks the session to do.
type Request interface {
	request()
}

// RegisterHotkey binds Key in the plugin tier. Pressing it delivers Message
// to the plugin's HandleMessage.
type RegisterHotkey struct {
	Key     hotkey.HotKey
	Message string
}

// SendNotification shows Text to the user.
type SendNotification struct {
	Text string
}

// Emit applies Action as if the user had issued it, bypassing plugins.
type Emit struct {
	Action action.Generic
}

func (RegisterHotkey) request()   {}
func (SendNotification) request() {}
func (Emit) request()             {}
