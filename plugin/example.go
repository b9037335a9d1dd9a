// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: plugin/example.go
// Summary: Built-in plugin showing hotkey registration and notifications.

package plugin

import (
	"fmt"

	"github.com/framegrace/strelka/hotkey"
	"github.com/framegrace/strelka/state"
)

// ExampleID is the id of the built-in example plugin.
const ExampleID = "core.example"

const exampleGreet = "greet"

// ExampleKey triggers the example plugin.
var ExampleKey = hotkey.New(hotkey.CtrlAlt, 'h')

// Example binds ExampleKey and answers it with a notification describing the
// session.
type Example struct {
	Base
}

// NewExample returns the example plugin.
func NewExample() *Example { return &Example{} }

func (*Example) Info() Info {
	return NewInfo(ExampleID).
		WithName("Example").
		WithAuthor("Strelka contributors").
		WithVersion("0.1.0").
		WithDescription("Shows how plugins bind keys and send notifications.")
}

func (*Example) OnLoad() []Request {
	return []Request{RegisterHotkey{Key: ExampleKey, Message: exampleGreet}}
}

func (*Example) HandleMessage(st *state.State, message string) []Request {
	if message != exampleGreet {
		return nil
	}
	text := fmt.Sprintf("Hello from %s: %d panes, %d documents",
		ExampleID, st.Panes.Count(), st.Documents.Count())
	return []Request{SendNotification{Text: text}}
}
