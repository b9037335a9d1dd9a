// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func TestBroadcastOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	var order []string
	d.Subscribe(a)
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "func") }))
	d.Subscribe(b)

	d.Broadcast(Event{Type: PaneAdded, Payload: 3})
	assert.Equal(t, []Event{{Type: PaneAdded, Payload: 3}}, a.events)
	assert.Len(t, b.events, 1)
	assert.Equal(t, []string{"func"}, order)

	d.Unsubscribe(a)
	d.Broadcast(Event{Type: ThemeChanged})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 2)
}

func TestSubscribeDuringBroadcast(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	d.Subscribe(ListenerFunc(func(Event) { d.Subscribe(late) }))
	d.Broadcast(Event{Type: PaneClosed})
	assert.Empty(t, late.events)
	d.Broadcast(Event{Type: PaneClosed})
	assert.Len(t, late.events, 1)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "document-saved", DocumentSaved.String())
	assert.Equal(t, "unknown", Type(99).String())
}
