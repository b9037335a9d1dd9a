// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: notification/notification.go
// Summary: Transient user-visible notices such as save failures or plugin
// messages.

package notification

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

const idPrefix = "ntf"

// ID identifies a notification, e.g. "ntf_01HZY...".
type ID string

// NewID returns a fresh, time-sortable notification id.
func NewID() ID {
	return ID(fmt.Sprintf("%s_%s", idPrefix, ulid.Make().String()))
}

// Notification is one notice.
type Notification struct {
	ID      ID
	Text    string
	Created time.Time
}

// List holds notifications in arrival order.
type List struct {
	items []Notification
	now   func() time.Time
}

// NewList returns an empty list.
func NewList() *List {
	return &List{now: time.Now}
}

// Add appends a notification with text and returns it.
func (l *List) Add(text string) Notification {
	n := Notification{ID: NewID(), Text: text, Created: l.now()}
	l.items = append(l.items, n)
	return n
}

// Remove drops the notification with id. Unknown ids are ignored.
func (l *List) Remove(id ID) bool {
	for i, n := range l.items {
		if n.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the notifications, oldest first.
func (l *List) All() []Notification {
	return append([]Notification(nil), l.items...)
}

// Len returns the number of notifications.
func (l *List) Len() int { return len(l.items) }
