// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hotkey/registry.go
// Summary: Maps chords to bindings evaluated against the session state.
// Usage: User bindings win over plugin bindings; plugin bindings are consulted
// in plugin registration order.

package hotkey

import (
	"sort"

	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/state"
)

// Binding produces a message from the state at dispatch time.
type Binding[M any] func(st *state.State) M

type pluginTier[M any] struct {
	id       string
	bindings map[HotKey]Binding[M]
}

// Registry holds user and plugin bindings.
type Registry[M any] struct {
	user    map[HotKey]Binding[M]
	plugins []*pluginTier[M]
}

// NewRegistry creates an empty registry.
func NewRegistry[M any]() *Registry[M] {
	return &Registry[M]{user: make(map[HotKey]Binding[M])}
}

// Bind sets a user binding, replacing any previous one for hk.
func (r *Registry[M]) Bind(hk HotKey, b Binding[M]) {
	r.user[hk] = b
}

// Unbind removes a user binding.
func (r *Registry[M]) Unbind(hk HotKey) {
	delete(r.user, hk)
}

// BindPlugin sets a binding owned by plugin id.
func (r *Registry[M]) BindPlugin(id string, hk HotKey, b Binding[M]) {
	tier := r.tier(id)
	if tier == nil {
		tier = &pluginTier[M]{id: id, bindings: make(map[HotKey]Binding[M])}
		r.plugins = append(r.plugins, tier)
	}
	if _, shadowed := r.user[hk]; shadowed {
		logging.Debug("Hotkeys: plugin binding shadowed by user binding", "plugin", id, "key", hk)
	}
	tier.bindings[hk] = b
}

// RemovePlugin drops every binding owned by plugin id.
func (r *Registry[M]) RemovePlugin(id string) {
	for i, tier := range r.plugins {
		if tier.id == id {
			r.plugins = append(r.plugins[:i], r.plugins[i+1:]...)
			return
		}
	}
}

func (r *Registry[M]) tier(id string) *pluginTier[M] {
	for _, tier := range r.plugins {
		if tier.id == id {
			return tier
		}
	}
	return nil
}

// Lookup finds the binding for hk. User bindings are checked first.
func (r *Registry[M]) Lookup(hk HotKey) (Binding[M], bool) {
	if b, ok := r.user[hk]; ok {
		return b, true
	}
	for _, tier := range r.plugins {
		if b, ok := tier.bindings[hk]; ok {
			return b, true
		}
	}
	return nil, false
}

// Dispatch evaluates the binding for hk against st.
func (r *Registry[M]) Dispatch(st *state.State, hk HotKey) (M, bool) {
	b, ok := r.Lookup(hk)
	if !ok {
		var zero M
		return zero, false
	}
	return b(st), true
}

// Keys returns every bound chord, sorted by String form.
func (r *Registry[M]) Keys() []HotKey {
	seen := make(map[HotKey]struct{}, len(r.user))
	for hk := range r.user {
		seen[hk] = struct{}{}
	}
	for _, tier := range r.plugins {
		for hk := range tier.bindings {
			seen[hk] = struct{}{}
		}
	}
	keys := make([]HotKey, 0, len(seen))
	for hk := range seen {
		keys = append(keys, hk)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
