// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/task.go
// Summary: Deferred work whose results re-enter the reducer as messages.
// Usage: Update returns a Task; an executor runs its runners and feeds every
// emitted message back into Update.

package session

import "context"

// Runner performs work and emits zero or more messages. emit may be called
// from any goroutine.
type Runner func(ctx context.Context, emit func(Message))

// Task is a set of runners that may run concurrently.
type Task struct {
	runners []Runner
}

// None is the empty task.
func None() Task { return Task{} }

// Done emits msg.
func Done(msg Message) Task {
	return Task{runners: []Runner{func(_ context.Context, emit func(Message)) {
		emit(msg)
	}}}
}

// Perform runs fn and emits to(result).
func Perform[T any](fn func(ctx context.Context) T, to func(T) Message) Task {
	return Task{runners: []Runner{func(ctx context.Context, emit func(Message)) {
		emit(to(fn(ctx)))
	}}}
}

// Stream runs fn, which may emit any number of messages.
func Stream(fn Runner) Task {
	return Task{runners: []Runner{fn}}
}

// Batch combines tasks. Their runners have no ordering between them.
func Batch(tasks ...Task) Task {
	var out Task
	for _, t := range tasks {
		out.runners = append(out.runners, t.runners...)
	}
	return out
}

// Then returns a task that runs next once every runner of t has finished.
func (t Task) Then(next Task) Task {
	if t.IsNone() {
		return next
	}
	first := t.runners
	return Stream(func(ctx context.Context, emit func(Message)) {
		for _, r := range first {
			r(ctx, emit)
		}
		if ctx.Err() != nil {
			return
		}
		for _, r := range next.runners {
			r(ctx, emit)
		}
	})
}

// IsNone reports whether t does nothing.
func (t Task) IsNone() bool { return len(t.runners) == 0 }

// Runners returns the independent units of t.
func (t Task) Runners() []Runner {
	return append([]Runner(nil), t.runners...)
}

// Collect runs t inline, one runner after another, and returns the emitted
// messages in order.
func Collect(ctx context.Context, t Task) []Message {
	var out []Message
	for _, r := range t.runners {
		r(ctx, func(m Message) { out = append(out, m) })
	}
	return out
}
