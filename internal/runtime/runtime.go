// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/runtime.go
// Summary: Executor driving a session: a serial reducer loop fed by a worker
// pool running tasks.
// Usage: cmd/strelka builds a Runtime around the session and calls Run with
// the key subscription as input.

package runtime

import (
	"context"
	"sync"

	"github.com/gammazero/workerpool"

	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/session"
)

const inboxSize = 64

// Model is the reducer the runtime drives.
type Model interface {
	Update(msg session.Message) session.Task
	View() session.View
	Quitting() bool
}

// FrameFunc receives the read model after every update.
type FrameFunc func(view session.View)

// Runtime serializes messages into Model.Update and runs tasks on a pool.
type Runtime struct {
	model   Model
	workers int
	onFrame FrameFunc

	inbox chan session.Message
	done  chan struct{}
	once  sync.Once
}

// New creates a runtime. workers bounds concurrent tasks; values below one
// use a single worker.
func New(model Model, workers int, onFrame FrameFunc) *Runtime {
	if workers < 1 {
		workers = 1
	}
	if onFrame == nil {
		onFrame = func(session.View) {}
	}
	return &Runtime{
		model:   model,
		workers: workers,
		onFrame: onFrame,
		inbox:   make(chan session.Message, inboxSize),
		done:    make(chan struct{}),
	}
}

// Dispatch queues msg for the reducer. It returns false once the runtime has
// stopped. Safe for concurrent use.
func (r *Runtime) Dispatch(msg session.Message) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case r.inbox <- msg:
		return true
	case <-r.done:
		return false
	}
}

// Run executes initial, then reduces messages until ctx is cancelled or the
// model quits. Messages from inputs are forwarded to the reducer. Run returns
// nil when the model quits and ctx.Err() on cancellation.
func (r *Runtime) Run(ctx context.Context, initial session.Task, inputs ...<-chan session.Message) error {
	taskCtx, cancelTasks := context.WithCancel(ctx)
	pool := workerpool.New(r.workers)
	defer func() {
		r.once.Do(func() { close(r.done) })
		cancelTasks()
		pool.StopWait()
		logging.Debug("Runtime: stopped")
	}()

	for _, in := range inputs {
		go r.forward(taskCtx, in)
	}

	r.schedule(taskCtx, pool, initial)
	r.onFrame(r.model.View())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-r.inbox:
			task := r.model.Update(msg)
			r.schedule(taskCtx, pool, task)
			r.onFrame(r.model.View())
			if r.model.Quitting() {
				logging.Info("Runtime: quit requested")
				return nil
			}
		}
	}
}

func (r *Runtime) forward(ctx context.Context, in <-chan session.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			if !r.Dispatch(msg) {
				return
			}
		}
	}
}

func (r *Runtime) schedule(ctx context.Context, pool *workerpool.WorkerPool, task session.Task) {
	for _, runner := range task.Runners() {
		runner := runner
		pool.Submit(func() {
			runner(ctx, func(msg session.Message) { r.Dispatch(msg) })
		})
	}
}
