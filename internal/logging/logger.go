// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logger.go
// Summary: Process-wide structured logger.
// Usage: The terminal belongs to the frontend, so logging is discarded until
// SetOutput points it at a file.

package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetOutput sends log records at or above level to w.
func SetOutput(w io.Writer, level slog.Level) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}

func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}
