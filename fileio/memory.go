// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fileio/memory.go
// Summary: In-memory System for tests and headless sessions.

package fileio

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"
)

// Memory is a System over an in-memory map of slash-separated paths.
type Memory struct {
	mu    sync.Mutex
	files map[string]string
	// Picked is returned by Pick. Empty means the user cancelled.
	Picked string
	// FailSave makes every Save return this error when set.
	FailSave error
}

// NewMemory returns a Memory holding files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string]string, len(files))}
	for p, text := range files {
		m.files[path.Clean(p)] = text
	}
	return m
}

func (m *Memory) Open(ctx context.Context, p string) (Opened, error) {
	if err := ctx.Err(); err != nil {
		return Opened{}, err
	}
	p = path.Clean(p)
	m.mu.Lock()
	text, ok := m.files[p]
	m.mu.Unlock()
	if !ok {
		return Opened{}, fmt.Errorf("read %s: %w", p, os.ErrNotExist)
	}
	opened, err := decode(p, []byte(text))
	if err != nil {
		return Opened{}, fmt.Errorf("open %s: %w", p, err)
	}
	return opened, nil
}

func (m *Memory) Save(ctx context.Context, p, text string) error {
	if p == "" {
		return ErrNoPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.files[path.Clean(p)] = text
	return nil
}

func (m *Memory) Pick(ctx context.Context, dir string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Picked == "" {
		return "", ErrCancelled
	}
	return m.Picked, nil
}

// ReadDir lists the direct children of dir. Directories are implied by the
// paths of the stored files.
func (m *Memory) ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir = path.Clean(dir)
	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}
	m.mu.Lock()
	seen := make(map[string]bool)
	for p := range m.files {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		name, _, nested := strings.Cut(rest, "/")
		if nested {
			seen[name] = true
		} else if _, dup := seen[name]; !dup {
			seen[name] = false
		}
	}
	m.mu.Unlock()
	if len(seen) == 0 {
		return nil, fmt.Errorf("read directory %s: %w", dir, os.ErrNotExist)
	}
	entries := make([]Entry, 0, len(seen))
	for name, isDir := range seen {
		entries = append(entries, Entry{Name: name, Path: path.Join(dir, name), Dir: isDir})
	}
	sortEntries(entries)
	return entries, nil
}

// ResolveDir cleans dir and checks that some stored file lives under it.
func (m *Memory) ResolveDir(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir = path.Clean(dir)
	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, isFile := m.files[dir]; isFile {
		return "", fmt.Errorf("open directory %s: %w", dir, ErrNotDir)
	}
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("open directory %s: %w", dir, os.ErrNotExist)
}

// Contents returns the stored text at p.
func (m *Memory) Contents(p string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.files[path.Clean(p)]
	return text, ok
}
