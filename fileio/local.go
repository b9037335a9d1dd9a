// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fileio/local.go
// Summary: System backed by the local file system.

package fileio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/framegrace/strelka/internal/logging"
)

// Local reads and writes the local file system.
type Local struct {
	Picker Picker
}

// NewLocal returns a Local that asks picker for files. A nil picker always
// cancels.
func NewLocal(picker Picker) *Local {
	return &Local{Picker: picker}
}

// Open canonicalizes path and reads it as text.
func (l *Local) Open(ctx context.Context, path string) (Opened, error) {
	if err := ctx.Err(); err != nil {
		return Opened{}, err
	}
	abs, err := canonical(path)
	if err != nil {
		return Opened{}, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return Opened{}, fmt.Errorf("read %s: %w", abs, err)
	}
	opened, err := decode(abs, data)
	if err != nil {
		return Opened{}, fmt.Errorf("open %s: %w", abs, err)
	}
	logging.Debug("Files: opened", "path", abs, "language", opened.Language, "bytes", len(data))
	return opened, nil
}

// Save writes text to path, keeping the mode of an existing file.
func (l *Local) Save(ctx context.Context, path, text string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.Debug("Files: saved", "path", path, "bytes", len(text))
	return nil
}

// Pick asks the picker for a file under dir.
func (l *Local) Pick(ctx context.Context, dir string) (string, error) {
	if l.Picker == nil {
		return "", ErrCancelled
	}
	return l.Picker.PickFile(ctx, dir)
}

// ReadDir lists dir with directories first, each group sorted by name.
func (l *Local) ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(dir, de.Name()),
			Dir:  de.IsDir(),
		})
	}
	sortEntries(entries)
	return entries, nil
}

// ResolveDir canonicalizes dir and checks that it is a directory.
func (l *Local) ResolveDir(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	abs, err := canonical(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("open directory %s: %w", abs, ErrNotDir)
	}
	return abs, nil
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return resolved, nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return entries[i].Name < entries[j].Name
	})
}
