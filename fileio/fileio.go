// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fileio/fileio.go
// Summary: File system primitives used by session tasks: open, save, pick and
// directory listing.

package fileio

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

var (
	// ErrBinary is returned when opening a file that is not text.
	ErrBinary = errors.New("binary file")
	// ErrNoPath is returned when saving a document that has no path.
	ErrNoPath = errors.New("document has no path")
	// ErrCancelled is returned when the user dismisses the file picker.
	ErrCancelled = errors.New("cancelled")
	// ErrNotDir is returned when a directory was expected.
	ErrNotDir = errors.New("not a directory")
)

// Opened is the result of reading a text file.
type Opened struct {
	Path     string
	Content  string
	Language string
}

// Entry is one directory entry.
type Entry struct {
	Name string
	Path string
	Dir  bool
}

// System is the set of file operations the session schedules as tasks.
// Implementations must be safe for concurrent use.
type System interface {
	Open(ctx context.Context, path string) (Opened, error)
	Save(ctx context.Context, path, text string) error
	Pick(ctx context.Context, dir string) (string, error)
	ReadDir(ctx context.Context, dir string) ([]Entry, error)
	// ResolveDir returns the canonical form of dir, failing with ErrNotDir
	// when it names something other than a directory.
	ResolveDir(ctx context.Context, dir string) (string, error)
}

// Picker chooses a file to open, standing in for the OS dialog.
type Picker interface {
	PickFile(ctx context.Context, dir string) (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, dir string) (string, error)

func (f PickerFunc) PickFile(ctx context.Context, dir string) (string, error) { return f(ctx, dir) }

// decode validates content and labels its language.
func decode(path string, data []byte) (Opened, error) {
	if enry.IsBinary(data) {
		return Opened{}, ErrBinary
	}
	return Opened{
		Path:     path,
		Content:  string(data),
		Language: language(path, data),
	}, nil
}

func language(path string, data []byte) string {
	name := filepath.Base(path)
	if lang := enry.GetLanguage(name, data); lang != "" {
		return lang
	}
	if l := lexers.Match(name); l != nil {
		return l.Config().Name
	}
	return ""
}
