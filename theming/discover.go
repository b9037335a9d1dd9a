// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theming/discover.go
// Summary: Enumerates theme files on disk and in the embedded defaults.

package theming

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/framegrace/strelka/defaults"
	"github.com/framegrace/strelka/internal/logging"
)

const themeExt = ".toml"

// Loaded is one discovered theme.
type Loaded struct {
	Theme    *Theme
	Metadata Metadata
}

// BuiltIns returns the themes embedded in the binary.
func BuiltIns() []Loaded {
	loaded, err := scan(context.Background(), defaults.Themes(), func(Loaded) {})
	if err != nil {
		logging.Error("Themes: embedded themes unreadable", "err", err)
	}
	return loaded
}

// Discover reads every *.toml theme in dir and calls emit for each one as it is
// parsed. Files that fail to parse are skipped. A missing directory yields no
// themes and no error.
func Discover(ctx context.Context, dir string, emit func(Loaded)) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logging.Info("Themes: theme directory does not exist", "dir", dir)
		return nil
	}
	_, err := scan(ctx, os.DirFS(dir), emit)
	return err
}

func scan(ctx context.Context, fsys fs.FS, emit func(Loaded)) ([]Loaded, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read theme directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []Loaded
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, themeExt) {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			logging.Warn("Themes: failed to read theme", "file", name, "err", err)
			continue
		}
		theme, meta, err := Parse(data, ID(strings.TrimSuffix(path.Base(name), themeExt)))
		if err != nil {
			logging.Warn("Themes: failed to parse theme", "file", name, "err", err)
			continue
		}
		l := Loaded{Theme: theme, Metadata: meta}
		out = append(out, l)
		emit(l)
	}
	return out, nil
}
