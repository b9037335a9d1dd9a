// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration and theme files.

package defaults

import (
	"embed"
	"io/fs"
)

//go:embed system.toml themes/*.toml
var files embed.FS

// SystemConfig returns the embedded system.toml.
func SystemConfig() ([]byte, error) {
	return files.ReadFile("system.toml")
}

// Themes returns the embedded theme directory.
func Themes() fs.FS {
	sub, err := fs.Sub(files, "themes")
	if err != nil {
		panic(err)
	}
	return sub
}
