// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from the embedded TOML file.
// The embedded files in defaults/ are the single source of truth.

package config

import (
	"sync"

	"github.com/framegrace/strelka/defaults"
)

var (
	embeddedSystemOnce sync.Once
	embeddedSystem     *Config
	embeddedSystemErr  error
)

// embeddedSystemDefaults returns the parsed system defaults from embedded TOML.
// The result is cached after the first call; callers must clone before mutating.
func embeddedSystemDefaults() (*Config, error) {
	embeddedSystemOnce.Do(func() {
		data, err := defaults.SystemConfig()
		if err != nil {
			embeddedSystemErr = err
			return
		}
		embeddedSystem, embeddedSystemErr = Parse(data)
	})
	return embeddedSystem, embeddedSystemErr
}
