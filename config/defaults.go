// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

// DefaultTheme is the theme id used when system.theme is unset.
const DefaultTheme = "core.light"

// SystemNamespace holds runtime facts and user preferences of the editor.
const SystemNamespace = "system"

// DefaultSystem returns the config written when system.toml does not exist yet.
func DefaultSystem() *Config {
	cfg, err := embeddedSystemDefaults()
	if err != nil || cfg == nil {
		cfg = New()
	}
	cfg = cfg.Clone()
	applySystemDefaults(cfg)
	return cfg
}

func applySystemDefaults(cfg *Config) {
	cfg.RegisterDefaults(SystemNamespace, Section{
		"theme": String(DefaultTheme),
	})
}
