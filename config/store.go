// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: File-backed load and create-default logic for config documents.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/strelka/internal/logging"
)

// LoadOrCreateDefault reads the config at path. When the file does not exist,
// def is written there (creating parent directories) and a copy of def is
// returned. A file that exists but does not parse is an error and is never
// overwritten.
func LoadOrCreateDefault(path string, def *Config) (*Config, error) {
	if def == nil {
		def = New()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	lock, err := lockConfig(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Warn("Config: failed to release lock", "path", path, "err", err)
		}
	}()

	cfg, exists, err := readConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if exists {
		logging.Info("Config: loaded", "path", path, "entries", cfg.Len())
		return cfg, nil
	}

	if err := writeConfig(path, def); err != nil {
		return nil, fmt.Errorf("write default config %s: %w", path, err)
	}
	logging.Info("Config: wrote default", "path", path)
	return def.Clone(), nil
}

// Save writes the config to path, replacing any existing file.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	lock, err := lockConfig(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()
	return writeConfig(path, cfg)
}

func readConfig(path string) (*Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
