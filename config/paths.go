// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Workdir layout and startup bootstrap of the system config.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	workdirName      = "strelka"
	configDirName    = ".config"
	systemConfigName = "system.toml"
)

// CreateWorkdir ensures the working directory exists and returns its canonical
// path. An empty path selects ~/strelka.
func CreateWorkdir(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, workdirName)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("create workdir: %w", err)
	}
	return Canonicalize(path)
}

// CreateConfigDir ensures <workdir>/.config exists and returns its canonical path.
func CreateConfigDir(workdir string) (string, error) {
	dir := filepath.Join(workdir, configDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return Canonicalize(dir)
}

// SystemConfigPath returns the system.toml location inside a config directory.
func SystemConfigPath(configDir string) string {
	return filepath.Join(configDir, systemConfigName)
}

// Canonicalize returns the absolute, symlink-free form of path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Bootstrap prepares the workdir and returns the session config: the on-disk
// system.toml (created from defaults when absent) with system.workdir and
// system.config_dir set to the canonical paths of this session.
func Bootstrap(workdir string) (*Config, error) {
	workdirPath, err := CreateWorkdir(workdir)
	if err != nil {
		return nil, err
	}
	configDir, err := CreateConfigDir(workdirPath)
	if err != nil {
		return nil, err
	}

	system, err := LoadOrCreateDefault(SystemConfigPath(configDir), DefaultSystem())
	if err != nil {
		return nil, err
	}

	cfg := New().Merge(system)
	// The session paths always win over anything stored on disk.
	cfg.Insert(SystemNamespace, "workdir", String(workdirPath))
	cfg.Insert(SystemNamespace, "config_dir", String(configDir))
	return cfg, nil
}
