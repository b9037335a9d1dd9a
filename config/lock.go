// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/lock.go
// Summary: Advisory locks guarding config files, kept out of the config
// directory.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// LockDir holds the lock files for every config path.
var LockDir = filepath.Join(os.TempDir(), "strelka-locks")

var lockNames = strings.NewReplacer(string(filepath.Separator), "_", ":", "_")

// lockPath maps a config path to its lock file under LockDir.
func lockPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return filepath.Join(LockDir, lockNames.Replace(abs)+".lock"), nil
}

// lockConfig blocks until the lock for path is held. Lock files are left in
// place after release; removing them would let two holders lock different
// inodes.
func lockConfig(path string) (*flock.Flock, error) {
	lp, err := lockPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(LockDir, 0700); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(lp)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock config %s: %w", path, err)
	}
	return lock, nil
}
