// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config

import (
	"os"
	"path/filepath"
)

const appName = "propsheet"

// Dir returns the XDG config directory for propsheet.
// Checks XDG_CONFIG_HOME first, falls back to ~/.config.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DefaultPath is the config file used when none is given explicitly.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ResolvePath returns explicit when set, otherwise DefaultPath if that file
// exists, otherwise "" so Load skips the file layer.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultPath()); err == nil {
		return DefaultPath()
	}
	return ""
}
