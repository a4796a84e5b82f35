// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "wordladder"

// xdgHome returns the value of env or $HOME joined with fallback.
func xdgHome(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	return xdgHome("XDG_CONFIG_HOME", ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	return xdgHome("XDG_DATA_HOME", ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DictionaryDir holds dictionaries that can be named without a path.
func DictionaryDir() string {
	return filepath.Join(XDGDataHome(), appName, "dictionaries")
}

// ResolveDictionary maps a bare dictionary name that does not exist in the
// working directory to DictionaryDir. Anything else is returned unchanged.
func ResolveDictionary(name string) string {
	if name == "" || name == "-" || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	candidate := filepath.Join(DictionaryDir(), name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return name
}
