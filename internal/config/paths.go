// Package config manages detour configuration and filesystem paths.
//
// All detour data lives under a single root directory, ~/.detour by
// default, which holds the saved settings and an optional config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv overrides the data root directory.
const RootEnv = "DETOUR_ROOT"

// Paths contains all the filesystem paths used by detour.
type Paths struct {
	// Root is the base directory for all detour data (default: ~/.detour)
	Root string

	// Settings is the directory holding the saved settings entry
	Settings string

	// Config is the path to the optional config file
	Config string
}

// DefaultPaths returns the default paths for detour.
// The root can be overridden with the DETOUR_ROOT environment variable.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(RootEnv)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".detour")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Settings: root,
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Settings} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
