package config

import (
	"os"
	"path/filepath"
)

// Paths provides all catspeak-related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/catspeak
	ConfigFile string // ~/.config/catspeak/config.yaml
}

// NewPaths creates Paths under ~/.config, the same location on every
// platform.
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	return NewPathsWithOverrides(filepath.Join(home, ".config", "catspeak"))
}

// NewPathsWithOverrides allows overriding the config directory for testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}
