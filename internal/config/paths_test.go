package config

import (
	"path/filepath"
	"testing"
)

func TestNewPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths := NewPaths()

	wantDir := filepath.Join(home, ".config", "catspeak")
	if paths.ConfigDir != wantDir {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, wantDir)
	}
	if paths.ConfigFile != filepath.Join(wantDir, "config.yaml") {
		t.Errorf("ConfigFile = %q, want it inside %q", paths.ConfigFile, wantDir)
	}
}

func TestNewPathsWithOverrides(t *testing.T) {
	tempDir := t.TempDir()
	paths := NewPathsWithOverrides(tempDir)

	want := filepath.Join(tempDir, "config.yaml")
	if paths.ConfigFile != want {
		t.Errorf("ConfigFile with override = %q, want %q", paths.ConfigFile, want)
	}
}
