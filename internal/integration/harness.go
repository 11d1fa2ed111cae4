// Package integration runs catspeak end to end in isolated environments.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catspeak-dev/catspeak/internal/cli"
	"github.com/catspeak-dev/catspeak/internal/config"
	"github.com/fatih/color"
)

// TestEnv provides an isolated test environment with overridden paths.
type TestEnv struct {
	t         *testing.T
	RootDir   string        // t.TempDir() root
	HomeDir   string        // Simulated $HOME
	ConfigDir string        // ~/.config/catspeak
	Paths     *config.Paths // Configured paths pointing to temp dirs
}

// NewTestEnv creates an isolated test environment. HOME points into the
// temp dir and CATSPEAK_* variables from the outer environment are cleared,
// so tests using it must not run in parallel.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	rootDir := t.TempDir()
	homeDir := filepath.Join(rootDir, "home")
	configDir := filepath.Join(homeDir, ".config", "catspeak")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", configDir, err)
	}

	t.Setenv("HOME", homeDir)
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, config.EnvPrefix+"_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	color.NoColor = true

	return &TestEnv{
		t:         t,
		RootDir:   rootDir,
		HomeDir:   homeDir,
		ConfigDir: configDir,
		Paths:     config.NewPathsWithOverrides(configDir),
	}
}

// SetupConfig writes config.yaml at the default location.
func (e *TestEnv) SetupConfig(cfg *config.Config) error {
	return config.SaveTo(cfg, e.Paths.ConfigFile)
}

// SetupRawConfig writes config.yaml verbatim.
func (e *TestEnv) SetupRawConfig(content string) error {
	return os.WriteFile(e.Paths.ConfigFile, []byte(content), 0644)
}

// Result is the outcome of one CLI invocation.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Output returns stdout without its trailing newline.
func (r Result) Output() string {
	return strings.TrimRight(r.Stdout, "\n")
}

// Run executes catspeak in-process with the given stdin and arguments.
func (e *TestEnv) Run(stdin string, args ...string) Result {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
