package integration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/catspeak-dev/catspeak/internal/config"
	"gopkg.in/yaml.v3"
)

// Fixture represents a test scenario loaded from YAML.
type Fixture struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Setup       FixtureSetup `yaml:"setup"`
	Steps       []Step       `yaml:"steps"`
}

// FixtureSetup defines the test environment setup.
type FixtureSetup struct {
	Config *ConfigSetup      `yaml:"config"`
	Env    map[string]string `yaml:"env"`
}

// ConfigSetup defines the catspeak config.yaml content.
type ConfigSetup struct {
	Base     int      `yaml:"base"`
	Mode     string   `yaml:"mode"`
	Width    int      `yaml:"width"`
	Alphabet []string `yaml:"alphabet"`
}

// Step is one CLI invocation and what it must produce.
type Step struct {
	Args   []string       `yaml:"args"`
	Stdin  string         `yaml:"stdin"`
	Expect StepAssertions `yaml:"expect"`
}

// StepAssertions defines what to verify after a step.
type StepAssertions struct {
	Output      *string  `yaml:"output"`
	Contains    []string `yaml:"contains"`
	NotContains []string `yaml:"not_contains"`
	ErrorCode   string   `yaml:"error_code"`
}

// LoadFixture loads a fixture from a YAML file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, err
	}

	if err := fixture.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", path, err)
	}

	return &fixture, nil
}

// Validate checks that the fixture has all required fields.
func (f *Fixture) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if len(f.Steps) == 0 {
		return fmt.Errorf("missing required field: steps")
	}
	for i, step := range f.Steps {
		if len(step.Args) == 0 {
			return fmt.Errorf("step %d: missing required field: args", i+1)
		}
	}
	return nil
}

// LoadAllFixtures loads all fixtures from a directory.
func LoadAllFixtures(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var fixtures []*Fixture
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".yaml" && filepath.Ext(name) != ".yml" {
			continue
		}

		fixture, err := LoadFixture(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}

	return fixtures, nil
}

// ToConfig converts fixture config setup to a config.Config.
func (c *ConfigSetup) ToConfig() *config.Config {
	return &config.Config{
		Base:     c.Base,
		Mode:     c.Mode,
		Width:    c.Width,
		Alphabet: c.Alphabet,
	}
}

// ApplySetup applies the fixture setup to a test environment.
func ApplySetup(env *TestEnv, setup FixtureSetup) error {
	for key, value := range setup.Env {
		env.t.Setenv(key, value)
	}

	if setup.Config != nil {
		if err := env.SetupConfig(setup.Config.ToConfig()); err != nil {
			return err
		}
	}

	return nil
}
