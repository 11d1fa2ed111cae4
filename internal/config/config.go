// Package config handles catspeak configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/catspeak-dev/catspeak/internal/alphabet"
	"github.com/catspeak-dev/catspeak/internal/codec"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// BenchmarkConfig contains benchmark settings.
type BenchmarkConfig struct {
	Iterations int    `mapstructure:"iterations" yaml:"iterations"`
	Format     string `mapstructure:"format" yaml:"format"` // table or json
}

// ServerConfig contains HTTP front end settings.
type ServerConfig struct {
	ListenAddr    string `mapstructure:"listen_addr" yaml:"listen_addr"`
	MaxInputBytes int    `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`
}

// Config represents the catspeak configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	Base int    `yaml:"base" mapstructure:"base"`
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Width overrides the tokens per unit for the active mode.
	// Zero means the minimum width for the base.
	Width int `yaml:"width,omitempty" mapstructure:"width"`

	// Alphabet replaces the built-in cat sounds. Both ends of a stream
	// must use the same list in the same order.
	Alphabet []string `yaml:"alphabet,omitempty" mapstructure:"alphabet"`

	LogLevel  string          `yaml:"log_level" mapstructure:"log_level"`
	Benchmark BenchmarkConfig `yaml:"benchmark" mapstructure:"benchmark"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
}

// Default values.
const (
	DefaultVersion       = 1
	DefaultBase          = 4
	DefaultMode          = string(codec.ModeText)
	DefaultLogLevel      = "warn"
	DefaultIterations    = 1000
	DefaultBenchFormat   = "table"
	DefaultListenAddr    = "127.0.0.1:8080"
	DefaultMaxInputBytes = 64 << 10

	// EnvPrefix prefixes environment overrides, e.g. CATSPEAK_BASE.
	EnvPrefix = "CATSPEAK"
)

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() Config {
	return Config{
		Version:  DefaultVersion,
		Base:     DefaultBase,
		Mode:     DefaultMode,
		LogLevel: DefaultLogLevel,
		Benchmark: BenchmarkConfig{
			Iterations: DefaultIterations,
			Format:     DefaultBenchFormat,
		},
		Server: ServerConfig{
			ListenAddr:    DefaultListenAddr,
			MaxInputBytes: DefaultMaxInputBytes,
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"base":            "base",
	"width":           "width",
	"log-level":       "log_level",
	"iterations":      "benchmark.iterations",
	"format":          "benchmark.format",
	"listen":          "server.listen_addr",
	"max-input-bytes": "server.max_input_bytes",
}

// RegisterFlags adds the flags shared by every command.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.IntP("base", "b", defaults.Base, "Numeral base, from 2 up to the alphabet size")
	fs.Int("width", defaults.Width, "Tokens per letter or byte (0 = minimum for the base)")
	fs.Bool("bytes", false, "Use byte encoding instead of English text encoding")
	fs.String("log-level", defaults.LogLevel, "Log level: debug|info|warn|error")
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// LoadOptions controls where Load reads settings from.
type LoadOptions struct {
	// Cmd supplies flags; any flag named in flagKeys is bound.
	Cmd flagBinder
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
	// Paths locates the default config file. Nil uses NewPaths.
	Paths *Paths
}

// Load layers defaults, the config file, CATSPEAK_* environment variables
// and flags (lowest to highest precedence), then validates the result.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if opts.Cmd != nil {
		fs := opts.Cmd.Flags()
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to bind flags", "", err)
			}
		}
		if f := fs.Lookup("bytes"); f != nil && f.Changed {
			if f.Value.String() == "true" {
				v.Set("mode", string(codec.ModeBytes))
			} else {
				v.Set("mode", string(codec.ModeText))
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path := opts.ConfigFile
	if path == "" {
		paths := opts.Paths
		if paths == nil {
			paths = NewPaths()
		}
		path = paths.ConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config file", "Check config syntax", err)
		}
	} else if opts.ConfigFile != "" {
		return nil, errors.ConfigNotFound(path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to decode config", "", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFrom reads and validates config from a specific path, without
// environment or flag overrides.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}
	return data, nil
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	alpha, err := c.BuildAlphabet()
	if err != nil {
		return errors.ConfigInvalid(err.Error())
	}

	if c.Base < alphabet.MinBase || c.Base > alpha.MaxBase() {
		return errors.BaseOutOfRange(c.Base, alpha.MaxBase())
	}

	if _, err := codec.ParseMode(c.Mode); err != nil {
		return err
	}

	if c.Width < 0 || c.Width > int(codec.MaxWidth) {
		return errors.ConfigInvalid(fmt.Sprintf("width must be between 0 and %d, got %d", codec.MaxWidth, c.Width))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return errors.ConfigInvalid(err.Error())
	}

	if c.Benchmark.Iterations < 1 {
		return errors.ConfigInvalid("benchmark.iterations must be at least 1")
	}
	if c.Benchmark.Format != "table" && c.Benchmark.Format != "json" {
		return errors.ConfigInvalid("benchmark.format must be 'table' or 'json'")
	}

	if c.Server.MaxInputBytes < 1 {
		return errors.ConfigInvalid("server.max_input_bytes must be at least 1")
	}

	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Base == 0 {
		c.Base = d.Base
	}
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Benchmark.Iterations == 0 {
		c.Benchmark.Iterations = d.Benchmark.Iterations
	}
	if c.Benchmark.Format == "" {
		c.Benchmark.Format = d.Benchmark.Format
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = d.Server.ListenAddr
	}
	if c.Server.MaxInputBytes == 0 {
		c.Server.MaxInputBytes = d.Server.MaxInputBytes
	}
}

// BuildAlphabet returns the configured alphabet, or the built-in one.
func (c *Config) BuildAlphabet() (alphabet.Alphabet, error) {
	if len(c.Alphabet) == 0 {
		return alphabet.Default(), nil
	}
	return alphabet.New(c.Alphabet)
}

// CodecMode returns the configured mode.
func (c *Config) CodecMode() codec.Mode {
	return codec.Mode(c.Mode)
}

// NewCodec builds a codec for the configured base. A width override
// applies to the configured mode only.
func (c *Config) NewCodec() (*codec.Codec, error) {
	alpha, err := c.BuildAlphabet()
	if err != nil {
		return nil, err
	}

	var opts []codec.Option
	if c.Width > 0 {
		if c.CodecMode() == codec.ModeBytes {
			opts = append(opts, codec.WithByteWidth(uint32(c.Width)))
		} else {
			opts = append(opts, codec.WithTextWidth(uint32(c.Width)))
		}
	}
	return codec.New(alpha, c.Base, opts...)
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("version", c.Version)
	v.SetDefault("base", c.Base)
	v.SetDefault("mode", c.Mode)
	v.SetDefault("width", c.Width)
	v.SetDefault("alphabet", []string{})
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("benchmark.iterations", c.Benchmark.Iterations)
	v.SetDefault("benchmark.format", c.Benchmark.Format)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_input_bytes", c.Server.MaxInputBytes)
}
