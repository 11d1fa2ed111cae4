// Package cli implements the catspeak command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/catspeak-dev/catspeak/internal/config"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	info = color.New(color.FgCyan).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// rootState is filled in by the root command before any subcommand runs.
type rootState struct {
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
}

// configPath returns the explicit --config path or the default location.
func (s *rootState) configPath() string {
	if s.configFile != "" {
		return s.configFile
	}
	return config.NewPaths().ConfigFile
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	st := &rootState{}
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "catspeak",
		Short: "Translate text and bytes to cat sounds and back",
		Long: `Catspeak writes each letter or byte as a fixed-width numeral whose digits
are cat sounds like "meow" and "mrrp".

The default is base 4 text encoding, matching the first catspeak
translator. Any base from 2 up to the alphabet size (16 by default) works,
and --bytes encodes arbitrary data instead of letters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: st.configFile,
			})
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			st.logger.Debug("config loaded",
				"base", cfg.Base,
				"mode", cfg.Mode,
				"width", cfg.Width,
				"custom_alphabet", len(cfg.Alphabet) > 0,
			)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.configFile, "config", "", "Config file (default ~/.config/catspeak/config.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags(), defaults)

	// Add subcommands
	rootCmd.AddCommand(NewEncodeCmd(st))
	rootCmd.AddCommand(NewDecodeCmd(st))
	rootCmd.AddCommand(NewBenchmarkCmd(st))
	rootCmd.AddCommand(NewReplCmd(st))
	rootCmd.AddCommand(NewAlphabetCmd(st))
	rootCmd.AddCommand(NewServeCmd(st))
	rootCmd.AddCommand(NewConfigCmd(st))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catspeak %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printErrorWithHint(os.Stderr, err)
		return err
	}
	return nil
}

// newLogger builds the text logger used for diagnostics on stderr.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// readInput joins args with spaces, or reads all of in when there are none.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// printErrorWithHint prints an error and its hint, if any.
func printErrorWithHint(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorIcon, err.Error())
	if hint := errors.HintOf(err); hint != "" {
		fmt.Fprintf(w, "  %s\n", dim(hint))
	}
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}

// printInfo prints an info line.
func printInfo(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s: %s\n", dim(label), value)
}
