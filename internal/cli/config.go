package cli

import (
	"fmt"
	"os"

	"github.com/catspeak-dev/catspeak/internal/config"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the catspeak config file",
	}

	cmd.AddCommand(newConfigInitCmd(st))
	cmd.AddCommand(newConfigShowCmd(st))

	return cmd
}

func newConfigInitCmd(st *rootState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		// An existing broken config must not block rewriting it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, st.configPath(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !force {
		printWarning(out, "Config already exists at %s", path)
		fmt.Fprintf(out, "  %s\n", dim("Use --force to overwrite it"))
		return nil
	}

	cfg := config.DefaultConfig()
	if err := config.SaveTo(&cfg, path); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to write config", "", err)
	}

	printSuccess(out, "Wrote %s", path)
	return nil
}

func newConfigShowCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as YAML",
		Long: `Prints the config after applying defaults, the config file, CATSPEAK_*
environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := st.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
