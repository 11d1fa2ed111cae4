package cli

import (
	"github.com/catspeak-dev/catspeak/internal/repl"
	"github.com/spf13/cobra"
)

// NewReplCmd creates the repl command.
func NewReplCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate interactively",
		Long: `Starts an interactive loop. Pick 1 to turn cat sounds into text or 2 to
turn text into cat sounds, then type a line. Any other choice exits.

Without flags this is base 4 text encoding, the same as the first catspeak
translator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.cfg.NewCodec()
			if err != nil {
				return err
			}
			s := repl.New(c, st.cfg.CodecMode(), cmd.InOrStdin(), cmd.OutOrStdout(), st.logger)
			return s.Run(cmd.Context())
		},
	}
}
