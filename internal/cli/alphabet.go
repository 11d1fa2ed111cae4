package cli

import (
	"fmt"

	"github.com/catspeak-dev/catspeak/internal/codec"
	"github.com/spf13/cobra"
)

// NewAlphabetCmd creates the alphabet command.
func NewAlphabetCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "List the tokens and widths for a base",
		Example: `  catspeak alphabet
  catspeak alphabet --base 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlphabet(cmd, st)
		},
	}
}

func runAlphabet(cmd *cobra.Command, st *rootState) error {
	alpha, err := st.cfg.BuildAlphabet()
	if err != nil {
		return err
	}
	c, err := codec.New(alpha, st.cfg.Base)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Base %s\n", info(c.Base()))
	printInfo(out, "Max base", fmt.Sprintf("%d", alpha.MaxBase()))
	printInfo(out, "Text width", fmt.Sprintf("%d tokens per letter", c.TextWidth()))
	printInfo(out, "Byte width", fmt.Sprintf("%d tokens per byte", c.ByteWidth()))
	fmt.Fprintln(out)

	for i, tok := range c.Alphabet().Tokens() {
		fmt.Fprintf(out, "  %2d  %s\n", i, tok)
	}

	if len(st.cfg.Alphabet) > 0 {
		fmt.Fprintln(out)
		printWarning(out, "Custom alphabet from config; streams only decode with the same list")
	}
	return nil
}
