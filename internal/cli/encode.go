package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewEncodeCmd creates the encode command.
func NewEncodeCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text or data to mrow~",
		Long: `Encodes text or data to cat sounds.

Text mode handles the letters a-z and spaces; uppercase input is lowercased.
Byte mode (--bytes) encodes the raw bytes of the input. With no arguments
the input is read from stdin.`,
		Example: `  catspeak encode i love cats
  catspeak encode --base 16 i love cats
  echo -n 'hi!' | catspeak encode --bytes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runEncode(cmd, st, input)
		},
	}
}

// NewDecodeCmd creates the decode command.
func NewDecodeCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [stream...]",
		Short: "Decode mrow~ to text or data",
		Long: `Decodes cat sounds back to text, or to byte values with --bytes.

The base, width and alphabet must match the ones used to encode. Byte mode
prints the decoded bytes as space-separated decimal values.`,
		Example: `  catspeak decode "meow mreow mrrp"
  catspeak decode --base 16 --bytes "mrow~ mrow~"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runDecode(cmd, st, strings.TrimSpace(input))
		},
	}
}

func runEncode(cmd *cobra.Command, st *rootState, input string) error {
	c, err := st.cfg.NewCodec()
	if err != nil {
		return err
	}

	out, err := c.Encode(st.cfg.CodecMode(), input)
	if err != nil {
		return err
	}
	st.logger.Debug("encoded", "base", c.Base(), "mode", st.cfg.Mode, "input_bytes", len(input))

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runDecode(cmd *cobra.Command, st *rootState, stream string) error {
	c, err := st.cfg.NewCodec()
	if err != nil {
		return err
	}

	out, err := c.Decode(st.cfg.CodecMode(), stream)
	if err != nil {
		return err
	}
	st.logger.Debug("decoded", "base", c.Base(), "mode", st.cfg.Mode, "stream_bytes", len(stream))

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
