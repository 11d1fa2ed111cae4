package cli

import (
	"github.com/catspeak-dev/catspeak/internal/bench"
	"github.com/catspeak-dev/catspeak/internal/config"
	"github.com/spf13/cobra"
)

// NewBenchmarkCmd creates the benchmark command.
func NewBenchmarkCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchmark [text...]",
		Short: "Time encoding and decoding",
		Long: `Encodes the input the given number of times, then decodes its encoding
the same number of times, and reports total and per-operation durations.`,
		Example: `  catspeak benchmark i love cats
  catspeak benchmark --base 16 --iterations 100000 i love cats
  catspeak benchmark --bytes --format json hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runBenchmark(cmd, st, input)
		},
	}

	cmd.Flags().IntP("iterations", "i", config.DefaultIterations, "How many times to run each operation")
	cmd.Flags().String("format", config.DefaultBenchFormat, "Output format: table|json")

	return cmd
}

func runBenchmark(cmd *cobra.Command, st *rootState, input string) error {
	c, err := st.cfg.NewCodec()
	if err != nil {
		return err
	}

	st.logger.Debug("benchmark starting", "base", c.Base(), "mode", st.cfg.Mode, "iterations", st.cfg.Benchmark.Iterations)

	res, err := bench.Run(cmd.Context(), c, st.cfg.CodecMode(), input, st.cfg.Benchmark.Iterations)
	if err != nil {
		return err
	}

	if st.cfg.Benchmark.Format == "json" {
		return bench.FormatJSON(res, cmd.OutOrStdout())
	}
	bench.FormatTable(res, cmd.OutOrStdout())
	return nil
}
