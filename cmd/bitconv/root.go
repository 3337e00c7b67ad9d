package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitarray"
)

// app holds state shared by all subcommands.
type app struct {
	verbose   bool
	logFormat string
	logger    *bitarray.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: bitarray.NoopLogger()}

	root := &cobra.Command{
		Use:   "bitconv",
		Short: "Convert and transform packed bit arrays",
		Long: `bitconv converts bit arrays between bit strings, hexadecimal, signed
bytes and 32-bit integers, and applies rotations, XOR and permutations.

Formats:
  bits   0 and 1 characters, bit 0 first       101101
  hex    four bits per digit                   B4
  bytes  comma-separated signed bytes          -1,15
  ints   one signed int32 per 32-bit chunk     -1,1 (output only)

Values starting with '-' must follow "--":
  bitconv convert --from bytes --to hex -- -1,15`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			switch a.logFormat {
			case "text":
				a.logger = bitarray.NewTextLogger(cmd.ErrOrStderr(), level)
			case "json":
				a.logger = bitarray.NewJSONLogger(cmd.ErrOrStderr(), level)
			default:
				return fmt.Errorf("unknown log format %q (want text or json)", a.logFormat)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log output format: text or json")

	root.AddCommand(
		newConvertCmd(a),
		newXorCmd(a),
		newRotateCmd(a),
		newPermuteCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newOnesCmd(a),
	)
	return root
}
