package main

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a bit array between formats",
		Example: `  bitconv convert --from hex --to bits A5
  bitconv convert --from bits --to ints 1
  bitconv convert --from bytes --to hex -- -1,15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parseBits(from, args[0])
			if err != nil {
				return err
			}
			out, err := renderBits(to, b)
			if err != nil {
				return err
			}
			printResult(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", formatBits, "input format (bits, hex, bytes)")
	cmd.Flags().StringVar(&to, "to", formatHex, "output format (bits, hex, bytes, ints)")
	return cmd
}
