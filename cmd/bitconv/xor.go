package main

import (
	"github.com/spf13/cobra"
)

func newXorCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "xor A B",
		Short:   "XOR two bit arrays of equal length",
		Example: `  bitconv xor --format hex F0 3C`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := a.parseBits(format, args[0])
			if err != nil {
				return err
			}
			rhs, err := a.parseBits(format, args[1])
			if err != nil {
				return err
			}
			x, err := lhs.Xor(rhs)
			if err != nil {
				return err
			}
			out, err := renderBits(format, x)
			if err != nil {
				return err
			}
			printResult(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatBits, "input and output format (bits, hex, bytes)")
	return cmd
}
