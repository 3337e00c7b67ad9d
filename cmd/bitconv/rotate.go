package main

import (
	"github.com/spf13/cobra"
)

func newRotateCmd(a *app) *cobra.Command {
	var (
		format      string
		left, right int
	)

	cmd := &cobra.Command{
		Use:   "rotate VALUE",
		Short: "Rotate a bit array left or right",
		Example: `  bitconv rotate --left 1 101101
  bitconv rotate --right 4 --format hex B4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parseBits(format, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("right") {
				b.RotateRight(right)
			} else {
				b.RotateLeft(left)
			}
			out, err := renderBits(format, b)
			if err != nil {
				return err
			}
			printResult(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatBits, "input and output format (bits, hex, bytes)")
	cmd.Flags().IntVar(&left, "left", 1, "positions to rotate toward bit 0")
	cmd.Flags().IntVar(&right, "right", 0, "positions to rotate away from bit 0")
	cmd.MarkFlagsMutuallyExclusive("left", "right")
	return cmd
}
