package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPermuteCmd(a *app) *cobra.Command {
	var (
		format  string
		numbers []int
		zero    bool
	)

	cmd := &cobra.Command{
		Use:   "permute VALUE",
		Short: "Select and reorder bits by 1-based bit number",
		Long: `Build a new bit array whose bit i is the input bit numbered numbers[i].
Bit numbers start at 1 as in cipher permutation tables; --zero-based
switches to 0-based indices.`,
		Example: `  bitconv permute --numbers 2,5,6,1,3,4 010011`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(numbers) == 0 {
				return errors.New("--numbers is required")
			}
			b, err := a.parseBits(format, args[0])
			if err != nil {
				return err
			}
			permute := b.PermuteByNumber
			if zero {
				permute = b.PermuteByIndex
			}
			p, err := permute(numbers)
			if err != nil {
				return err
			}
			out, err := renderBits(format, p)
			if err != nil {
				return err
			}
			printResult(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatBits, "input and output format (bits, hex, bytes)")
	cmd.Flags().IntSliceVar(&numbers, "numbers", nil, "comma-separated bit numbers")
	cmd.Flags().BoolVar(&zero, "zero-based", false, "treat --numbers as 0-based indices")
	return cmd
}
