package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitarray/bitmap"
)

func newOnesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "ones VALUE",
		Short:   "List the positions of set bits",
		Example: `  bitconv ones 0100110`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parseBits(format, args[0])
			if err != nil {
				return err
			}
			positions := bitmap.PositionsOf(b)
			a.logger.Debug("collected positions",
				"cardinality", positions.Cardinality(),
				"roaring_bytes", positions.GetSizeInBytes(),
			)

			var parts []string
			for pos := range positions.Iterator() {
				parts = append(parts, strconv.FormatUint(pos, 10))
			}
			printResult(cmd, strings.Join(parts, ","))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatBits, "input format (bits, hex, bytes)")
	return cmd
}
