package main

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitarray/codec"
)

func newEncodeCmd(a *app) *cobra.Command {
	var format, compression string

	cmd := &cobra.Command{
		Use:   "encode VALUE",
		Short: "Encode a bit array as a base64 binary frame",
		Example: `  bitconv encode 101
  bitconv encode --compression zstd --format hex 80000000000000000001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.ParseCompression(compression)
			if err != nil {
				return err
			}
			b, err := a.parseBits(format, args[0])
			if err != nil {
				return err
			}
			frame, err := codec.NewBinary(
				codec.WithCompression(c),
				codec.WithLogger(a.logger),
			).Encode(cmd.Context(), b)
			if err != nil {
				return err
			}
			printResult(cmd, base64.StdEncoding.EncodeToString(frame))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatBits, "input format (bits, hex, bytes)")
	cmd.Flags().StringVar(&compression, "compression", "none", "payload compression (none, lz4, zstd)")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "decode FRAME",
		Short:   "Decode a base64 binary frame written by encode",
		Example: `  bitconv decode --format hex QklUQQEAAAAAAAAAAAADAAAAAQAAAAHwNub3oA==`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := base64.StdEncoding.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode base64: %w", err)
			}
			b, err := codec.NewBinary(codec.WithLogger(a.logger)).Decode(cmd.Context(), frame)
			if err != nil {
				return err
			}
			out, err := renderBits(format, b)
			if err != nil {
				return err
			}
			printResult(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatBits, "output format (bits, hex, bytes, ints)")
	return cmd
}
