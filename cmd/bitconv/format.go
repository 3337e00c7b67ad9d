package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitarray"
)

const (
	formatBits  = "bits"
	formatHex   = "hex"
	formatBytes = "bytes"
	formatInts  = "ints"
)

// parseBits reads value in the given input format.
func (a *app) parseBits(format, value string) (*bitarray.BitArray, error) {
	var (
		b   *bitarray.BitArray
		err error
	)
	switch format {
	case formatBits:
		b, err = bitarray.FromBitString(value)
	case formatHex:
		b, err = bitarray.FromHexString(value)
	case formatBytes:
		var data []byte
		data, err = parseSignedBytes(value)
		if err == nil {
			b = bitarray.FromBytes(data)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q (use bits, hex or bytes)", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", format, value, err)
	}
	a.logger.WithCount(b.Count()).Debug("parsed input", "format", format)
	return b, nil
}

// renderBits writes b in the given output format.
func renderBits(format string, b *bitarray.BitArray) (string, error) {
	switch format {
	case formatBits:
		return b.BitString(), nil
	case formatHex:
		return b.HexString(), nil
	case formatBytes:
		return formatSignedBytes(b.Bytes()), nil
	case formatInts:
		var parts []string
		for v := range b.IterateIntegers().Seq() {
			parts = append(parts, strconv.FormatInt(int64(v), 10))
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unknown output format %q (use bits, hex, bytes or ints)", format)
	}
}

func parseSignedBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]byte, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("byte %d: %w", i, err)
		}
		out[i] = byte(int8(v))
	}
	return out, nil
}

func formatSignedBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = strconv.Itoa(int(int8(v)))
	}
	return strings.Join(parts, ",")
}

func printResult(cmd *cobra.Command, s string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
}
