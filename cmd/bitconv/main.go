// Command bitconv converts, combines and encodes bit arrays from the shell.
//
//	bitconv convert --from hex --to bits A5
//	bitconv xor --format hex F0 3C
//	bitconv rotate --left 3 101101
//	bitconv permute --numbers 2,5,6,1,3,4 010011
//	bitconv encode --compression zstd --format hex 8000000000000001
//	bitconv decode QklUQQEAAAAAAAAAAAADAAAAAQAAAAHwNub3oA==
//	bitconv ones 0100110
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
