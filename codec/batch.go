package codec

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitarray"
)

// MarshalAll encodes arrays concurrently with c. Results keep the input
// order. The first failure cancels the remaining work and is returned.
func MarshalAll(ctx context.Context, c Codec, arrays []*bitarray.BitArray, opts ...Option) ([][]byte, error) {
	o := applyOptions(opts)
	out := make([][]byte, len(arrays))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, b := range arrays {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := c.Marshal(b)
			if err != nil {
				return fmt.Errorf("array %d: %w", i, err)
			}
			out[i] = data
			return nil
		})
	}

	err := g.Wait()
	o.logger.LogBatch(ctx, "marshal", len(arrays), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalAll decodes frames concurrently with c. Results keep the input
// order. The first failure cancels the remaining work and is returned.
func UnmarshalAll(ctx context.Context, c Codec, frames [][]byte, opts ...Option) ([]*bitarray.BitArray, error) {
	o := applyOptions(opts)
	out := make([]*bitarray.BitArray, len(frames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, data := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := new(bitarray.BitArray)
			if err := c.Unmarshal(data, b); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out[i] = b
			return nil
		})
	}

	err := g.Wait()
	o.logger.LogBatch(ctx, "unmarshal", len(frames), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
