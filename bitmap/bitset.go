package bitmap

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitarray"
)

// ToBitSet copies b into an uncompressed bitset of b.Count() bits.
func ToBitSet(b *bitarray.BitArray) *bitset.BitSet {
	bs := bitset.New(uint(b.Count())) //nolint:gosec // counts are non-negative
	for i := range b.Ones() {
		bs.Set(uint(i)) //nolint:gosec // positions are non-negative
	}
	return bs
}

// FromBitSet builds a BitArray of count bits from the set bits of bs.
// Every set bit must lie below count; bs.Len() itself may be larger.
func FromBitSet(bs *bitset.BitSet, count int) (*bitarray.BitArray, error) {
	b, err := bitarray.New(count)
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return b, nil
	}
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if i >= uint(count) { //nolint:gosec // count is non-negative
			return nil, &bitarray.ArgumentError{
				Name:       "position",
				Value:      i,
				Constraint: fmt.Sprintf("be less than %d", count),
			}
		}
		if err := b.Set(int(i), 1); err != nil { //nolint:gosec // bounded by count
			return nil, err
		}
	}
	return b, nil
}
