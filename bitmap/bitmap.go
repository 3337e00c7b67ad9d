// Package bitmap converts bit arrays to and from Roaring bitmaps.
//
// A BitArray of n bits maps to the set of positions holding a 1. Roaring
// compresses that set well when the array is sparse or has long runs, and
// supports fast set algebra across arrays of different lengths.
package bitmap

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/bitarray"
)

// ToRoaring returns the positions of the set bits of b.
func ToRoaring(b *bitarray.BitArray) *roaring64.Bitmap {
	rb := roaring64.New()
	for i := range b.Ones() {
		rb.Add(uint64(i))
	}
	return rb
}

// FromRoaring builds a BitArray of count bits with the positions in rb set.
// Every position must be below count.
func FromRoaring(rb *roaring64.Bitmap, count int) (*bitarray.BitArray, error) {
	b, err := bitarray.New(count)
	if err != nil {
		return nil, err
	}
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}
	if maxPos := rb.Maximum(); maxPos >= uint64(count) {
		return nil, &bitarray.ArgumentError{
			Name:       "position",
			Value:      maxPos,
			Constraint: fmt.Sprintf("be less than %d", count),
		}
	}
	it := rb.Iterator()
	for it.HasNext() {
		if err := b.Set(int(it.Next()), 1); err != nil { //nolint:gosec // bounded by count
			return nil, err
		}
	}
	return b, nil
}

// Positions is a set of bit positions backed by a 64-bit Roaring bitmap.
type Positions struct {
	rb *roaring64.Bitmap
}

// NewPositions creates a new empty position set.
func NewPositions() *Positions {
	return &Positions{
		rb: roaring64.New(),
	}
}

// PositionsOf returns the set bits of b as a position set.
func PositionsOf(b *bitarray.BitArray) *Positions {
	return &Positions{
		rb: ToRoaring(b),
	}
}

// Add adds a position to the set.
func (p *Positions) Add(pos uint64) {
	p.rb.Add(pos)
}

// Remove removes a position from the set.
func (p *Positions) Remove(pos uint64) {
	p.rb.Remove(pos)
}

// Contains checks if a position is in the set.
func (p *Positions) Contains(pos uint64) bool {
	return p.rb.Contains(pos)
}

// IsEmpty returns true if the set is empty.
func (p *Positions) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// Cardinality returns the number of positions in the set.
func (p *Positions) Cardinality() uint64 {
	return p.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (p *Positions) Clone() *Positions {
	return &Positions{
		rb: p.rb.Clone(),
	}
}

// Iterator returns an iterator over the positions in ascending order.
func (p *Positions) Iterator() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// And computes the intersection of two sets.
func (p *Positions) And(other *Positions) {
	p.rb.And(other.rb)
}

// Or computes the union of two sets.
func (p *Positions) Or(other *Positions) {
	p.rb.Or(other.rb)
}

// Xor computes the symmetric difference of two sets.
func (p *Positions) Xor(other *Positions) {
	p.rb.Xor(other.rb)
}

// Clear removes all positions from the set.
func (p *Positions) Clear() {
	p.rb.Clear()
}

// GetSizeInBytes returns the serialized size of the set in bytes.
func (p *Positions) GetSizeInBytes() uint64 {
	return p.rb.GetSizeInBytes()
}

// Roaring returns the underlying bitmap. Changes to it are visible through p.
func (p *Positions) Roaring() *roaring64.Bitmap {
	return p.rb
}

// BitArray materializes the set as an array of count bits.
func (p *Positions) BitArray(count int) (*bitarray.BitArray, error) {
	return FromRoaring(p.rb, count)
}
