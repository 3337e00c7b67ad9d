package bitarray

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/bitarray/internal/chunk"
)

const (
	// ChunkBits is the width of one storage word.
	ChunkBits = chunk.Bits

	// MaxCount is the largest number of bits a BitArray can hold: the chunk
	// index space is a signed 32-bit count of 32-bit words.
	MaxCount = ChunkBits * math.MaxInt32
)

// BitArray is a fixed-length sequence of bits packed MSB-first into 32-bit
// words.
//
// Mutating methods (Set*, Rotate*, Shift*) write through the receiver and
// return it where chaining makes sense. Transformations (Clone, Xor, Concat,
// Permute*, Slice) always return a new array with its own storage.
//
// A BitArray is not safe for concurrent mutation.
type BitArray struct {
	count  int
	chunks chunk.Buffer
}

// New creates a zeroed BitArray holding count bits.
func New(count int) (*BitArray, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	return newBitArray(count), nil
}

func newBitArray(count int) *BitArray {
	return &BitArray{
		count:  count,
		chunks: chunk.New(count),
	}
}

// FromBitString parses a string of '0' and '1' characters. The first
// character becomes bit 0.
func FromBitString(s string) (*BitArray, error) {
	if err := checkCount(len(s)); err != nil {
		return nil, err
	}
	b := newBitArray(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b.chunks.SetBit(i, 1)
		default:
			return nil, &ArgumentError{
				Name:       fmt.Sprintf("bitString[%d]", i),
				Value:      fmt.Sprintf("%q", s[i]),
				Constraint: "be '0' or '1'",
			}
		}
	}
	return b, nil
}

// FromHexString parses hexadecimal digits (either case). Every digit expands
// to four bits, most significant first.
func FromHexString(s string) (*BitArray, error) {
	if int64(len(s)) > MaxCount/4 {
		return nil, checkCount(4 * len(s))
	}
	b := newBitArray(4 * len(s))
	for i := 0; i < len(s); i++ {
		n, ok := hexNibble(s[i])
		if !ok {
			return nil, &ArgumentError{
				Name:       fmt.Sprintf("hexString[%d]", i),
				Value:      fmt.Sprintf("%q", s[i]),
				Constraint: "be a hexadecimal digit",
			}
		}
		pos := 4 * i
		b.chunks[pos/ChunkBits] |= uint32(n) << (ChunkBits - 4 - uint(pos%ChunkBits))
	}
	return b, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// FromBytes expands every byte into eight bits, most significant first.
func FromBytes(data []byte) *BitArray {
	b := newBitArray(8 * len(data))
	for k, v := range data {
		b.chunks[k/4] |= uint32(v) << (24 - 8*uint(k%4))
	}
	return b
}

// Must returns v or panics with err. It is meant for literals in tests and
// examples.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Count returns the number of bits.
func (b *BitArray) Count() int {
	return b.count
}

// ChunkCount returns the number of 32-bit storage words.
func (b *BitArray) ChunkCount() int {
	return len(b.chunks)
}

// Clone returns an independent copy.
func (b *BitArray) Clone() *BitArray {
	return &BitArray{
		count:  b.count,
		chunks: b.chunks.Clone(),
	}
}

// Equal reports whether other holds the same number of bits with the same
// content. A nil other is never equal.
func (b *BitArray) Equal(other *BitArray) bool {
	if other == nil {
		return false
	}
	return b.count == other.count && slices.Equal(b.chunks, other.chunks)
}

// OnesCount returns the number of set bits.
func (b *BitArray) OnesCount() int {
	return chunk.OnesCount(b.chunks)
}
