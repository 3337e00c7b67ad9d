package chunk

import (
	"math/bits"
	"slices"
)

const (
	// Bits is the width of a storage word.
	Bits = 32

	shift = 5
	mask  = Bits - 1
)

// Buffer is a flat run of 32-bit words holding bits MSB-first.
// Bit i lives in word i/32 at mask 1<<(31-i%32).
type Buffer []uint32

// Count returns the number of words needed to hold n bits.
func Count(n int) int {
	return (n + mask) >> shift
}

// New allocates a zeroed buffer large enough for n bits.
func New(n int) Buffer {
	return make(Buffer, Count(n))
}

func bitMask(i int) uint32 {
	return 1 << (mask - uint(i&mask))
}

// Bit returns bit i as 0 or 1.
func (b Buffer) Bit(i int) uint32 {
	return (b[i>>shift] >> (mask - uint(i&mask))) & 1
}

// SetBit sets bit i to v (0 clears, anything else sets).
func (b Buffer) SetBit(i int, v uint32) {
	if v != 0 {
		b[i>>shift] |= bitMask(i)
	} else {
		b[i>>shift] &^= bitMask(i)
	}
}

// TailMask returns the mask of live bits in the final word of an n-bit buffer.
func TailMask(n int) uint32 {
	r := n & mask
	if r == 0 {
		return ^uint32(0)
	}
	return ^uint32(0) << (Bits - uint(r))
}

// ClearTail zeroes the padding bits past position n in the final word.
func (b Buffer) ClearTail(n int) {
	if len(b) > 0 {
		b[len(b)-1] &= TailMask(n)
	}
}

// Fill sets the first n bits to v and keeps the padding clear.
func (b Buffer) Fill(n int, v uint32) {
	var w uint32
	if v != 0 {
		w = ^uint32(0)
	}
	for i := range b {
		b[i] = w
	}
	b.ClearTail(n)
}

// Clone returns an independent copy of b.
func (b Buffer) Clone() Buffer {
	return slices.Clone(b)
}

// ShiftLeft writes src moved n positions toward bit 0 into dst, filling the
// vacated trailing positions with zeros. dst may alias src.
func ShiftLeft(dst, src Buffer, n int) {
	ws, bs := n>>shift, uint(n&mask)
	for i := range dst {
		var w uint32
		if j := i + ws; j < len(src) {
			w = src[j] << bs
			if bs != 0 && j+1 < len(src) {
				w |= src[j+1] >> (Bits - bs)
			}
		}
		dst[i] = w
	}
}

// ShiftRight writes src moved n positions away from bit 0 into dst, filling
// the vacated leading positions with zeros. Bits pushed past the end of dst
// are dropped; callers clear the tail afterwards. dst may alias src.
func ShiftRight(dst, src Buffer, n int) {
	ws, bs := n>>shift, uint(n&mask)
	for i := len(dst) - 1; i >= 0; i-- {
		var w uint32
		if j := i - ws; j >= 0 && j < len(src) {
			w = src[j] >> bs
			if bs != 0 && j > 0 {
				w |= src[j-1] << (Bits - bs)
			}
		}
		dst[i] = w
	}
}

// Or stores a | b into dst.
func Or(dst, a, b Buffer) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Xor stores a ^ b into dst.
func Xor(dst, a, b Buffer) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// window returns the 32 bits of src starting at bit off, left-aligned.
func window(src Buffer, off int) uint32 {
	i, bs := off>>shift, uint(off&mask)
	w := src[i] << bs
	if bs != 0 && i+1 < len(src) {
		w |= src[i+1] >> (Bits - bs)
	}
	return w
}

// CopyBits copies n bits from src starting at srcOff into dst starting at
// dstOff. dst and src must not overlap.
func CopyBits(dst Buffer, dstOff int, src Buffer, srcOff, n int) {
	if dstOff&mask == 0 && srcOff&mask == 0 {
		words := n >> shift
		copy(dst[dstOff>>shift:dstOff>>shift+words], src[srcOff>>shift:srcOff>>shift+words])
		dstOff += words << shift
		srcOff += words << shift
		n -= words << shift
	}
	for n > 0 {
		d := uint(dstOff & mask)
		k := min(uint(n), Bits-d)
		v := window(src, srcOff) >> (Bits - k)
		m := (^uint32(0) >> (Bits - k)) << (Bits - d - k)
		w := &dst[dstOff>>shift]
		*w = *w&^m | (v<<(Bits-d-k))&m
		dstOff += int(k)
		srcOff += int(k)
		n -= int(k)
	}
}

// OnesCount returns the number of set bits in b.
func OnesCount(b Buffer) int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount32(w)
	}
	return n
}

// NextSet returns the position of the first set bit at or after from, or -1.
func NextSet(b Buffer, from int) int {
	if from < 0 {
		from = 0
	}
	i := from >> shift
	if i >= len(b) {
		return -1
	}
	w := b[i] & (^uint32(0) >> uint(from&mask))
	for w == 0 {
		i++
		if i == len(b) {
			return -1
		}
		w = b[i]
	}
	return i<<shift + bits.LeadingZeros32(w)
}
