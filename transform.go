package bitarray

import (
	"strconv"

	"github.com/hupe1980/bitarray/internal/chunk"
)

// RotateLeft moves every bit n positions toward index 0, re-entering bits at
// the end. Any n is accepted and taken modulo Count(); negative n rotates
// right.
func (b *BitArray) RotateLeft(n int) *BitArray {
	if b.count <= 1 {
		return b
	}
	n %= b.count
	if n < 0 {
		n += b.count
	}
	if n == 0 {
		return b
	}
	wrapped := make(chunk.Buffer, len(b.chunks))
	chunk.ShiftRight(wrapped, b.chunks, b.count-n)
	chunk.ShiftLeft(b.chunks, b.chunks, n)
	chunk.Or(b.chunks, b.chunks, wrapped)
	b.chunks.ClearTail(b.count)
	return b
}

// RotateRight moves every bit n positions away from index 0, re-entering
// bits at the start. RotateRight(n) undoes RotateLeft(n).
func (b *BitArray) RotateRight(n int) *BitArray {
	if b.count <= 1 {
		return b
	}
	return b.RotateLeft(-(n % b.count))
}

// ShiftLeft moves every bit n positions toward index 0. Bits shifted past
// the start are lost and the vacated trailing positions read 0.
func (b *BitArray) ShiftLeft(n int) (*BitArray, error) {
	if err := checkAtLeast("amount", n, 0); err != nil {
		return nil, err
	}
	if n >= b.count {
		b.chunks.Fill(b.count, 0)
		return b, nil
	}
	chunk.ShiftLeft(b.chunks, b.chunks, n)
	return b, nil
}

// ShiftRight moves every bit n positions away from index 0. Bits shifted
// past the end are lost and the vacated leading positions read 0.
func (b *BitArray) ShiftRight(n int) (*BitArray, error) {
	if err := checkAtLeast("amount", n, 0); err != nil {
		return nil, err
	}
	if n >= b.count {
		b.chunks.Fill(b.count, 0)
		return b, nil
	}
	chunk.ShiftRight(b.chunks, b.chunks, n)
	b.chunks.ClearTail(b.count)
	return b, nil
}

// ShiftRangeLeft applies ShiftLeft to the bits in [start, start+length) only.
// Vacated positions inside the range read 0; bits outside the range keep
// their values.
func (b *BitArray) ShiftRangeLeft(start, length, amount int) (*BitArray, error) {
	if err := b.checkRange(start, length); err != nil {
		return nil, err
	}
	if err := checkAtLeast("amount", amount, 0); err != nil {
		return nil, err
	}
	b.shiftRange(start, length, amount, true)
	return b, nil
}

// ShiftRangeRight applies ShiftRight to the bits in [start, start+length)
// only. Vacated positions inside the range read 0; bits outside the range
// keep their values.
func (b *BitArray) ShiftRangeRight(start, length, amount int) (*BitArray, error) {
	if err := b.checkRange(start, length); err != nil {
		return nil, err
	}
	if err := checkAtLeast("amount", amount, 0); err != nil {
		return nil, err
	}
	b.shiftRange(start, length, amount, false)
	return b, nil
}

func (b *BitArray) shiftRange(start, length, amount int, left bool) {
	if length == 0 || amount == 0 {
		return
	}
	sub := chunk.New(length)
	if amount < length {
		chunk.CopyBits(sub, 0, b.chunks, start, length)
		if left {
			chunk.ShiftLeft(sub, sub, amount)
		} else {
			chunk.ShiftRight(sub, sub, amount)
			sub.ClearTail(length)
		}
	}
	chunk.CopyBits(b.chunks, start, sub, 0, length)
}

func (b *BitArray) checkRange(start, length int) error {
	if err := checkBetween("startIndex", start, 0, b.count); err != nil {
		return err
	}
	return checkBetween("length", length, 0, b.count-start)
}

// Xor returns a new array whose bit i is b[i] ^ rhs[i]. Both arrays must
// hold the same number of bits.
func (b *BitArray) Xor(rhs *BitArray) (*BitArray, error) {
	if err := checkNotNil("rhs", rhs); err != nil {
		return nil, err
	}
	if rhs.count != b.count {
		return nil, &ArgumentError{
			Name:       "rhs.Count()",
			Value:      rhs.count,
			Constraint: "be " + strconv.Itoa(b.count),
		}
	}
	result := newBitArray(b.count)
	chunk.Xor(result.chunks, b.chunks, rhs.chunks)
	return result, nil
}

// Concat returns a new array holding b's bits followed by rhs's bits.
func (b *BitArray) Concat(rhs *BitArray) (*BitArray, error) {
	if err := checkNotNil("rhs", rhs); err != nil {
		return nil, err
	}
	if err := checkCount(b.count + rhs.count); err != nil {
		return nil, err
	}
	result := newBitArray(b.count + rhs.count)
	copy(result.chunks, b.chunks)
	chunk.CopyBits(result.chunks, b.count, rhs.chunks, 0, rhs.count)
	return result, nil
}

// Slice returns a new array holding the length bits starting at start.
func (b *BitArray) Slice(start, length int) (*BitArray, error) {
	if err := b.checkRange(start, length); err != nil {
		return nil, err
	}
	return b.slice(start, length), nil
}

func (b *BitArray) slice(start, length int) *BitArray {
	result := newBitArray(length)
	chunk.CopyBits(result.chunks, 0, b.chunks, start, length)
	return result
}

// PermuteByIndex returns a new array whose bit i is b[indices[i]]. Indices
// are 0-based and may repeat or skip positions.
func (b *BitArray) PermuteByIndex(indices []int) (*BitArray, error) {
	if err := b.checkPermutable(len(indices)); err != nil {
		return nil, err
	}
	for _, index := range indices {
		if err := checkIndex(index, b.count); err != nil {
			return nil, err
		}
	}
	result := newBitArray(len(indices))
	for i, index := range indices {
		result.chunks.SetBit(i, b.chunks.Bit(index))
	}
	return result, nil
}

// PermuteByNumber is PermuteByIndex with 1-based bit numbers: bit i of the
// result is b[numbers[i]-1].
func (b *BitArray) PermuteByNumber(numbers []int) (*BitArray, error) {
	if err := b.checkPermutable(len(numbers)); err != nil {
		return nil, err
	}
	for _, number := range numbers {
		if err := checkBetween("bitNumber", number, 1, b.count); err != nil {
			return nil, err
		}
	}
	result := newBitArray(len(numbers))
	for i, number := range numbers {
		result.chunks.SetBit(i, b.chunks.Bit(number-1))
	}
	return result, nil
}

func (b *BitArray) checkPermutable(n int) error {
	if n == 0 {
		return nil
	}
	return checkAtLeast("Indexable length", b.count, 1)
}
