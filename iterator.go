package bitarray

import "iter"

type iteratorState uint8

const (
	notStarted iteratorState = iota
	positioned
	exhausted
)

// Iterator is a single-pass cursor over values derived from a BitArray.
//
// It starts before the first value. Next advances it and reports whether a
// value is available; once the values run out it stays exhausted and further
// Next calls keep returning false. Iterators cannot be restarted.
//
// The underlying array must not be mutated while an Iterator is in use.
type Iterator[T any] struct {
	next    func() (T, bool)
	current T
	state   iteratorState
}

func newIterator[T any](next func() (T, bool)) *Iterator[T] {
	return &Iterator[T]{next: next}
}

// Next advances to the next value.
func (it *Iterator[T]) Next() bool {
	if it.state == exhausted {
		return false
	}
	v, ok := it.next()
	if !ok {
		var zero T
		it.current = zero
		it.state = exhausted
		it.next = nil
		return false
	}
	it.current = v
	it.state = positioned
	return true
}

// HasStarted reports whether Next has been called.
func (it *Iterator[T]) HasStarted() bool {
	return it.state != notStarted
}

// HasCurrent reports whether the iterator is positioned on a value.
func (it *Iterator[T]) HasCurrent() bool {
	return it.state == positioned
}

// Current returns the value the iterator is positioned on. It fails before
// the first Next and after exhaustion.
func (it *Iterator[T]) Current() (T, error) {
	if it.state != positioned {
		var zero T
		return zero, &ArgumentError{Name: "HasCurrent()", Value: false, Constraint: "be true"}
	}
	return it.current, nil
}

// Seq adapts the remaining values for range-over-func. Ranging consumes the
// iterator; a value the iterator is already positioned on is not repeated.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.current) {
				return
			}
		}
	}
}

// Iterate returns an iterator over every bit (0 or 1) in index order.
func (b *BitArray) Iterate() *Iterator[int] {
	index := 0
	return newIterator(func() (int, bool) {
		if index >= b.count {
			return 0, false
		}
		v := int(b.chunks.Bit(index))
		index++
		return v, true
	})
}

// IterateBlocks returns an iterator over consecutive sub-arrays of
// blockSize bits. The final block is shorter when Count() is not a multiple
// of blockSize; no bits are dropped. An empty array yields nothing for any
// blockSize. Otherwise blockSize must be at least 1.
func (b *BitArray) IterateBlocks(blockSize int) (*Iterator[*BitArray], error) {
	if b.count > 0 {
		if err := checkAtLeast("blockSize", blockSize, 1); err != nil {
			return nil, err
		}
	}
	start := 0
	return newIterator(func() (*BitArray, bool) {
		if start >= b.count {
			return nil, false
		}
		length := min(blockSize, b.count-start)
		block := b.slice(start, length)
		start += length
		return block, true
	}), nil
}

// IterateIntegers returns an iterator over the storage chunks as signed
// 32-bit integers, most significant bit first. A trailing partial chunk is
// yielded left-aligned with zero padding.
func (b *BitArray) IterateIntegers() *Iterator[int32] {
	index := 0
	return newIterator(func() (int32, bool) {
		if index >= len(b.chunks) {
			return 0, false
		}
		v := int32(b.chunks[index])
		index++
		return v, true
	})
}
