package bitarray

// Get returns the bit at index as 0 or 1.
func (b *BitArray) Get(index int) (int, error) {
	if err := checkIndex(index, b.count); err != nil {
		return 0, err
	}
	return int(b.chunks.Bit(index)), nil
}

// Set writes value (0 or 1) at index.
func (b *BitArray) Set(index, value int) error {
	if err := checkIndex(index, b.count); err != nil {
		return err
	}
	if err := checkBitValue(value); err != nil {
		return err
	}
	b.chunks.SetBit(index, uint32(value))
	return nil
}

// SetOptional is Set for callers holding an optional value. A nil value
// fails without touching the array.
func (b *BitArray) SetOptional(index int, value *int) error {
	if value == nil {
		return &ArgumentError{Name: "value", Value: nil, Constraint: "not be nil"}
	}
	return b.Set(index, *value)
}

// SetAll sets every bit to value (0 or 1).
func (b *BitArray) SetAll(value int) error {
	if err := checkBitValue(value); err != nil {
		return err
	}
	b.chunks.Fill(b.count, uint32(value))
	return nil
}

// SetLastBitsFromInt64 writes the 64-bit two's-complement pattern of value,
// most significant bit first, into the final 64 bits. Earlier bits are left
// as they are.
func (b *BitArray) SetLastBitsFromInt64(value int64) error {
	if err := checkAtLeast("Count()", b.count, 64); err != nil {
		return err
	}
	u := uint64(value)
	start := b.count - 64
	for j := 0; j < 64; j++ {
		b.chunks.SetBit(start+j, uint32(u>>(63-uint(j)))&1)
	}
	return nil
}
