package bitmap

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/testutil"
)

func TestToRoaring(t *testing.T) {
	b := bitarray.Must(bitarray.FromBitString("0100110000000000000000000000000001"))

	rb := ToRoaring(b)
	assert.Equal(t, []uint64{1, 4, 5, 33}, rb.ToArray())
	assert.Equal(t, uint64(b.OnesCount()), rb.GetCardinality())

	assert.True(t, ToRoaring(bitarray.Must(bitarray.New(100))).IsEmpty())
}

func TestFromRoaring(t *testing.T) {
	b, err := FromRoaring(roaring64.BitmapOf(0, 3, 4), 6)
	require.NoError(t, err)
	assert.Equal(t, "100110", b.String())

	empty, err := FromRoaring(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, "000", empty.String())

	_, err = FromRoaring(roaring64.BitmapOf(2, 6), 6)
	require.ErrorIs(t, err, bitarray.ErrContractViolation)
	assert.EqualError(t, err, "position (6) must be less than 6.")

	_, err = FromRoaring(roaring64.New(), -1)
	require.ErrorIs(t, err, bitarray.ErrContractViolation)
}

func TestRoaringRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(17)

	for _, b := range rng.BitArrays(50, 2000) {
		rb := ToRoaring(b)
		require.Equal(t, uint64(b.OnesCount()), rb.GetCardinality())

		back, err := FromRoaring(rb, b.Count())
		require.NoError(t, err)
		require.True(t, b.Equal(back))
	}
}

func TestPositions(t *testing.T) {
	p := NewPositions()
	assert.True(t, p.IsEmpty())

	p.Add(7)
	p.Add(2)
	p.Add(7)
	assert.Equal(t, uint64(2), p.Cardinality())
	assert.True(t, p.Contains(2))
	assert.False(t, p.Contains(3))
	assert.Equal(t, []uint64{2, 7}, slices.Collect(p.Iterator()))

	clone := p.Clone()
	p.Remove(2)
	assert.False(t, p.Contains(2))
	assert.True(t, clone.Contains(2))

	b, err := clone.BitArray(8)
	require.NoError(t, err)
	assert.Equal(t, "00100001", b.String())

	_, err = clone.BitArray(7)
	require.ErrorIs(t, err, bitarray.ErrContractViolation)

	assert.Positive(t, clone.GetSizeInBytes())
	assert.Same(t, clone.rb, clone.Roaring())

	clone.Clear()
	assert.True(t, clone.IsEmpty())
}

func TestPositionsAlgebraMatchesXor(t *testing.T) {
	rng := testutil.NewRNG(23)

	for i := 0; i < 20; i++ {
		n := 1 + rng.Intn(500)
		a := rng.BitArray(n)
		b := rng.BitArray(n)

		want, err := a.Xor(b)
		require.NoError(t, err)

		p := PositionsOf(a)
		p.Xor(PositionsOf(b))
		got, err := p.BitArray(n)
		require.NoError(t, err)
		require.True(t, want.Equal(got))

		and := PositionsOf(a)
		and.And(PositionsOf(b))
		or := PositionsOf(a)
		or.Or(PositionsOf(b))
		require.Equal(t, or.Cardinality(), and.Cardinality()+p.Cardinality())
	}
}

func TestIteratorStopsEarly(t *testing.T) {
	p := PositionsOf(bitarray.Must(bitarray.FromBitString("1111")))

	var seen []uint64
	for pos := range p.Iterator() {
		seen = append(seen, pos)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{0, 1}, seen)
}
