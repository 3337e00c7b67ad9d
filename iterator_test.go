package bitarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/testutil"
)

func TestIterate(t *testing.T) {
	it := bits(t, "010011").Iterate()

	assert.False(t, it.HasStarted())
	assert.False(t, it.HasCurrent())
	_, err := it.Current()
	requireContractError(t, err, "HasCurrent() (false) must be true.")

	var got []int
	for it.Next() {
		assert.True(t, it.HasStarted())
		assert.True(t, it.HasCurrent())
		v, err := it.Current()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 0, 0, 1, 1}, got)

	assert.True(t, it.HasStarted())
	assert.False(t, it.HasCurrent())
	assert.False(t, it.Next(), "exhausted iterators stay exhausted")
	_, err = it.Current()
	requireContractError(t, err, "HasCurrent() (false) must be true.")
}

func TestIterateEmpty(t *testing.T) {
	it := bits(t, "").Iterate()

	assert.False(t, it.Next())
	assert.True(t, it.HasStarted())
	assert.False(t, it.HasCurrent())
}

func TestIterateSeq(t *testing.T) {
	rng := testutil.NewRNG(8)
	s := rng.BitString(77)

	var out []byte
	for bit := range bits(t, s).Iterate().Seq() {
		out = append(out, '0'+byte(bit))
	}
	assert.Equal(t, s, string(out))
}

func TestIterateSeqResumes(t *testing.T) {
	it := bits(t, "1100").Iterate()
	require.True(t, it.Next())

	var rest []int
	for bit := range it.Seq() {
		rest = append(rest, bit)
		if len(rest) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 0}, rest)

	v, err := it.Current()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.True(t, it.Next())
	assert.False(t, it.Next())
}

func TestIterateBlocks(t *testing.T) {
	tests := []struct {
		in        string
		blockSize int
		want      []string
	}{
		{"010011", 2, []string{"01", "00", "11"}},
		{"010011", 4, []string{"0100", "11"}},
		{"010011", 6, []string{"010011"}},
		{"010011", 10, []string{"010011"}},
		{"010011", 1, []string{"0", "1", "0", "0", "1", "1"}},
		{"", 3, nil},
	}
	for _, tt := range tests {
		it, err := bits(t, tt.in).IterateBlocks(tt.blockSize)
		require.NoError(t, err)

		var got []string
		for block := range it.Seq() {
			got = append(got, block.String())
		}
		assert.Equal(t, tt.want, got, "IterateBlocks(%q, %d)", tt.in, tt.blockSize)
	}
}

func TestIterateBlocksCoversEveryBit(t *testing.T) {
	rng := testutil.NewRNG(77)

	for i := 0; i < 50; i++ {
		s := rng.BitString(rng.Intn(300))
		size := 1 + rng.Intn(70)

		it, err := bits(t, s).IterateBlocks(size)
		require.NoError(t, err)

		var joined string
		for block := range it.Seq() {
			require.LessOrEqual(t, block.Count(), size)
			joined += block.String()
		}
		require.Equal(t, s, joined)
	}
}

func TestIterateBlocksInvalid(t *testing.T) {
	b := bits(t, "0101")

	_, err := b.IterateBlocks(0)
	requireContractError(t, err, "blockSize (0) must be greater than or equal to 1.")

	_, err = b.IterateBlocks(-4)
	requireContractError(t, err, "blockSize (-4) must be greater than or equal to 1.")
}

func TestIterateBlocksEmptyAnySize(t *testing.T) {
	empty := bitarray.Must(bitarray.New(0))

	for _, size := range []int{-3, 0, 1, 64} {
		it, err := empty.IterateBlocks(size)
		require.NoError(t, err, "blockSize %d", size)
		assert.False(t, it.Next())
		assert.False(t, it.HasCurrent())
	}
}

func TestIterateIntegers(t *testing.T) {
	collect := func(b *bitarray.BitArray) []int32 {
		var out []int32
		for v := range b.IterateIntegers().Seq() {
			out = append(out, v)
		}
		return out
	}

	full := bitarray.Must(bitarray.FromHexString("FFFFFFFF00000001"))
	assert.Equal(t, []int32{-1, 1}, collect(full))

	assert.Equal(t, []int32{math.MinInt32}, collect(bits(t, "1")))
	assert.Equal(t, []int32{0x0A000000}, collect(bits(t, "00001010")))
	assert.Nil(t, collect(bits(t, "")))

	wide := bitarray.Must(bitarray.FromHexString("123456789"))
	assert.Equal(t, []int32{0x12345678, math.MinInt32 + 0x10000000}, collect(wide))
}
