package bitarray_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitarray"
)

func bits(t *testing.T, s string) *bitarray.BitArray {
	t.Helper()
	b, err := bitarray.FromBitString(s)
	require.NoError(t, err)
	return b
}

func requireContractError(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, bitarray.ErrContractViolation)
	assert.EqualError(t, err, msg)
}

func TestNew(t *testing.T) {
	for _, count := range []int{0, 1, 31, 32, 33, 100, 1024} {
		b, err := bitarray.New(count)
		require.NoError(t, err)

		assert.Equal(t, count, b.Count())
		assert.Equal(t, (count+31)/32, b.ChunkCount())
		assert.Equal(t, 0, b.OnesCount())
		for i := 0; i < count; i++ {
			v, err := b.Get(i)
			require.NoError(t, err)
			require.Equal(t, 0, v)
		}
	}
}

func TestNewOutOfRange(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		_, err := bitarray.New(-1)
		requireContractError(t, err, "count (-1) must be between 0 and 68719476704.")
	})

	t.Run("too large", func(t *testing.T) {
		_, err := bitarray.New(bitarray.MaxCount + 1)
		requireContractError(t, err, "count (68719476705) must be between 0 and 68719476704.")
	})

	t.Run("error fields", func(t *testing.T) {
		_, err := bitarray.New(-5)
		var argErr *bitarray.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "count", argErr.Name)
		assert.Equal(t, -5, argErr.Value)
	})
}

func TestFromBitString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		count int
		ones  []int
	}{
		{"empty", "", 0, nil},
		{"single zero", "0", 1, nil},
		{"single one", "1", 1, []int{0}},
		{"mixed", "010011", 6, []int{1, 4, 5}},
		{"crosses a chunk", "000000000000000000000000000000001", 33, []int{32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bits(t, tt.in)
			assert.Equal(t, tt.count, b.Count())
			assert.Equal(t, tt.in, b.BitString())

			var ones []int
			for i := range b.Ones() {
				ones = append(ones, i)
			}
			assert.Equal(t, tt.ones, ones)
		})
	}

	t.Run("invalid character", func(t *testing.T) {
		_, err := bitarray.FromBitString("0120")
		requireContractError(t, err, "bitString[2] ('2') must be '0' or '1'.")
	})
}

func TestFromHexString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"8", "1000"},
		{"A", "1010"},
		{"a", "1010"},
		{"fF", "11111111"},
		{"0123456789ABCDEF", "0000000100100011010001010110011110001001101010111100110111101111"},
		{"0123456789abcdef", "0000000100100011010001010110011110001001101010111100110111101111"},
		{"DEADBEEF1", "110111101010110110111110111011110001"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, err := bitarray.FromHexString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, 4*len(tt.in), b.Count())
			assert.Equal(t, tt.want, b.BitString())
		})
	}

	t.Run("invalid digit", func(t *testing.T) {
		_, err := bitarray.FromHexString("0G")
		requireContractError(t, err, "hexString[1] ('G') must be a hexadecimal digit.")
	})
}

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nil", nil, ""},
		{"empty", []byte{}, ""},
		{"minus one", []byte{0xFF}, "11111111"},
		{"msb first", []byte{0x80, 0x01}, "1000000000000001"},
		{"five bytes", []byte{0x12, 0x34, 0x56, 0x78, 0x9A}, "0001001000110100010101100111100010011010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bitarray.FromBytes(tt.in)
			assert.Equal(t, 8*len(tt.in), b.Count())
			assert.Equal(t, tt.want, b.BitString())
		})
	}
}

func TestClone(t *testing.T) {
	src := bits(t, "1011001")
	clone := src.Clone()

	assert.True(t, src.Equal(clone))
	assert.NotSame(t, src, clone)

	require.NoError(t, clone.Set(1, 1))
	assert.Equal(t, "1011001", src.String())
	assert.Equal(t, "1111001", clone.String())

	src.RotateLeft(1)
	assert.Equal(t, "1111001", clone.String())
}

func TestEqual(t *testing.T) {
	a := bits(t, "0101")

	assert.True(t, a.Equal(bits(t, "0101")))
	assert.False(t, a.Equal(bits(t, "0100")))
	assert.False(t, a.Equal(bits(t, "01010")), "different counts")
	assert.False(t, bits(t, "0").Equal(bits(t, "00")))
	assert.False(t, a.Equal(nil))
	assert.True(t, bits(t, "").Equal(bitarray.Must(bitarray.New(0))))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { bitarray.Must(bitarray.New(3)) })
	assert.Panics(t, func() { bitarray.Must(bitarray.New(-3)) })
}

func TestGet(t *testing.T) {
	b := bits(t, "0110")

	for i, want := range []int{0, 1, 1, 0} {
		got, err := b.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := b.Get(4)
	requireContractError(t, err, "index (4) must be between 0 and 3.")

	_, err = b.Get(-1)
	requireContractError(t, err, "index (-1) must be between 0 and 3.")
}

func TestSet(t *testing.T) {
	const count = 70
	for i := 0; i < count; i++ {
		b := bitarray.Must(bitarray.New(count))
		require.NoError(t, b.Set(i, 1))

		for j := 0; j < count; j++ {
			got, err := b.Get(j)
			require.NoError(t, err)
			if j == i {
				require.Equal(t, 1, got)
			} else {
				require.Equal(t, 0, got, "bit %d after setting %d", j, i)
			}
		}

		require.NoError(t, b.Set(i, 0))
		require.Equal(t, 0, b.OnesCount())
	}
}

func TestSetFailsWithoutMutation(t *testing.T) {
	b := bits(t, "0110")

	requireContractError(t, b.Set(4, 1), "index (4) must be between 0 and 3.")
	requireContractError(t, b.Set(0, 2), "value (2) must be 0 or 1.")
	requireContractError(t, b.SetOptional(0, nil), "value (<nil>) must not be nil.")

	assert.Equal(t, "0110", b.String())
}

func TestSetOptional(t *testing.T) {
	b := bits(t, "0000")
	one := 1

	require.NoError(t, b.SetOptional(2, &one))
	assert.Equal(t, "0010", b.String())
}

func TestSetAll(t *testing.T) {
	for _, count := range []int{0, 1, 5, 32, 33, 95} {
		b := bitarray.Must(bitarray.New(count))

		require.NoError(t, b.SetAll(1))
		assert.Equal(t, count, b.OnesCount())

		require.NoError(t, b.SetAll(0))
		assert.Equal(t, 0, b.OnesCount())
	}

	b := bits(t, "0101")
	requireContractError(t, b.SetAll(-1), "value (-1) must be 0 or 1.")
	assert.Equal(t, "0101", b.String())
}

func TestSetAllKeepsPadding(t *testing.T) {
	b := bitarray.Must(bitarray.New(33))
	require.NoError(t, b.SetAll(1))

	wide := bitarray.Must(bitarray.New(33))
	for i := 0; i < 33; i++ {
		require.NoError(t, wide.Set(i, 1))
	}
	assert.True(t, b.Equal(wide))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x80}, b.Bytes())
}

func TestSetLastBitsFromInt64(t *testing.T) {
	t.Run("minus one", func(t *testing.T) {
		b := bitarray.Must(bitarray.New(70))
		require.NoError(t, b.Set(0, 1))
		require.NoError(t, b.SetLastBitsFromInt64(-1))

		assert.Equal(t, "100000"+strings.Repeat("1", 64), b.String())
	})

	t.Run("one", func(t *testing.T) {
		b := bitarray.Must(bitarray.New(64))
		require.NoError(t, b.SetAll(1))
		require.NoError(t, b.SetLastBitsFromInt64(1))

		assert.Equal(t, strings.Repeat("0", 63)+"1", b.String())
	})

	t.Run("pattern", func(t *testing.T) {
		b := bitarray.Must(bitarray.New(64))
		require.NoError(t, b.SetLastBitsFromInt64(0x0123456789ABCDEF))

		assert.Equal(t, "0123456789ABCDEF", b.HexString())
	})

	t.Run("min int64", func(t *testing.T) {
		b := bitarray.Must(bitarray.New(65))
		require.NoError(t, b.SetLastBitsFromInt64(-1<<63))

		assert.Equal(t, "01"+strings.Repeat("0", 63), b.String())
	})

	t.Run("too short", func(t *testing.T) {
		b := bitarray.Must(bitarray.New(63))
		requireContractError(t, b.SetLastBitsFromInt64(1), "Count() (63) must be greater than or equal to 64.")
		assert.Equal(t, 0, b.OnesCount())
	})
}
