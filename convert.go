package bitarray

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/bitarray/internal/chunk"
	"github.com/hupe1980/bitarray/internal/conv"
	"github.com/hupe1980/bitarray/internal/hash"
)

// binaryHeaderSize is the uint64 bit count that prefixes MarshalBinary output.
const binaryHeaderSize = 8

// BitString renders the bits as '0' and '1' characters, bit 0 first.
func (b *BitArray) BitString() string {
	var sb strings.Builder
	sb.Grow(b.count)
	for i := 0; i < b.count; i++ {
		sb.WriteByte('0' + byte(b.chunks.Bit(i)))
	}
	return sb.String()
}

// String implements fmt.Stringer with the bit string.
func (b *BitArray) String() string {
	return b.BitString()
}

// HexString renders the bits as uppercase hexadecimal digits, four bits per
// digit. A trailing partial digit is padded with zeros on the right.
func (b *BitArray) HexString() string {
	digits := (b.count + 3) / 4
	return strings.ToUpper(hex.EncodeToString(b.Bytes())[:digits])
}

// Bytes packs the bits into bytes, most significant bit first. A trailing
// partial byte is padded with zeros on the right.
func (b *BitArray) Bytes() []byte {
	out := make([]byte, (b.count+7)/8)
	for k := range out {
		out[k] = byte(b.chunks[k/4] >> (24 - 8*uint(k%4)))
	}
	return out
}

// Int32 interprets the whole array as a 32-bit integer, most significant bit
// first. The array must hold between 1 and 32 bits.
func (b *BitArray) Int32() (int32, error) {
	if err := checkBetween("length", b.count, 1, 32); err != nil {
		return 0, err
	}
	return b.int32Range(0, b.count), nil
}

// Int32Range interprets length bits starting at start as a 32-bit integer,
// most significant bit first. Fewer than 32 bits are not sign-extended.
func (b *BitArray) Int32Range(start, length int) (int32, error) {
	if err := checkBetween("length", length, 1, 32); err != nil {
		return 0, err
	}
	if err := checkBetween("startIndex", start, 0, b.count-length); err != nil {
		return 0, err
	}
	return b.int32Range(start, length), nil
}

func (b *BitArray) int32Range(start, length int) int32 {
	var v uint32
	for i := start; i < start+length; i++ {
		v = v<<1 | b.chunks.Bit(i)
	}
	return int32(v)
}

// Ones yields the positions of set bits in ascending order.
func (b *BitArray) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := chunk.NextSet(b.chunks, 0); i >= 0; i = chunk.NextSet(b.chunks, i+1) {
			if !yield(i) {
				return
			}
		}
	}
}

// MarshalBinary encodes the array as a big-endian uint64 bit count followed
// by Bytes().
func (b *BitArray) MarshalBinary() ([]byte, error) {
	out := make([]byte, binaryHeaderSize, binaryHeaderSize+(b.count+7)/8)
	binary.BigEndian.PutUint64(out, uint64(b.count))
	return append(out, b.Bytes()...), nil
}

// UnmarshalBinary decodes the MarshalBinary format. Padding bits past the
// count must be zero.
func (b *BitArray) UnmarshalBinary(data []byte) error {
	if len(data) < binaryHeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidEncoding, len(data))
	}
	count, err := conv.Uint64ToInt(binary.BigEndian.Uint64(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if err := checkCount(count); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	payload := data[binaryHeaderSize:]
	if want := (count + 7) / 8; len(payload) != want {
		return fmt.Errorf("%w: payload holds %d bytes, want %d", ErrInvalidEncoding, len(payload), want)
	}
	if r := count % 8; r != 0 && payload[len(payload)-1]&(0xFF>>r) != 0 {
		return fmt.Errorf("%w: padding bits are set", ErrInvalidEncoding)
	}
	decoded := FromBytes(payload)
	b.count = count
	b.chunks = decoded.chunks[:chunk.Count(count)]
	return nil
}

// MarshalText encodes the array as its bit string.
func (b *BitArray) MarshalText() ([]byte, error) {
	return []byte(b.BitString()), nil
}

// UnmarshalText decodes a bit string.
func (b *BitArray) UnmarshalText(text []byte) error {
	decoded, err := FromBitString(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	*b = *decoded
	return nil
}

// Fingerprint returns the BLAKE3-256 digest of the binary encoding. Equal
// arrays share a fingerprint.
func (b *BitArray) Fingerprint() [32]byte {
	data, _ := b.MarshalBinary()
	return hash.Sum256(data)
}
