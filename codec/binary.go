package codec

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/internal/conv"
	"github.com/hupe1980/bitarray/internal/hash"
)

// Binary frame layout (multi-byte fields big-endian):
//
//	[0:4]   magic "BITA"
//	[4]     version
//	[5]     compression
//	[6]     reserved, zero
//	[7:15]  bit count      uint64
//	[15:19] raw length     uint32
//	[19:23] stored length  uint32
//	[23:27] CRC32C of the raw payload
//	[27:]   payload (Bytes() of the array, possibly compressed)
const (
	frameVersion    = 1
	frameHeaderSize = 27
)

var frameMagic = []byte("BITA")

// Binary is the compact frame codec for *bitarray.BitArray values.
//
// The frame records the bit count exactly, so arrays whose length is not a
// multiple of 8 round-trip unchanged. Payload corruption is caught by a
// CRC32C checksum.
type Binary struct {
	compression Compression
	logger      *bitarray.Logger
}

// NewBinary creates a Binary codec.
func NewBinary(opts ...Option) *Binary {
	o := applyOptions(opts)
	return &Binary{
		compression: o.compression,
		logger:      o.logger,
	}
}

// Name returns the unique name of the codec: "binary", "binary+lz4" or
// "binary+zstd".
func (c *Binary) Name() string {
	if c.compression == CompressionNone {
		return "binary"
	}
	return "binary+" + c.compression.String()
}

// Compression returns the configured payload compression.
func (c *Binary) Compression() Compression {
	return c.compression
}

// Marshal encodes a *bitarray.BitArray.
func (c *Binary) Marshal(v any) ([]byte, error) {
	b, err := bitArrayOf(v)
	if err != nil {
		return nil, err
	}
	return c.Encode(context.Background(), b)
}

// Unmarshal decodes a frame into a *bitarray.BitArray.
func (c *Binary) Unmarshal(data []byte, v any) error {
	target, err := bitArrayOf(v)
	if err != nil {
		return err
	}
	decoded, err := c.Decode(context.Background(), data)
	if err != nil {
		return err
	}
	*target = *decoded
	return nil
}

// Encode writes b as a frame.
func (c *Binary) Encode(ctx context.Context, b *bitarray.BitArray) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bit array", ErrUnsupportedType)
	}
	frame, err := c.encode(b)
	c.logger.LogMarshal(ctx, c.Name(), b.Count(), (b.Count()+7)/8, len(frame), err)
	return frame, err
}

func (c *Binary) encode(b *bitarray.BitArray) ([]byte, error) {
	if !c.compression.valid() {
		return nil, fmt.Errorf("%w: compression %d", ErrUnknownCodec, uint8(c.compression))
	}

	raw := b.Bytes()
	rawLen, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, fmt.Errorf("codec: payload too large: %w", err)
	}

	stored, used, err := compress(raw, c.compression)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, frameHeaderSize, frameHeaderSize+len(stored))
	copy(frame, frameMagic)
	frame[4] = frameVersion
	frame[5] = byte(used)
	binary.BigEndian.PutUint64(frame[7:], uint64(b.Count()))
	binary.BigEndian.PutUint32(frame[15:], rawLen)
	binary.BigEndian.PutUint32(frame[19:], uint32(len(stored))) //nolint:gosec // stored is never larger than raw
	binary.BigEndian.PutUint32(frame[23:], hash.CRC32C(raw))
	return append(frame, stored...), nil
}

// Decode reads a frame written by any Binary codec, whatever its
// compression setting.
func (c *Binary) Decode(ctx context.Context, data []byte) (*bitarray.BitArray, error) {
	b, err := decodeFrame(data)
	bits := 0
	if b != nil {
		bits = b.Count()
	}
	c.logger.LogUnmarshal(ctx, c.Name(), len(data), bits, err)
	return b, err
}

func decodeFrame(data []byte) (*bitarray.BitArray, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the frame header", ErrCorrupt, len(data))
	}
	if !bytes.Equal(data[:4], frameMagic) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, data[:4])
	}
	if data[4] != frameVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[4])
	}
	compression := Compression(data[5])
	if !compression.valid() {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, data[5])
	}
	if data[6] != 0 {
		return nil, fmt.Errorf("%w: reserved byte is %d", ErrCorrupt, data[6])
	}

	rawLen, err := conv.Uint32ToInt(binary.BigEndian.Uint32(data[15:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	storedLen, err := conv.Uint32ToInt(binary.BigEndian.Uint32(data[19:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	count := binary.BigEndian.Uint64(data[7:])
	if count > bitarray.MaxCount || (count+7)/8 != uint64(rawLen) {
		return nil, fmt.Errorf("%w: raw length %d does not hold %d bits", ErrCorrupt, rawLen, count)
	}
	payload := data[frameHeaderSize:]
	if len(payload) != storedLen {
		return nil, fmt.Errorf("%w: payload holds %d bytes, header says %d", ErrCorrupt, len(payload), storedLen)
	}

	raw, err := decompress(payload, compression, rawLen)
	if err != nil {
		return nil, err
	}
	if err := hash.VerifyCRC32C(raw, binary.BigEndian.Uint32(data[23:])); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	// The BitArray binary form checks the count and the padding bits.
	plain := make([]byte, 8+len(raw))
	copy(plain, data[7:15])
	copy(plain[8:], raw)

	b := new(bitarray.BitArray)
	if err := b.UnmarshalBinary(plain); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return b, nil
}
