package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression of the Binary codec.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, modest ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (slower, better ratio for large sparse arrays).
	CompressionZSTD Compression = 2
)

// String returns the flag spelling of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("%w: compression %q", ErrUnknownCodec, s)
	}
}

func (c Compression) valid() bool {
	return c <= CompressionZSTD
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecodeAllCapLimit(true))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the stored form of raw and the compression actually
// applied. Output that is not smaller than 90% of the input is discarded in
// favor of the raw bytes.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var (
		compressed []byte
		err        error
	)
	switch c {
	case CompressionLZ4:
		compressed, err = compressLZ4(raw)
	case CompressionZSTD:
		compressed = compressZSTD(raw)
	default:
		return nil, CompressionNone, fmt.Errorf("%w: %s", ErrUnknownCodec, c)
	}
	if err != nil {
		return nil, CompressionNone, err
	}

	if len(compressed) == 0 || 10*len(compressed) >= 9*len(raw) {
		return raw, CompressionNone, nil
	}
	return compressed, c, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// Upper bounds on the expansion of a compressed payload. An LZ4 block
// grows by at most 255 bytes per input byte plus the final literals. Every
// 128 KiB of ZSTD output costs at least a 4-byte RLE block.
const (
	lz4MaxExpansion  = 255
	lz4MaxTail       = 16
	zstdMaxExpansion = (128 << 10) / 4
)

// maxDecompressed returns the largest raw length a stored payload of
// storedLen bytes can produce under c.
func maxDecompressed(c Compression, storedLen int) uint64 {
	n := uint64(storedLen) //nolint:gosec // lengths are non-negative
	switch c {
	case CompressionLZ4:
		return lz4MaxExpansion*n + lz4MaxTail
	case CompressionZSTD:
		return zstdMaxExpansion * n
	default:
		return n
	}
}

// decompress restores rawLen bytes from a stored payload. The raw length is
// checked against the payload size before any output buffer is allocated.
func decompress(stored []byte, c Compression, rawLen int) ([]byte, error) {
	if c != CompressionNone {
		if len(stored) == 0 {
			return nil, fmt.Errorf("%w: empty %s payload", ErrCorrupt, c)
		}
		if limit := maxDecompressed(c, len(stored)); uint64(rawLen) > limit { //nolint:gosec // rawLen is non-negative
			return nil, fmt.Errorf("%w: raw length %d exceeds %d bytes for a %d-byte %s payload",
				ErrCorrupt, rawLen, limit, len(stored), c)
		}
	}

	switch c {
	case CompressionNone:
		if len(stored) != rawLen {
			return nil, fmt.Errorf("%w: stored %d bytes, raw length %d", ErrCorrupt, len(stored), rawLen)
		}
		return stored, nil

	case CompressionLZ4:
		result := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(stored, result)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrCorrupt, err)
		}
		if n != rawLen {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(stored, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if len(decoded) != rawLen {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, uint8(c))
	}
}
