// Package codec encodes bit arrays for storage and transport.
//
// JSON and GoJSON render an array as its bit string, CBOR wraps the
// BitArray binary encoding in a byte string, and Binary writes a versioned,
// checksummed frame whose payload may be LZ4 or ZSTD compressed.
//
// Codec names are stable: ByName resolves the name a producer recorded back
// to the codec that can read its output.
package codec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitarray"
)

var (
	// ErrCorrupt is returned when encoded data fails validation.
	ErrCorrupt = errors.New("codec: corrupt data")

	// ErrUnknownCodec is returned for names ByName does not know.
	ErrUnknownCodec = errors.New("codec: unknown codec")

	// ErrUnsupportedType is returned when a codec is handed a value it cannot
	// encode or decode into.
	ErrUnsupportedType = errors.New("codec: unsupported type")
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSON{}, nil
	case "go-json":
		return GoJSON{}, nil
	case "cbor":
		return CBOR{}, nil
	case "binary":
		return NewBinary(), nil
	case "binary+lz4":
		return NewBinary(WithCompression(CompressionLZ4)), nil
	case "binary+zstd":
		return NewBinary(WithCompression(CompressionZSTD)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// Default is the default codec used by the library.
var Default Codec = NewBinary()

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

func bitArrayOf(v any) (*bitarray.BitArray, error) {
	b, ok := v.(*bitarray.BitArray)
	if !ok || b == nil {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return b, nil
}
