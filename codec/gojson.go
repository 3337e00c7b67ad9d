package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/bitarray"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// A *bitarray.BitArray is written as a quoted bit string, the same text
// MarshalText produces, so GoJSON and JSON output are interchangeable.
// Bit strings never need escaping and are appended directly; every other
// value, including structs that hold bit arrays, goes through go-json.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (c GoJSON) Marshal(v any) ([]byte, error) { return c.Append(nil, v) }

// Unmarshal decodes the JSON data into v. Bit arrays are read back through
// UnmarshalText, so a string with characters other than '0' and '1' fails.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Append encodes the value to JSON and appends it to dst.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	if b, ok := v.(*bitarray.BitArray); ok && b != nil {
		dst = append(dst, '"')
		for bit := range b.Iterate().Seq() {
			dst = append(dst, '0'+byte(bit)) //nolint:gosec // bits are 0 or 1
		}
		return append(dst, '"'), nil
	}

	data, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, data...), nil
}
