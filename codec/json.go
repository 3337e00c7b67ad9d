package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// A *bitarray.BitArray encodes as its bit string ("0101"). Other values go
// through encoding/json unchanged, so structs holding bit arrays work too.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
