package hash

import (
	"errors"
	"fmt"
	"hash/crc32"
)

// ErrChecksum is returned when a payload does not match its recorded CRC32C.
var ErrChecksum = errors.New("checksum mismatch")

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C returns the CRC32-Castagnoli checksum of an uncompressed bit-array
// payload, the Bytes() form with zero padding in the final byte. Binary
// frames store it so that corruption is caught after decompression.
func CRC32C(payload []byte) uint32 {
	return crc32.Checksum(payload, castagnoli)
}

// VerifyCRC32C checks payload against the checksum read from a frame header.
func VerifyCRC32C(payload []byte, want uint32) error {
	if got := CRC32C(payload); got != want {
		return fmt.Errorf("%w: got %08x, want %08x", ErrChecksum, got, want)
	}
	return nil
}
