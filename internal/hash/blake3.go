package hash

import "github.com/zeebo/blake3"

// Sum256 returns the 256-bit BLAKE3 digest of data.
func Sum256(data []byte) [32]byte {
	return blake3.Sum256(data)
}
