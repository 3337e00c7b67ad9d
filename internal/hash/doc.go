// Package hash provides the checksums and digests used around encoded bit
// arrays.
//
// # CRC32-Castagnoli (CRC32C)
//
// Binary codec frames carry a CRC32C of their uncompressed payload, checked
// with VerifyCRC32C after decompression. Go's hash/crc32 uses SSE4.2 / ARM
// CRC instructions when available.
//
//	checksum := hash.CRC32C(payload)
//
// # BLAKE3
//
// Content fingerprints use BLAKE3-256, which is collision resistant and fast
// enough to run over large arrays.
//
//	digest := hash.Sum256(encoded)
package hash
