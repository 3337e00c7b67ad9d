// Package bitarray provides a packed, fixed-length array of bits.
//
// Bits are stored MSB-first in 32-bit words. A BitArray supports indexed
// access, bulk mutation, rotation, whole and ranged shifts, XOR,
// permutation by index or 1-based bit number, lazy iteration, and exact
// conversion to and from bit strings, hexadecimal strings and bytes.
//
// # Quick Start
//
//	b, _ := bitarray.FromBitString("101101")
//	b.RotateLeft(1)            // 011011
//	fmt.Println(b.HexString()) // 6C
//
//	key := bitarray.FromBytes([]byte{0x13, 0x34})
//	sub, _ := key.PermuteByNumber([]int{2, 5, 6, 1, 3, 4})
//
// # Encodings
//
// All encodings read and write bit 0 first:
//
//	bit string   "1010"          one character per bit
//	hex string   "A"             four bits per digit, uppercase on output
//	bytes        []byte{0xA0}    eight bits per byte, right zero-padded
//	integers     IterateIntegers one int32 per 32-bit storage chunk
//
// FromBitString(b.BitString()) always reproduces b. FromHexString and
// FromBytes reproduce b when Count() is a multiple of 4 and 8 respectively.
//
// # Errors
//
// Precondition failures (out-of-range indices, nil operands, mismatched
// lengths, non-binary values) return an *ArgumentError wrapping
// ErrContractViolation. Validation always happens before any mutation, so a
// failed call leaves the receiver unchanged:
//
//	if err := b.Set(99, 1); errors.Is(err, bitarray.ErrContractViolation) {
//	    // b is untouched
//	}
//
// # Iteration
//
// Iterate, IterateBlocks and IterateIntegers return single-pass Iterators
// with an explicit Next/Current protocol. Seq bridges them to range-over-func:
//
//	for bit := range b.Iterate().Seq() {
//	    fmt.Print(bit)
//	}
//
// # Concurrency
//
// A BitArray owns its storage exclusively and is not synchronized. Callers
// sharing one across goroutines must serialize mutation.
//
// Sub-packages: codec encodes bit arrays (JSON, CBOR, a checksummed and
// optionally compressed binary frame); bitmap converts to and from Roaring
// bitmaps.
package bitarray
