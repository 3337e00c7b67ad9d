// Package chunk implements the flat word storage behind a bit array.
//
// Layout:
//   - 32-bit words, bits packed MSB-first within each word
//   - words ordered from the first bit to the last
//   - padding bits past the logical length are kept zero by callers
//
// The helpers here operate on whole words where possible (shifts, xor, copy)
// and fall back to sub-word masking at the edges.
package chunk
