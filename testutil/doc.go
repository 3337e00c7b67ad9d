// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(100)   // '0'/'1' characters
//	h := rng.HexString(16)    // uppercase hex digits
//	b := rng.BitArray(77)     // *bitarray.BitArray
//	idx := rng.Indices(64, b.Count())
package testutil
