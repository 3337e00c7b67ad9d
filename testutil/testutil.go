package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitarray"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// BitString returns n random '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, n)
	for i := range out {
		out[i] = '0' + byte(r.rand.Intn(2))
	}
	return string(out)
}

// HexString returns n random uppercase hexadecimal digits.
func (r *RNG) HexString(n int) string {
	const digits = "0123456789ABCDEF"
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, n)
	for i := range out {
		out[i] = digits[r.rand.Intn(len(digits))]
	}
	return string(out)
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, n)
	_, _ = r.rand.Read(out)
	return out
}

// BitArray returns a random array of count bits.
func (r *RNG) BitArray(count int) *bitarray.BitArray {
	return bitarray.Must(bitarray.FromBitString(r.BitString(count)))
}

// BitArrays returns num random arrays with counts drawn from [0, maxCount].
func (r *RNG) BitArrays(num, maxCount int) []*bitarray.BitArray {
	out := make([]*bitarray.BitArray, num)
	for i := range out {
		out[i] = r.BitArray(r.Intn(maxCount + 1))
	}
	return out
}

// Indices returns n random 0-based indices into an array of count bits.
// Indices may repeat.
func (r *RNG) Indices(n, count int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(count)
	}
	return out
}
