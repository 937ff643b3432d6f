package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Number is the set of element types the generators produce.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

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
		rand: rand.New(rand.NewSource(seed)),
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Gaussian returns n values from a standard normal distribution.
func (r *RNG) Gaussian(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.NormFloat64()
	}
	return out
}

// FillUniform fills dst with values in [0, 1) for float types and in
// [0, 100) for integer types.
// Locks only once per call.
func FillUniform[T Number](r *RNG, dst []T) {
	half := 0.5
	if T(half) != 0 {
		FillUniformRange(r, dst, 0, 1)
		return
	}
	FillUniformRange(r, dst, 0, 100)
}

// FillUniformRange fills dst with values in [minVal, maxVal), converted to T
// by truncation.
func FillUniformRange[T Number](r *RNG, dst []T, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	for i := range dst {
		dst[i] = T(minVal + r.rand.Float64()*span)
	}
}

// Uniform returns n values generated by FillUniform.
func Uniform[T Number](r *RNG, n int) []T {
	out := make([]T, n)
	FillUniform(r, out)
	return out
}

// UniformRange returns n values generated by FillUniformRange.
func UniformRange[T Number](r *RNG, n int, minVal, maxVal float64) []T {
	out := make([]T, n)
	FillUniformRange(r, out, minVal, maxVal)
	return out
}

// Zipf returns n Zipfian-distributed values in [0, k).
// Uses Zipf's law: P(i) ∝ 1/i^s where s is the skew parameter. Small k and
// large s produce many repeated values, which exercises tie-breaking.
func Zipf[T Number](r *RNG, n, k int, s float64) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, n)
	for i := range out {
		out[i] = T(r.zipfLocked(k, s))
	}
	return out
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}
