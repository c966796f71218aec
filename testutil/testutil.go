package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint64n returns a pseudo-random uint64 in [0,n). It panics if n == 0.
func (r *RNG) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("testutil: Uint64n called with n == 0")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n&(n-1) == 0 {
		return r.rand.Uint64() & (n - 1)
	}
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := r.rand.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// SortedInts returns n distinct values drawn from [0, maxVal) in ascending order.
// It panics if n > maxVal.
func (r *RNG) SortedInts(n, maxVal int) []int {
	if n > maxVal {
		panic("testutil: SortedInts needs n <= maxVal")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.rand.Perm(maxVal)[:n]
	slices.Sort(out)
	return out
}

// WithDuplicates returns n ascending values from [0, distinct), so most values
// repeat when n is larger than distinct.
func (r *RNG) WithDuplicates(n, distinct int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(distinct)
	}
	slices.Sort(out)
	return out
}

// SortedUint64s returns n strictly ascending values with random gaps of at most
// maxGap starting at zero. A maxGap below 1 is treated as 1.
func (r *RNG) SortedUint64s(n int, maxGap uint64) []uint64 {
	maxGap = max(maxGap, 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	var v uint64
	for i := range out {
		if i > 0 {
			v += 1 + r.rand.Uint64()%maxGap
		}
		out[i] = v
	}
	return out
}

// Queries picks count targets for seq. With probability hitRate a target is an
// element of seq, otherwise it is drawn uniformly from [0, seq[len-1]+2).
func (r *RNG) Queries(seq []uint64, count int, hitRate float64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, count)
	if len(seq) == 0 {
		return out
	}
	span := int64(seq[len(seq)-1]) + 2
	for i := range out {
		if r.rand.Float64() < hitRate {
			out[i] = seq[r.rand.Intn(len(seq))]
		} else {
			out[i] = uint64(r.rand.Int63n(span))
		}
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// Ascending returns 0, 1, ..., n-1.
func Ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Evens returns 0, 2, ..., 2(n-1).
func Evens(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 2 * i
	}
	return out
}
