package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedInts(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SortedInts(100, 300)

	require.Len(t, v, 100)
	assert.True(t, slices.IsSorted(v))
	assert.Len(t, slices.Compact(slices.Clone(v)), 100)
	assert.GreaterOrEqual(t, v[0], 0)
	assert.Less(t, v[99], 300)

	assert.Panics(t, func() { rng.SortedInts(10, 5) })
}

func TestWithDuplicates(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.WithDuplicates(200, 10)

	require.Len(t, v, 200)
	assert.True(t, slices.IsSorted(v))
	assert.LessOrEqual(t, len(slices.Compact(slices.Clone(v))), 10)
}

func TestSortedUint64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SortedUint64s(1000, 8)

	require.Len(t, v, 1000)
	assert.Equal(t, uint64(0), v[0])
	for i := 1; i < len(v); i++ {
		gap := v[i] - v[i-1]
		assert.GreaterOrEqual(t, gap, uint64(1))
		assert.LessOrEqual(t, gap, uint64(8))
	}
}

func TestQueries(t *testing.T) {
	rng := NewRNG(4711)
	seq := rng.SortedUint64s(100, 4)

	hits := rng.Queries(seq, 50, 1)
	for _, q := range hits {
		_, ok := slices.BinarySearch(seq, q)
		assert.True(t, ok)
	}

	assert.Len(t, rng.Queries(nil, 5, 0.5), 5)
}

func TestUint64n(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		assert.Less(t, rng.Uint64n(7), uint64(7))
		assert.Less(t, rng.Uint64n(8), uint64(8))
	}
	assert.Panics(t, func() { rng.Uint64n(0) })
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	counts := make([]int, 10)
	for range 1000 {
		counts[rng.Zipf(10, 1.5)]++
	}
	assert.Greater(t, counts[0], counts[9])
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Ascending(3))
	assert.Equal(t, []int{0, 2, 4}, Evens(3))
	assert.Empty(t, Ascending(0))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.SortedInts(10, 100)

	rng.Reset()
	v2 := rng.SortedInts(10, 100)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
