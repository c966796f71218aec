package baseline

import (
	"context"
	"slices"
	"testing"

	"github.com/hupe1980/parsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBinarySearch(t *testing.T) {
	rng := testutil.NewRNG(11)

	for n := 0; n < 60; n++ {
		seq := rng.SortedInts(n, 3*n+1)
		for target := -1; target <= 3*n+1; target++ {
			want, ok := slices.BinarySearch(seq, target)

			idx, found := BinarySearch(seq, target)
			require.Equal(t, ok, found, "n=%d v=%d", n, target)
			if ok {
				assert.Equal(t, want, idx)
			} else {
				assert.Equal(t, NotFound, idx)
			}
		}
	}
}

func TestBinarySearch_LastOfDuplicates(t *testing.T) {
	seq := []int{1, 2, 2, 2, 3}

	idx, ok := BinarySearch(seq, 2)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestLowerBound(t *testing.T) {
	seq := testutil.Evens(15)

	tests := []struct {
		target int
		want   int
	}{
		{-1, 0},
		{0, 0},
		{7, 4},
		{8, 4},
		{28, 14},
		{29, 15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LowerBound(seq, tt.target), "target=%d", tt.target)
	}
}

func TestLowerBoundFunc(t *testing.T) {
	type rec struct{ key int }
	seq := []rec{{1}, {4}, {9}}

	idx := LowerBoundFunc(seq, 5, func(r rec, k int) int { return r.key - k })
	assert.Equal(t, 2, idx)
}

func TestSharded(t *testing.T) {
	rng := testutil.NewRNG(12)

	for _, workers := range []int{1, 2, 3, 8, 64} {
		for _, n := range []int{0, 1, 5, 8, 100} {
			seq := rng.SortedInts(n, 2*n+1)
			for target := -1; target <= 2*n+1; target++ {
				want, ok := slices.BinarySearch(seq, target)

				idx, found, err := Sharded(context.Background(), seq, target, workers)
				require.NoError(t, err)
				require.Equal(t, ok, found, "workers=%d n=%d v=%d", workers, n, target)
				if ok {
					assert.Equal(t, want, idx)
				}
			}
		}
	}
}

func TestSharded_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found, err := Sharded(ctx, testutil.Ascending(100), 42, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
}

func TestShardBounds(t *testing.T) {
	covered := make([]int, 10)
	for id := range 3 {
		l, r := shardBounds(10, 3, id)
		for i := l; i <= r; i++ {
			covered[i]++
		}
	}
	for i, c := range covered {
		assert.Equal(t, 1, c, "slot %d", i)
	}

	l, r := shardBounds(10, 3, 2)
	assert.Equal(t, 6, l)
	assert.Equal(t, 9, r)
}
