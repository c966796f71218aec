package round

import (
	"cmp"
	"context"
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, seq ints, target, workers int, p Policy) Outcome {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := Run(ctx, Config[int, int]{
		Seq:     seq,
		Target:  target,
		Compare: cmp.Compare[int],
		Workers: workers,
		Policy:  p,
	})
	require.NoError(t, err, "%s: n=%d target=%d workers=%d", p.Name(), len(seq), target, workers)
	return out
}

func TestRun_EquivalentToBinarySearch(t *testing.T) {
	for _, p := range policies {
		t.Run(p.Name(), func(t *testing.T) {
			for _, workers := range []int{1, 2, 3, 4, 8} {
				for n := 0; n <= 40; n++ {
					seq := evens(n)
					for target := -2; target <= 2*n+1; target++ {
						out := run(t, seq, target, workers, p)
						_, found := slices.BinarySearch(seq, target)
						if !found {
							assert.Equal(t, NotFound, out.Index, "n=%d target=%d workers=%d", n, target, workers)
							continue
						}
						if assert.NotEqual(t, NotFound, out.Index, "n=%d target=%d workers=%d", n, target, workers) {
							assert.Equal(t, target, seq[out.Index])
						}
					}
				}
			}
		})
	}
}

func TestRun_Boundaries(t *testing.T) {
	seq := evens(100)
	last := len(seq) - 1

	for _, p := range policies {
		for _, workers := range []int{1, 2, 4, 8} {
			assert.Equal(t, 0, run(t, seq, seq[0], workers, p).Index, "%s first", p.Name())
			assert.Equal(t, last, run(t, seq, seq[last], workers, p).Index, "%s last", p.Name())
			assert.Equal(t, NotFound, run(t, seq, seq[0]-1, workers, p).Index, "%s below", p.Name())
			assert.Equal(t, NotFound, run(t, seq, seq[last]+1, workers, p).Index, "%s above", p.Name())
		}
	}
}

func TestRun_LeftLookingFirstAndLastSegment(t *testing.T) {
	// Every value in the first and the last segment of the first round must be found.
	seq := ascending(64)
	for _, workers := range []int{1, 2, 4, 8} {
		seg := SegmentSize(0, len(seq)-1, workers)
		for v := 0; v < seg; v++ {
			assert.Equal(t, v, run(t, seq, v, workers, LeftLooking{}).Index, "workers=%d v=%d", workers, v)
		}
		for v := seg*workers - 1; v < len(seq); v++ {
			assert.Equal(t, v, run(t, seq, v, workers, LeftLooking{}).Index, "workers=%d v=%d", workers, v)
		}
	}
}

func TestRun_DegenerateSizes(t *testing.T) {
	for _, p := range policies {
		t.Run(p.Name(), func(t *testing.T) {
			// len == 1
			assert.Equal(t, 0, run(t, ints{7}, 7, 4, p).Index)
			assert.Equal(t, NotFound, run(t, ints{7}, 6, 4, p).Index)
			assert.Equal(t, NotFound, run(t, ints{7}, 8, 4, p).Index)

			// len < P and len == P
			for _, n := range []int{3, 8} {
				seq := evens(n)
				for i, v := range seq {
					assert.Equal(t, i, run(t, seq, v, 8, p).Index)
					assert.Equal(t, NotFound, run(t, seq, v+1, 8, p).Index)
				}
			}

			// P == 1 behaves like binary search.
			seq := evens(257)
			for i, v := range seq {
				assert.Equal(t, i, run(t, seq, v, 1, p).Index)
			}
		})
	}
}

func TestRun_Duplicates(t *testing.T) {
	seq := ints{1, 1, 1, 2, 2, 3, 3, 3, 3, 3, 5, 5, 8}
	for _, p := range policies {
		for _, workers := range []int{1, 2, 4, 8} {
			for _, v := range []int{1, 2, 3, 5, 8} {
				out := run(t, seq, v, workers, p)
				if assert.NotEqual(t, NotFound, out.Index) {
					assert.Equal(t, v, seq[out.Index])
				}
			}
			assert.Equal(t, NotFound, run(t, seq, 4, workers, p).Index)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	seq := evens(1000)
	for _, p := range policies {
		first := run(t, seq, 1234, 4, p)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, run(t, seq, 1234, 4, p))
		}
	}
}

func TestRun_RoundBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, p := range policies {
		for _, workers := range []int{1, 2, 4, 8} {
			for _, n := range []int{1, 2, 7, 15, 16, 100, 1000, 4097, 100000} {
				seq := evens(n)
				bound := int(math.Ceil(math.Log(float64(n+1))/math.Log(float64(workers+1)))) + 2
				for q := 0; q < 20; q++ {
					target := rng.Intn(2*n + 2)
					out := run(t, seq, target, workers, p)
					assert.LessOrEqual(t, out.Rounds, bound, "%s n=%d workers=%d target=%d", p.Name(), n, workers, target)
				}
			}
		}
	}
}

func TestRun_Trace(t *testing.T) {
	seq := ascending(15)

	var traces []Trace
	out, err := Run(context.Background(), Config[int, int]{
		Seq:     seq,
		Target:  8,
		Compare: cmp.Compare[int],
		Workers: 2,
		Policy:  RightLooking{},
		Tracer:  func(tr Trace) { traces = append(traces, tr) },
	})
	require.NoError(t, err)

	assert.Equal(t, 8, out.Index)
	assert.Equal(t, 2, out.Rounds)
	require.Len(t, traces, 2)

	first := traces[0]
	assert.Equal(t, 1, first.Round)
	assert.Equal(t, []int{5, 10}, first.Probes)
	assert.Equal(t, 5, seq[first.Probes[0]])
	assert.Equal(t, 10, seq[first.Probes[1]])
	assert.Equal(t, []Direction{Right, Left}, first.Flags)
	assert.Equal(t, 6, first.NextLow)
	assert.Equal(t, 9, first.NextHigh)
	assert.LessOrEqual(t, first.NextHigh, 10)
	assert.Equal(t, NotFound, first.Match)

	second := traces[1]
	assert.Equal(t, 6, second.Low)
	assert.Equal(t, 9, second.High)
	assert.Equal(t, 8, second.NextLow)
	assert.Equal(t, 8, second.NextHigh)
	assert.Equal(t, 8, second.Match)
}

func TestRun_AbsentCollapsesToInsertionSlot(t *testing.T) {
	seq := evens(15)
	lb, _ := slices.BinarySearch(seq, 7)
	require.Equal(t, 4, lb)

	for _, p := range []Policy{RightLooking{}, LeftLooking{}} {
		for _, workers := range []int{1, 2, 4, 8} {
			out := run(t, seq, 7, workers, p)
			assert.Equal(t, NotFound, out.Index)
			assert.LessOrEqual(t, out.High-out.Low, 0, "%s workers=%d", p.Name(), workers)
			if out.Low > out.High {
				assert.Equal(t, lb, out.Low)
			} else {
				assert.Contains(t, []int{lb - 1, lb}, out.Low)
			}
		}
	}

	out := run(t, seq, 7, 2, RightLooking{})
	assert.Equal(t, 3, out.Low)
	assert.Equal(t, 3, out.High)

	// The sweep policy stops with up to P slots that still bracket the insertion point.
	for _, workers := range []int{1, 2, 4, 8} {
		out := run(t, seq, 7, workers, RightLookingSweep{})
		assert.Equal(t, NotFound, out.Index)
		assert.LessOrEqual(t, out.Low, lb)
		assert.GreaterOrEqual(t, out.High+1, lb)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Run(ctx, Config[int, int]{
		Seq:     ascending(100),
		Target:  42,
		Compare: cmp.Compare[int],
		Workers: 4,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, NotFound, out.Index)
}

func TestRun_CancelledMidSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, err := Run(ctx, Config[int, int]{
		Seq:     ascending(1 << 20),
		Target:  -1,
		Compare: cmp.Compare[int],
		Workers: 1,
		Tracer: func(tr Trace) {
			if tr.Round == 2 {
				cancel()
			}
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, NotFound, out.Index)
	assert.Equal(t, 3, out.Rounds)
}

func TestRun_EmptyAndInvalid(t *testing.T) {
	out, err := Run(context.Background(), Config[int, int]{
		Seq:     ints{},
		Target:  1,
		Compare: cmp.Compare[int],
		Workers: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, NotFound, out.Index)
	assert.Equal(t, 0, out.Rounds)

	_, err = Run(context.Background(), Config[int, int]{
		Seq:     ints{1},
		Target:  1,
		Compare: cmp.Compare[int],
		Workers: 0,
	})
	assert.ErrorIs(t, err, ErrNoWorkers)
}
