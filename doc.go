// Package parsearch provides multi-way parallel search over sorted sequences.
//
// A search is carried out by P worker goroutines in lockstep rounds. Each round
// splits the current interval into P+1 segments, every worker compares the target
// with the element at its own split point, and the interval shrinks to the one
// segment whose boundary flags change direction. A search over n elements needs
// about log(n)/log(P+1) rounds instead of the log2(n) steps of binary search.
//
// # Quick Start
//
//	idx, ok := parsearch.Search([]int{1, 3, 5, 7, 9}, 7, 4)  // 3, true
//
// With a reusable Searcher:
//
//	s, _ := parsearch.New[int](parsearch.WithWorkers(8))
//	res, err := s.SearchSlice(ctx, sorted, 42)
//	if err != nil {
//	    return err // context cancelled
//	}
//	fmt.Println(res.Index, res.Found, res.Rounds)
//
// Custom orderings use NewFunc:
//
//	s, _ := parsearch.NewFunc(func(a, b Event) int { return a.At.Compare(b.At) })
//
// # Variants
//
//   - RightLooking: each worker compares its flag with its right neighbour's.
//     Rounds run until one candidate remains, which is then checked.
//   - LeftLooking: each worker compares its flag with its left neighbour's.
//     Rounds stop as soon as a probe matches or the interval becomes empty.
//   - RightLookingSweep: right-looking rounds until at most P slots remain,
//     then one parallel sweep checks them all.
//
// # Sequences
//
// Anything with Len and At can be searched. Slice adapts a []E and Bitmap exposes
// a roaring bitmap as the sorted list of its members.
//
// # Concurrency
//
// A Searcher is safe for concurrent use. SearchBatch runs several searches at
// once; WithMaxConcurrentWorkers and WithRateLimit bound the goroutines and the
// search rate across everything issued through one Searcher.
//
// # Observability
//
//	metrics := &parsearch.BasicMetricsCollector{}
//	s, _ := parsearch.New[int](
//	    parsearch.WithLogger(parsearch.NewJSONLogger(slog.LevelDebug)),
//	    parsearch.WithMetricsCollector(metrics),
//	    parsearch.WithTracer(func(t parsearch.Trace) { fmt.Println(t.Round, t.Low, t.High) }),
//	)
package parsearch
