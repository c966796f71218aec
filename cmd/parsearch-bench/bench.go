package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hupe1980/parsearch"
	"github.com/hupe1980/parsearch/baseline"
)

// algorithm answers a query with the index of target or parsearch.NotFound.
type algorithm struct {
	name   string
	search func(ctx context.Context, target uint64) (int, error)
}

type benchConfig struct {
	workers  int
	variants []parsearch.Variant
	metrics  parsearch.MetricsCollector
	logger   *parsearch.Logger
}

// newAlgorithms returns the reference binary search first, followed by lower
// bound, one parallel searcher per variant and the sharded baseline.
func newAlgorithms(values []uint64, cfg benchConfig) ([]algorithm, error) {
	algos := []algorithm{
		{
			name: "binary search",
			search: func(_ context.Context, target uint64) (int, error) {
				idx, _ := baseline.BinarySearch(values, target)
				return idx, nil
			},
		},
		{
			name: "lower bound",
			search: func(_ context.Context, target uint64) (int, error) {
				idx := baseline.LowerBound(values, target)
				if idx < len(values) && values[idx] == target {
					return idx, nil
				}
				return parsearch.NotFound, nil
			},
		},
	}

	seq := parsearch.Slice[uint64](values)
	for _, v := range cfg.variants {
		s, err := parsearch.New[uint64](
			parsearch.WithWorkers(cfg.workers),
			parsearch.WithVariant(v),
			parsearch.WithMetricsCollector(cfg.metrics),
			parsearch.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, err
		}
		algos = append(algos, algorithm{
			name: v.String(),
			search: func(ctx context.Context, target uint64) (int, error) {
				res, err := s.Search(ctx, seq, target)
				return res.Index, err
			},
		})
	}

	algos = append(algos, algorithm{
		name: "sharded",
		search: func(ctx context.Context, target uint64) (int, error) {
			idx, _, err := baseline.Sharded(ctx, values, target, cfg.workers)
			return idx, err
		},
	})

	return algos, nil
}

// bench runs every algorithm on each query and keeps running timings.
type bench struct {
	values  []uint64
	algos   []algorithm
	totals  []time.Duration
	queries int
	table   *tabwriter.Writer
}

func newBench(values []uint64, algos []algorithm, out io.Writer, verbose bool) *bench {
	b := &bench{
		values: values,
		algos:  algos,
		totals: make([]time.Duration, len(algos)),
	}
	if verbose {
		b.table = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(b.table, "query\ttarget\tname\tindex\tseconds\trunning average")
	}
	return b
}

// query answers target with every algorithm and fails on the first answer that
// disagrees with binary search.
func (b *bench) query(ctx context.Context, target uint64) error {
	b.queries++

	want := parsearch.NotFound
	for i, a := range b.algos {
		start := time.Now()
		idx, err := a.search(ctx, target)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("%s: %w", a.name, err)
		}

		b.totals[i] += elapsed
		if b.table != nil {
			avg := b.totals[i] / time.Duration(b.queries)
			fmt.Fprintf(b.table, "%d\t%d\t%s\t%d\t%.9f\t%.9f\n",
				b.queries, target, a.name, idx, elapsed.Seconds(), avg.Seconds())
		}

		if i == 0 {
			want = idx
			continue
		}
		if !b.agrees(idx, want, target) {
			return fmt.Errorf("query %d (target %d): %s returned %d, binary search returned %d",
				b.queries, target, a.name, idx, want)
		}
	}
	return nil
}

// agrees treats any position holding target as a match, since duplicates may be
// found at different positions.
func (b *bench) agrees(idx, want int, target uint64) bool {
	if want == parsearch.NotFound {
		return idx == parsearch.NotFound
	}
	return idx >= 0 && idx < len(b.values) && b.values[idx] == target
}

// summary writes the average time per algorithm.
func (b *bench) summary(w io.Writer) error {
	if b.table != nil {
		if err := b.table.Flush(); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tqueries\taverage seconds")
	for i, a := range b.algos {
		avg := time.Duration(0)
		if b.queries > 0 {
			avg = b.totals[i] / time.Duration(b.queries)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.9f\n", a.name, b.queries, avg.Seconds())
	}
	return tw.Flush()
}
