// Package baseline holds the sequential and independently sharded searches the
// parallel searcher is measured and checked against.
package baseline

import (
	"cmp"
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// NotFound is returned as the index of an absent target.
const NotFound = -1

// BinarySearch looks for target in the ascending slice s using an upper-biased
// midpoint. With duplicates it reports the last matching position.
func BinarySearch[E cmp.Ordered](s []E, target E) (int, bool) {
	return BinarySearchFunc(s, target, cmp.Compare[E])
}

// BinarySearchFunc is BinarySearch with a custom comparison.
func BinarySearchFunc[E, T any](s []E, target T, compare func(E, T) int) (int, bool) {
	if len(s) == 0 {
		return NotFound, false
	}
	return search(s, 0, len(s)-1, target, compare)
}

func search[E, T any](s []E, l, r int, target T, compare func(E, T) int) (int, bool) {
	for l < r {
		m := l + (r-l)/2 + 1
		if compare(s[m], target) <= 0 {
			l = m
		} else {
			r = m - 1
		}
	}
	if compare(s[l], target) != 0 {
		return NotFound, false
	}
	return l, true
}

// LowerBound returns the first position whose element is not less than target,
// or len(s) if there is none.
func LowerBound[E cmp.Ordered](s []E, target E) int {
	return LowerBoundFunc(s, target, cmp.Compare[E])
}

// LowerBoundFunc is LowerBound with a custom comparison.
func LowerBoundFunc[E, T any](s []E, target T, compare func(E, T) int) int {
	return sort.Search(len(s), func(i int) bool { return compare(s[i], target) >= 0 })
}

// Sharded splits s into workers equal shards, the last one taking the remainder,
// and binary searches every shard on its own goroutine. When s is no longer than
// workers, each worker checks a single slot. The lowest shard with a match wins.
func Sharded[E cmp.Ordered](ctx context.Context, s []E, target E, workers int) (int, bool, error) {
	return ShardedFunc(ctx, s, target, workers, cmp.Compare[E])
}

// ShardedFunc is Sharded with a custom comparison.
func ShardedFunc[E, T any](ctx context.Context, s []E, target T, workers int, compare func(E, T) int) (int, bool, error) {
	if workers < 1 {
		workers = 1
	}
	n := len(s)
	if n == 0 {
		return NotFound, false, ctx.Err()
	}

	shards := min(workers, n)
	found := make([]int, shards)

	g, gctx := errgroup.WithContext(ctx)
	for id := range shards {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, r := shardBounds(n, shards, id)
			found[id], _ = search(s, l, r, target, compare)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NotFound, false, err
	}

	for _, idx := range found {
		if idx != NotFound {
			return idx, true, nil
		}
	}
	return NotFound, false, nil
}

// shardBounds returns the inclusive range of shard id out of shards over n elements.
func shardBounds(n, shards, id int) (int, int) {
	size := n / shards
	if id == shards-1 {
		return size * id, n - 1
	}
	return size * id, size*(id+1) - 1
}
