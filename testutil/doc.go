// Package testutil provides testing utilities for parsearch.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating sorted sequences and query workloads.
//
// # Sorted Sequences
//
//	rng := testutil.NewRNG(seed)
//	seq := rng.SortedInts(1000, 5000)     // distinct values
//	dup := rng.WithDuplicates(1000, 50)   // heavy repetition
//	big := rng.SortedUint64s(1<<20, 16)   // strictly ascending, random gaps
//
// # Query Workloads
//
//	targets := rng.Queries(big, 10000, 0.5)  // about half present
//	hot := rng.Zipf(len(seq), 1.5)           // skewed position
package testutil
