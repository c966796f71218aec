// Package resource governs the goroutines and admission rate of searches.
//
// Every search runs P worker goroutines for its whole duration. When many searches
// share one Searcher, the Controller bounds the total number of workers alive at
// once and paces how quickly new searches start.
//
//	┌──────────────────────────────────────────────┐
//	│                 Controller                   │
//	├──────────────────────┬───────────────────────┤
//	│  Worker budget       │  Admission limiter    │
//	│  (weighted sem)      │  (token bucket)       │
//	├──────────────────────┼───────────────────────┤
//	│  AcquireWorkers      │  AcquireSearch        │
//	│  TryAcquireWorkers   │  TryAcquireSearch     │
//	│  ReleaseWorkers      │                       │
//	└──────────────────────┴───────────────────────┘
//
// A search asks for all of its P slots at once. A request larger than the budget is
// clamped to the budget, so such a search waits until it can run alone.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource
