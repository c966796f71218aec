package parsearch

import (
	"log/slog"
	"runtime"
)

type options struct {
	workers          int
	variant          Variant
	logger           *Logger
	metricsCollector MetricsCollector
	tracer           func(Trace)
	maxWorkers       int64
	searchesPerSec   float64
	searchBurst      int
	batchParallelism int
}

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		variant: RightLooking,
	}
}

// Option configures a Searcher.
type Option func(*options)

// WithWorkers sets the number of workers P that cooperate on every search.
//
// Each round splits the interval into P+1 segments, so a search takes about
// log(n)/log(P+1) rounds. Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithVariant selects the boundary convention. Defaults to RightLooking.
func WithVariant(v Variant) Option {
	return func(o *options) {
		o.variant = v
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := parsearch.NewJSONLogger(slog.LevelDebug)
//	s, _ := parsearch.New[int](parsearch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &parsearch.BasicMetricsCollector{}
//	s, _ := parsearch.New[int](parsearch.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg rounds: %.1f\n", stats.SearchCount, stats.SearchAvgRounds)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithTracer receives a snapshot of every round. The tracer runs on a worker
// goroutine and delays the search while it runs; keep it cheap.
func WithTracer(fn func(Trace)) Option {
	return func(o *options) {
		o.tracer = fn
	}
}

// WithMaxConcurrentWorkers bounds the total number of worker goroutines alive at
// once across all searches issued through the same Searcher. A search waits until
// all of its workers fit. If n <= 0, unlimited.
func WithMaxConcurrentWorkers(n int64) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithRateLimit paces how many searches start per second, allowing bursts of up to
// burst searches. If perSec <= 0, unlimited.
func WithRateLimit(perSec float64, burst int) Option {
	return func(o *options) {
		o.searchesPerSec = perSec
		o.searchBurst = burst
	}
}

// WithBatchParallelism sets how many searches of a SearchBatch call run at once.
// Defaults to GOMAXPROCS divided by the worker count, at least 1.
func WithBatchParallelism(n int) Option {
	return func(o *options) {
		o.batchParallelism = n
	}
}
