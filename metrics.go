package parsearch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each search.
	// rounds is the number of synchronised rounds, err is nil if successful.
	RecordSearch(rounds int, found bool, duration time.Duration, err error)

	// RecordBatch is called after each batch search.
	// count is the number of targets, found the number that were present.
	RecordBatch(count, found int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchFound      atomic.Int64
	SearchRounds     atomic.Int64
	SearchTotalNanos atomic.Int64
	BatchCount       atomic.Int64
	BatchItems       atomic.Int64
	BatchFound       atomic.Int64
	BatchTotalNanos  atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(rounds int, found bool, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchRounds.Add(int64(rounds))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
	if found {
		b.SearchFound.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, found int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFound.Add(int64(found))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	SearchCount     int64
	SearchErrors    int64
	SearchFound     int64
	SearchAvgNanos  int64
	SearchAvgRounds float64
	BatchCount      int64
	BatchItems      int64
	BatchFound      int64
	BatchAvgNanos   int64
}

// GetStats returns the current statistics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		SearchCount:  b.SearchCount.Load(),
		SearchErrors: b.SearchErrors.Load(),
		SearchFound:  b.SearchFound.Load(),
		BatchCount:   b.BatchCount.Load(),
		BatchItems:   b.BatchItems.Load(),
		BatchFound:   b.BatchFound.Load(),
	}

	if stats.SearchCount > 0 {
		stats.SearchAvgNanos = b.SearchTotalNanos.Load() / stats.SearchCount
		stats.SearchAvgRounds = float64(b.SearchRounds.Load()) / float64(stats.SearchCount)
	}
	if stats.BatchCount > 0 {
		stats.BatchAvgNanos = b.BatchTotalNanos.Load() / stats.BatchCount
	}

	return stats
}
