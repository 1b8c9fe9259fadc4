package statlearn

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each tree construction.
	// count is the number of points, duration the time taken.
	RecordBuild(count int, duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	// k is the number of neighbors requested (1 for nearest-neighbor search),
	// visited is the number of tree nodes entered.
	RecordSearch(k, visited int, duration time.Duration, err error)

	// RecordTrain is called after each training run.
	// err is nil only if training converged.
	RecordTrain(epochs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTrain(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildPoints      atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchVisited    atomic.Int64
	SearchTotalNanos atomic.Int64
	TrainCount       atomic.Int64
	TrainFailures    atomic.Int64
	TrainEpochs      atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPoints.Add(int64(count))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k, visited int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchVisited.Add(int64(visited))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(epochs int, duration time.Duration, err error) {
	b.TrainCount.Add(1)
	b.TrainEpochs.Add(int64(epochs))
	if err != nil {
		b.TrainFailures.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		BuildPoints:      b.BuildPoints.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchAvgVisited: b.avg(b.SearchVisited.Load(), b.SearchCount.Load()),
		SearchAvgNanos:   b.avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		TrainCount:       b.TrainCount.Load(),
		TrainFailures:    b.TrainFailures.Load(),
		TrainEpochs:      b.TrainEpochs.Load(),
	}
}

func (b *BasicMetricsCollector) avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildErrors      int64
	BuildPoints      int64
	SearchCount      int64
	SearchErrors     int64
	SearchAvgVisited int64
	SearchAvgNanos   int64
	TrainCount       int64
	TrainFailures    int64
	TrainEpochs      int64
}
