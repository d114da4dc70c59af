package bcf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    projectionCounter   prometheus.Counter
//	    projectionHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordProjection(duration time.Duration, err error) {
//	    p.projectionCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordProjection is called after each record projection.
	// duration is the total time taken, err is nil if successful.
	RecordProjection(duration time.Duration, err error)

	// RecordBatch is called after each batch projection.
	// count is the number of records attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordProjection(time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ProjectionCount      atomic.Int64
	ProjectionErrors     atomic.Int64
	ProjectionTotalNanos atomic.Int64
	BatchCount           atomic.Int64
	BatchRecords         atomic.Int64
	BatchFailed          atomic.Int64
	BatchTotalNanos      atomic.Int64
}

// RecordProjection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProjection(duration time.Duration, err error) {
	b.ProjectionCount.Add(1)
	b.ProjectionTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ProjectionErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchRecords.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// AverageProjectionDuration returns the mean projection time, or zero
// when nothing has been recorded.
func (b *BasicMetricsCollector) AverageProjectionDuration() time.Duration {
	n := b.ProjectionCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(b.ProjectionTotalNanos.Load() / n)
}
