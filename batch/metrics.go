package batch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting batch metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordItem is called after each item of a batch.
	// err is nil if the item succeeded.
	RecordItem(op string, duration time.Duration, err error)

	// RecordBatch is called after each batch.
	// count is the number of items attempted, failed is the number that failed,
	// duration is the total time taken.
	RecordBatch(op string, count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordItem(string, time.Duration, error)     {}
func (NoopMetricsCollector) RecordBatch(string, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ItemCount       atomic.Int64
	ItemErrors      atomic.Int64
	ItemTotalNanos  atomic.Int64
	BatchCount      atomic.Int64
	BatchItems      atomic.Int64
	BatchFailed     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordItem implements MetricsCollector.
func (b *BasicMetricsCollector) RecordItem(_ string, duration time.Duration, err error) {
	b.ItemCount.Add(1)
	b.ItemTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ItemErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ string, count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ItemCount:     b.ItemCount.Load(),
		ItemErrors:    b.ItemErrors.Load(),
		ItemAvgNanos:  avg(b.ItemTotalNanos.Load(), b.ItemCount.Load()),
		BatchCount:    b.BatchCount.Load(),
		BatchItems:    b.BatchItems.Load(),
		BatchFailed:   b.BatchFailed.Load(),
		BatchAvgNanos: avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ItemCount     int64
	ItemErrors    int64
	ItemAvgNanos  int64
	BatchCount    int64
	BatchItems    int64
	BatchFailed   int64
	BatchAvgNanos int64
}
