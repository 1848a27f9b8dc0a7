package slotlist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called from inside list operations and must be cheap and
// non-blocking.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, err error)

	// RecordGet is called after each logical lookup. fast reports whether
	// the O(1) sorted path was taken.
	RecordGet(fast bool, err error)

	// RecordGrow is called after the storage has been enlarged.
	RecordGrow(oldCapacity, newCapacity int)

	// RecordCompact is called after each compaction.
	RecordCompact(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)  {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)  {}
func (NoopMetricsCollector) RecordGet(bool, error)              {}
func (NoopMetricsCollector) RecordGrow(int, int)                {}
func (NoopMetricsCollector) RecordCompact(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	RemoveCount       atomic.Int64
	RemoveErrors      atomic.Int64
	RemoveTotalNanos  atomic.Int64
	GetFastCount      atomic.Int64
	GetSlowCount      atomic.Int64
	GetErrors         atomic.Int64
	GrowCount         atomic.Int64
	LastCapacity      atomic.Int64
	CompactCount      atomic.Int64
	CompactErrors     atomic.Int64
	CompactTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(fast bool, err error) {
	if err != nil {
		b.GetErrors.Add(1)
		return
	}
	if fast {
		b.GetFastCount.Add(1)
	} else {
		b.GetSlowCount.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, newCapacity int) {
	b.GrowCount.Add(1)
	b.LastCapacity.Store(int64(newCapacity))
}

// RecordCompact implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompact(duration time.Duration, err error) {
	b.CompactCount.Add(1)
	b.CompactTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompactErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		RemoveCount:     b.RemoveCount.Load(),
		RemoveErrors:    b.RemoveErrors.Load(),
		RemoveAvgNanos:  avgNanos(b.RemoveTotalNanos.Load(), b.RemoveCount.Load()),
		GetFastCount:    b.GetFastCount.Load(),
		GetSlowCount:    b.GetSlowCount.Load(),
		GetErrors:       b.GetErrors.Load(),
		GrowCount:       b.GrowCount.Load(),
		LastCapacity:    b.LastCapacity.Load(),
		CompactCount:    b.CompactCount.Load(),
		CompactErrors:   b.CompactErrors.Load(),
		CompactAvgNanos: avgNanos(b.CompactTotalNanos.Load(), b.CompactCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	RemoveCount     int64
	RemoveErrors    int64
	RemoveAvgNanos  int64
	GetFastCount    int64
	GetSlowCount    int64
	GetErrors       int64
	GrowCount       int64
	LastCapacity    int64
	CompactCount    int64
	CompactErrors   int64
	CompactAvgNanos int64
}
