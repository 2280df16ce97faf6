package dbscango

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
//	    runCounter   prometheus.Counter
//	    runHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(points, clusters, noise int, duration time.Duration, err error) {
//	    p.runCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// points is the input size, clusters and noise describe the resulting
	// partition, duration is the total time taken, err is nil if successful.
	RecordRun(points, clusters, noise int, duration time.Duration, err error)

	// RecordNeighborQueries is called after each clustering run with the
	// number of neighborhood queries answered by the index during it.
	RecordNeighborQueries(queries int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordNeighborQueries(int)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	PointsSeen      atomic.Int64
	ClustersFound   atomic.Int64
	NoisePoints     atomic.Int64
	NeighborQueries atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, clusters, noise int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}

	b.PointsSeen.Add(int64(points))
	b.ClustersFound.Add(int64(clusters))
	b.NoisePoints.Add(int64(noise))
}

// RecordNeighborQueries implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNeighborQueries(queries int) {
	b.NeighborQueries.Add(int64(queries))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		PointsSeen:      b.PointsSeen.Load(),
		ClustersFound:   b.ClustersFound.Load(),
		NoisePoints:     b.NoisePoints.Load(),
		NeighborQueries: b.NeighborQueries.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunAvgNanos     int64
	PointsSeen      int64
	ClustersFound   int64
	NoisePoints     int64
	NeighborQueries int64
}
