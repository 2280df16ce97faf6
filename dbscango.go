package dbscango

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/dbscango/distance"
	"github.com/hupe1980/dbscango/index"
	"github.com/hupe1980/dbscango/index/scan"
	"github.com/hupe1980/dbscango/internal/visited"
)

// Point is the capability a caller's item type must provide. See index.Point.
type Point = index.Point

// Cluster is one group of density-connected items, in discovery order: the
// seed point first, followed by the members in the order the expansion
// reached them.
type Cluster[T Point] []T

// Result is the partition produced by a clustering run. Every input item
// appears exactly once, either in one cluster or in Noise.
type Result[T Point] struct {
	// Clusters in seed-processing order.
	Clusters []Cluster[T]

	// Noise holds the items no cluster claimed, in index order.
	Noise []T
}

// Clusterer runs DBSCAN density-based clustering over a spatial index.
// It is immutable after construction and safe to reuse across runs, but
// two concurrent runs must not share one index: classifications live in
// the index's records.
type Clusterer[T Point] struct {
	epsilon   float32
	minPoints int
	metric    distance.Metric
	metrics   MetricsCollector
	logger    *Logger
}

// New creates a Clusterer.
//
// epsilon is the neighborhood radius, interpreted in the units of the
// index's distance metric. minPoints is the smallest neighborhood size
// that makes a point a core point; the shipped indexes report a point as
// its own neighbor, so minPoints = 4 means "3 other points plus itself".
func New[T Point](epsilon float32, minPoints int, optFns ...Option) (*Clusterer[T], error) {
	opts := applyOptions(optFns)

	if minPoints < 1 {
		return nil, &ErrInvalidMinPoints{MinPoints: minPoints}
	}

	eps64 := float64(epsilon)
	if epsilon < 0 || math.IsNaN(eps64) || math.IsInf(eps64, 0) {
		return nil, &ErrInvalidEpsilon{Epsilon: epsilon}
	}

	if _, err := distance.Provider(opts.metric); err != nil {
		return nil, err
	}

	return &Clusterer[T]{
		epsilon:   epsilon,
		minPoints: minPoints,
		metric:    opts.metric,
		metrics:   opts.metricsCollector,
		logger:    opts.logger.WithEpsilon(epsilon).WithMinPoints(minPoints),
	}, nil
}

// Epsilon returns the neighborhood radius.
func (c *Clusterer[T]) Epsilon() float32 { return c.epsilon }

// MinPoints returns the minimum neighborhood size of a core point.
func (c *Clusterer[T]) MinPoints() int { return c.minPoints }

// ClusterPoints builds the exact scan index over items and clusters them.
// The index metric is set by WithMetric (Euclidean by default).
//
// Every neighborhood query scans all points, so a run costs O(N^2) distance
// computations. For large 2D inputs build a KD-tree index and use
// ClusterIndex instead.
func (c *Clusterer[T]) ClusterPoints(ctx context.Context, items []T) (*Result[T], error) {
	idx, err := scan.FromPoints(items, func(o *scan.Options) {
		o.Metric = c.metric
	})

	c.logger.LogIndexBuild(ctx, len(items), err)
	if err != nil {
		return nil, fmt.Errorf("dbscango: failed to build scan index: %w", err)
	}

	return c.ClusterIndex(ctx, idx)
}

// ClusterIndex clusters the points held by a pre-built spatial index. Any
// index.Index implementation works. The call blocks until the whole
// partition is computed or ctx is done.
//
// Records are reset at the start of the run, so the same index can be
// clustered repeatedly; afterwards the caller can read per-record
// classifications from it.
func (c *Clusterer[T]) ClusterIndex(ctx context.Context, idx index.Index[T]) (*Result[T], error) {
	start := time.Now()

	if idx == nil {
		c.metrics.RecordRun(0, 0, 0, time.Since(start), ErrNilIndex)
		c.logger.LogRun(ctx, 0, 0, 0, ErrNilIndex)
		return nil, ErrNilIndex
	}

	records := idx.All()
	result, queries, err := c.run(ctx, idx, records)
	duration := time.Since(start)

	c.metrics.RecordNeighborQueries(queries)

	if err != nil {
		c.metrics.RecordRun(len(records), 0, 0, duration, err)
		c.logger.LogRun(ctx, len(records), 0, 0, err)
		return nil, err
	}

	c.metrics.RecordRun(len(records), len(result.Clusters), len(result.Noise), duration, nil)
	c.logger.LogRun(ctx, len(records), len(result.Clusters), len(result.Noise), nil)

	return result, nil
}

// run sweeps every record once. Records whose neighborhood is too small
// are marked noise; every other unresolved record seeds a cluster that is
// grown to completion before the sweep moves on. Seed order is index
// order, which makes runs deterministic for a deterministic index.
func (c *Clusterer[T]) run(ctx context.Context, idx index.Index[T], records []*index.Record[T]) (*Result[T], int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	// A caller-held index may still carry classifications from a
	// previous run.
	for _, rec := range records {
		rec.Reset()
	}

	result := &Result[T]{}
	queries := 0
	enqueued := visited.New(len(records))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, queries, err
		}

		if rec.Classification() != index.Unknown {
			continue
		}

		neighbors := idx.Neighbors(rec, c.epsilon)
		queries++

		if len(neighbors) < c.minPoints {
			rec.SetClassification(index.Noise)
			continue
		}

		cluster, n, err := c.expand(ctx, idx, rec, neighbors, enqueued)
		queries += n
		if err != nil {
			return nil, queries, err
		}

		result.Clusters = append(result.Clusters, cluster)
	}

	// Assemble noise from a fresh fetch. For a consistent index this is
	// the same slice that was swept and no record can still be Unknown;
	// an index that answered inconsistently within the run surfaces here
	// instead of silently breaking the partition.
	for _, rec := range idx.All() {
		switch rec.Classification() {
		case index.Noise:
			result.Noise = append(result.Noise, rec.Item())
		case index.Unknown:
			return nil, queries, &ErrUnclassifiedPoint{ID: rec.ID()}
		}
	}

	return result, queries, nil
}

// expand grows one cluster from a core seed, breadth-first. Neighborhoods
// are processed in FIFO order; each newly found core point appends its own
// neighborhood to the frontier. Records that an earlier cluster already
// resolved to Core or Border are discarded at dequeue time. Noise records
// are not discarded: the sweep may have marked a record noise before any
// cluster reached it, and it joins this cluster as a border point.
func (c *Clusterer[T]) expand(ctx context.Context, idx index.Index[T], seed *index.Record[T], neighbors []*index.Record[T], enqueued *visited.Set) (Cluster[T], int, error) {
	seed.SetClassification(index.Core)
	cluster := Cluster[T]{seed.Item()}
	queries := 0

	// Re-enqueueing a record could never change the outcome: whichever
	// copy dequeued first would resolve it and the rest would be
	// discarded. Tracking enqueued ids keeps the frontier free of
	// duplicates without changing discovery order.
	enqueued.Reset()

	frontier := make([]*index.Record[T], 0, len(neighbors))
	for _, n := range neighbors {
		if enqueued.Add(n.ID()) {
			frontier = append(frontier, n)
		}
	}

	for head := 0; head < len(frontier); head++ {
		if err := ctx.Err(); err != nil {
			return nil, queries, err
		}

		rec := frontier[head]

		if cls := rec.Classification(); cls == index.Core || cls == index.Border {
			continue
		}

		recNeighbors := idx.Neighbors(rec, c.epsilon)
		queries++

		if len(recNeighbors) >= c.minPoints {
			rec.SetClassification(index.Core)
			for _, n := range recNeighbors {
				if enqueued.Add(n.ID()) {
					frontier = append(frontier, n)
				}
			}
		} else {
			rec.SetClassification(index.Border)
		}

		cluster = append(cluster, rec.Item())
	}

	return cluster, queries, nil
}
