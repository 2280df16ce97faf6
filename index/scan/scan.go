// Package scan provides the reference spatial index: an exact linear scan
// over all stored points.
package scan

import (
	"fmt"

	"github.com/hupe1980/dbscango/distance"
	"github.com/hupe1980/dbscango/index"
)

// Compile-time check to ensure Scan satisfies the index interface.
var _ index.Index[index.Coordinate] = (*Scan[index.Coordinate])(nil)

// Options contains configuration options for the scan index.
type Options struct {
	// Metric is the distance metric fixed for this index. All neighborhood
	// queries use it, and epsilon radii are interpreted in its units.
	Metric distance.Metric
}

// DefaultOptions contains the default configuration options for the scan index.
var DefaultOptions = Options{
	Metric: distance.MetricEuclidean,
}

// Scan is a linear-scan spatial index: every neighborhood query computes
// the distance from the query point to each stored record, O(N) per query.
// Records keep insertion order, which is the sweep order the clustering
// engine sees. It works for any dimensionality and always returns exact
// results.
type Scan[T index.Point] struct {
	opts      Options
	distFunc  distance.Func
	dimension int
	records   []*index.Record[T]
}

// New creates an empty scan index.
func New[T index.Point](optFns ...func(o *Options)) (*Scan[T], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	distFunc, err := distance.Provider(opts.Metric)
	if err != nil {
		return nil, err
	}

	return &Scan[T]{
		opts:     opts,
		distFunc: distFunc,
	}, nil
}

// FromPoints creates a scan index holding the given items, in order.
func FromPoints[T index.Point](items []T, optFns ...func(o *Options)) (*Scan[T], error) {
	s, err := New[T](optFns...)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, err := s.Insert(item); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Insert appends an item to the index and returns its record. The first
// inserted item fixes the index's dimensionality.
func (s *Scan[T]) Insert(item T) (*index.Record[T], error) {
	rec := index.NewRecord(uint32(len(s.records)), item)

	coords := rec.Coordinates()
	if len(coords) == 0 {
		return nil, index.ErrEmptyCoordinates
	}

	if s.dimension == 0 {
		s.dimension = len(coords)
	} else if len(coords) != s.dimension {
		return nil, &index.ErrDimensionMismatch{Expected: s.dimension, Actual: len(coords)}
	}

	if s.opts.Metric == distance.MetricCosine && isZero(coords) {
		return nil, fmt.Errorf("scan: zero point not usable with cosine metric")
	}

	s.records = append(s.records, rec)

	return rec, nil
}

// Len returns the number of stored records.
func (s *Scan[T]) Len() int { return len(s.records) }

// Dimension returns the fixed dimensionality, or 0 before the first insert.
func (s *Scan[T]) Dimension() int { return s.dimension }

// Metric returns the distance metric fixed at construction.
func (s *Scan[T]) Metric() distance.Metric { return s.opts.Metric }

// All returns the records in insertion order. The slice is shared with the
// index; callers must not modify it.
func (s *Scan[T]) All() []*index.Record[T] { return s.records }

// Neighbors returns every record within epsilon of p, in insertion order.
// The query record itself is always among them: its distance is zero.
func (s *Scan[T]) Neighbors(p *index.Record[T], epsilon float32) []*index.Record[T] {
	if epsilon < 0 {
		// No distance is negative. A NaN epsilon falls out of the
		// threshold comparison below the same way.
		return nil
	}

	threshold := distance.Threshold(s.opts.Metric, epsilon)
	coords := p.Coordinates()

	var neighbors []*index.Record[T]
	for _, rec := range s.records {
		if s.distFunc(coords, rec.Coordinates()) <= threshold {
			neighbors = append(neighbors, rec)
		}
	}

	return neighbors
}

func isZero(coords []float32) bool {
	for _, c := range coords {
		if c != 0 {
			return false
		}
	}
	return true
}
