// Package kdtree provides a KD-tree-backed spatial index for 2D points.
package kdtree

import (
	"math"

	"github.com/MadAppGang/kdbush"

	"github.com/hupe1980/dbscango/index"
)

// Compile-time check to ensure KDTree satisfies the index interface.
var _ index.Index[index.Coordinate] = (*KDTree[index.Coordinate])(nil)

// Options contains configuration options for the KD-tree index.
type Options struct {
	// NodeSize is the KD-tree leaf size. Higher means faster index
	// construction but slower queries, and vice versa.
	NodeSize int
}

// DefaultOptions contains the default configuration options for the KD-tree index.
var DefaultOptions = Options{
	NodeSize: 64,
}

// KDTree is a static spatial index over 2D points. The tree is built once
// at construction; neighborhood queries run in O(sqrt(N)+K) instead of the
// scan index's O(N). Its metric is always Euclidean, computed in float64.
type KDTree[T index.Point] struct {
	bush    *kdbush.KDBush
	records []*index.Record[T]
}

// New builds a KD-tree index over the given items. Every item must report
// exactly two coordinates.
func New[T index.Point](items []T, optFns ...func(o *Options)) (*KDTree[T], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	records := make([]*index.Record[T], len(items))
	points := make([]kdbush.Point, len(items))

	for i, item := range items {
		rec := index.NewRecord(uint32(i), item)

		coords := rec.Coordinates()
		if len(coords) == 0 {
			return nil, index.ErrEmptyCoordinates
		}
		if len(coords) != 2 {
			return nil, &index.ErrDimensionMismatch{Expected: 2, Actual: len(coords)}
		}

		records[i] = rec
		points[i] = &kdbush.SimplePoint{X: float64(coords[0]), Y: float64(coords[1])}
	}

	t := &KDTree[T]{records: records}
	if len(points) > 0 {
		t.bush = kdbush.NewBush(points, opts.NodeSize)
	}

	return t, nil
}

// Len returns the number of stored records.
func (t *KDTree[T]) Len() int { return len(t.records) }

// All returns the records in insertion order. The slice is shared with the
// index; callers must not modify it.
func (t *KDTree[T]) All() []*index.Record[T] { return t.records }

// Neighbors returns every record within epsilon of p, including p itself.
// Result order follows tree layout, not insertion order.
func (t *KDTree[T]) Neighbors(p *index.Record[T], epsilon float32) []*index.Record[T] {
	if t.bush == nil || epsilon < 0 || math.IsNaN(float64(epsilon)) {
		return nil
	}

	coords := p.Coordinates()
	ids := t.bush.Within(&kdbush.SimplePoint{X: float64(coords[0]), Y: float64(coords[1])}, float64(epsilon))

	neighbors := make([]*index.Record[T], len(ids))
	for i, id := range ids {
		neighbors[i] = t.records[id]
	}

	return neighbors
}
