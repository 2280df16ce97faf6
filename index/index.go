package index

import (
	"errors"
	"fmt"
)

// ErrEmptyCoordinates is returned when a point reports no coordinates.
var ErrEmptyCoordinates = errors.New("index: point has no coordinates")

// ErrDimensionMismatch is a named error type for dimension mismatch
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Point is the capability a caller's item type must provide: a position
// usable for distance computation. Nothing else is required of items.
type Point interface {
	// Coordinates returns the point's position. All points handed to one
	// index must share the same dimensionality. The returned slice is
	// retained by the index; callers must not mutate it afterwards.
	Coordinates() []float32
}

// Coordinate is a bare position that satisfies Point, so raw coordinate
// data can be clustered without defining a wrapper type.
type Coordinate []float32

// Coordinates implements Point.
func (c Coordinate) Coordinates() []float32 { return c }

// Classification is the clustering state of a point record.
type Classification uint8

const (
	// Unknown marks a record the engine has not resolved yet.
	Unknown Classification = iota

	// Noise marks a record whose neighborhood was too small when it was
	// swept and that no cluster expansion has claimed.
	Noise

	// Border marks a record claimed by a cluster even though its own
	// neighborhood is below the minimum.
	Border

	// Core marks a record whose neighborhood meets the minimum.
	Core
)

// String returns a human-readable representation of the classification.
func (c Classification) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Noise:
		return "Noise"
	case Border:
		return "Border"
	case Core:
		return "Core"
	default:
		return fmt.Sprintf("Classification(%d)", uint8(c))
	}
}

// Record wraps one caller item together with its mutable clustering state.
// Index implementations create records; the clustering engine resolves
// their classifications in place.
type Record[T Point] struct {
	id     uint32
	item   T
	coords []float32
	class  Classification
}

// NewRecord wraps item as a point record. The id must be unique within the
// index. Coordinates are derived from the item exactly once, so an
// expensive Coordinates implementation is not re-invoked on every
// neighborhood query.
func NewRecord[T Point](id uint32, item T) *Record[T] {
	return &Record[T]{
		id:     id,
		item:   item,
		coords: item.Coordinates(),
	}
}

// ID returns the index-assigned identifier of the record.
func (r *Record[T]) ID() uint32 { return r.id }

// Item returns the original caller value.
func (r *Record[T]) Item() T { return r.item }

// Coordinates returns the position derived from the item at record creation.
func (r *Record[T]) Coordinates() []float32 { return r.coords }

// Classification returns the record's current clustering state.
func (r *Record[T]) Classification() Classification { return r.class }

// SetClassification sets the record's clustering state.
func (r *Record[T]) SetClassification(c Classification) { r.class = c }

// Reset returns the record to Unknown. The engine resets every record at
// the start of a run, so a caller-held index can be clustered again.
func (r *Record[T]) Reset() { r.class = Unknown }

// Index answers proximity queries over a fixed collection of point
// records. Implementations never mutate records and know nothing about
// clustering semantics.
type Index[T Point] interface {
	// All returns the full collection of records. The order defines the
	// engine's sweep order and thereby all tie-breaks.
	All() []*Record[T]

	// Neighbors returns every record whose distance to p is at most
	// epsilon under the metric fixed by the index, including p itself.
	Neighbors(p *Record[T], epsilon float32) []*Record[T]
}
