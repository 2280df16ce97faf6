package dbscango

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIndex is returned when a nil index is passed to ClusterIndex.
	ErrNilIndex = errors.New("index must not be nil")
)

// ErrInvalidEpsilon indicates a neighborhood radius that cannot be used.
type ErrInvalidEpsilon struct {
	Epsilon float32
}

func (e *ErrInvalidEpsilon) Error() string {
	return fmt.Sprintf("invalid epsilon: %v (must be finite and >= 0)", e.Epsilon)
}

// ErrInvalidMinPoints indicates a minimum neighborhood size that cannot be
// used.
type ErrInvalidMinPoints struct {
	MinPoints int
}

func (e *ErrInvalidMinPoints) Error() string {
	return fmt.Sprintf("invalid minimum points: %d (must be >= 1)", e.MinPoints)
}

// ErrUnclassifiedPoint indicates a record left unresolved at the end of a
// run. A consistent index never produces it; it surfaces indexes whose All
// or Neighbors answers changed mid-run.
type ErrUnclassifiedPoint struct {
	ID uint32
}

func (e *ErrUnclassifiedPoint) Error() string {
	return fmt.Sprintf("point %d left unclassified after run (index answered inconsistently)", e.ID)
}
