// Package distance provides the distance metrics used for neighborhood
// queries. An index fixes one metric at construction; epsilon radii are
// interpreted in that metric's units.
package distance

import (
	"fmt"
	"math"
)

// Metric represents a distance metric.
type Metric int

const (
	// MetricEuclidean compares points by Euclidean (L2) distance.
	MetricEuclidean Metric = iota

	// MetricCosine compares points by cosine distance (1 - cosine similarity).
	MetricCosine
)

// String returns a human-readable representation of the metric.
func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation. Implementations assume
// a and b have the same length; the caller is responsible for that.
type Func func(a, b []float32) float32

// Dot calculates the dot product of two vectors.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared Euclidean distance between two vectors.
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Euclidean calculates the Euclidean distance between two vectors.
// Neighborhood queries compare SquaredL2 against a squared threshold
// instead, skipping the square root; see Threshold.
func Euclidean(a, b []float32) float32 {
	return float32(math.Sqrt(float64(SquaredL2(a, b))))
}

// Cosine calculates the cosine distance (1 - cosine similarity) between two
// vectors. A zero vector has no direction, so its distance to anything is 1.
func Cosine(a, b []float32) float32 {
	dot := Dot(a, b)

	na := Dot(a, a)
	nb := Dot(b, b)
	if na == 0 || nb == 0 {
		return 1
	}

	return 1 - dot/float32(math.Sqrt(float64(na)*float64(nb)))
}

// Provider returns the comparison function for the given metric. For
// MetricEuclidean the returned function computes squared distances; compare
// its results against Threshold(m, epsilon), never against raw epsilon.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return SquaredL2, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported distance metric: %v", m)
	}
}

// Threshold converts an epsilon radius into the value comparable against
// results of the Provider function for the given metric.
func Threshold(m Metric, epsilon float32) float32 {
	if m == MetricEuclidean {
		return epsilon * epsilon
	}

	return epsilon
}
