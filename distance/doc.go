// Package distance provides the distance metrics for neighborhood queries.
//
// An index fixes one metric at construction time; all of its neighborhood
// queries use that metric, and epsilon radii are interpreted in its units.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance (default)
//   - MetricCosine: cosine distance (1 - cosine similarity)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	fn, err := distance.Provider(distance.MetricEuclidean)
//	threshold := distance.Threshold(distance.MetricEuclidean, epsilon)
//
// Provider returns the comparison form of a metric: for Euclidean that is
// the squared distance, to be compared against Threshold(m, epsilon) rather
// than raw epsilon.
package distance
