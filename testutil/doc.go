// Package testutil provides testing utilities for dbscango.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating point sets with known cluster
// structure.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 2)          // uniform in [0, 1)^2
//	blob := rng.BlobPoints(100, []float32{5, 5}, 0.1)
//
// # Deterministic Shapes
//
//	grid := testutil.GridPoints(3, 3, 1)          // 3x3 unit grid
//	ring := testutil.RingPoints(64, 0, 0, 10)
//
// # Adapters
//
//	items := testutil.Coordinates(points)
package testutil
