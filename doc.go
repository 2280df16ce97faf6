// Package dbscango provides DBSCAN density-based clustering for Go.
//
// DBSCAN groups points that are packed closely together and marks points
// in low-density regions as noise. Two parameters control it: epsilon, the
// neighborhood radius, and minPoints, the smallest neighborhood that makes
// a point a core point. There is no cluster count to choose up front, and
// outliers are reported as noise instead of being forced into the nearest
// cluster.
//
// # Quick Start
//
// Cluster anything that can report a position:
//
//	type City struct {
//	    Name string
//	    Pos  []float32
//	}
//
//	func (c City) Coordinates() []float32 { return c.Pos }
//
//	ctx := context.Background()
//	clusterer, _ := dbscango.New[City](200, 3)
//	result, _ := clusterer.ClusterPoints(ctx, cities)
//
//	for _, cluster := range result.Clusters {
//	    fmt.Println(len(cluster))
//	}
//	fmt.Println("noise:", len(result.Noise))
//
// Raw coordinates work without a wrapper type:
//
//	items := []index.Coordinate{{0, 0}, {0, 1}, {9, 9}}
//	result, _ := clusterer.ClusterPoints(ctx, items)
//
// # Neighborhood Counting
//
// The shipped indexes report a queried point as its own neighbor (its
// distance to itself is zero), so minPoints counts the point itself:
// minPoints = 4 means "3 other points plus itself".
//
// # Indexes
//
// ClusterPoints answers every neighborhood query with an exact linear
// scan, which costs O(N^2) distance computations per run. For larger 2D
// inputs, build a KD-tree index once and cluster through it:
//
//	idx, _ := kdtree.New(cities)
//	result, _ := clusterer.ClusterIndex(ctx, idx)
//
// Any type satisfying index.Index can serve; see the index package for
// the contract a custom implementation must honor.
//
// # Results
//
// Every input item lands in exactly one cluster or in Noise. Cluster
// members are listed in discovery order, seed first. A point too sparse to
// seed a cluster can still join one as a border point when an expansion
// reaches it; noise is only what no cluster ever claimed. Given the same
// input order and a deterministic index, runs are fully deterministic.
//
// # Key Features
//
//   - Generic over the caller's item type
//   - Pluggable spatial indexes (exact scan, KD-tree)
//   - Euclidean and cosine metrics
//   - Structured logging (slog) and pluggable metrics
package dbscango
