// Package index defines the spatial index contract the clustering engine
// runs against, and the point record type shared between them.
//
// # Point Records
//
// Indexes wrap each caller item in a Record, which carries the item, its
// coordinates, and its mutable clustering state. Records are shared by
// reference: the engine mutates classifications in place during a run, and
// a caller holding the index can read the final states afterwards.
//
// # Index Implementations
//
// Two implementations ship with this module:
//
//   - scan: exact linear scan, any dimensionality, O(N) per query
//   - kdtree: KD-tree for 2D points, O(sqrt(N)+K) per query
//
// Both report a queried point as its own neighbor (its distance to itself
// is zero), so neighborhood sizes include the point itself. Custom
// implementations should preserve that convention, since minimum-points
// thresholds count it.
//
// # Writing a Custom Index
//
// An implementation must satisfy:
//
//	type Index[T Point] interface {
//	    All() []*Record[T]
//	    Neighbors(p *Record[T], epsilon float32) []*Record[T]
//	}
//
// Both methods must answer consistently for the duration of one clustering
// run: same records from All, same neighbor sets for the same arguments.
// Record ids must be unique within the index.
package index
