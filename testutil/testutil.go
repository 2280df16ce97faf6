package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/dbscango/index"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	points := make([][]float32, num)

	for i := 0; i < num; i++ {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float32()
		}
		points[i] = p
	}

	return points
}

// BlobPoints generates points Gaussian-scattered around a center. Useful
// for building inputs with known cluster structure.
func (r *RNG) BlobPoints(num int, center []float32, spread float32) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	dimensions := len(center)
	data := make([]float32, num*dimensions)
	points := make([][]float32, num)

	for i := 0; i < num; i++ {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = center[j] + float32(r.rand.NormFloat64())*spread
		}
		points[i] = p
	}

	return points
}

// GridPoints generates rows*cols points on a regular 2D grid, row-major.
func GridPoints(rows, cols int, spacing float32) [][]float32 {
	points := make([][]float32, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			points = append(points, []float32{float32(x) * spacing, float32(y) * spacing})
		}
	}

	return points
}

// RingPoints generates num points evenly spaced on a 2D circle.
func RingPoints(num int, cx, cy, radius float32) [][]float32 {
	points := make([][]float32, num)
	for i := 0; i < num; i++ {
		angle := 2 * math.Pi * float64(i) / float64(num)
		points[i] = []float32{
			cx + radius*float32(math.Cos(angle)),
			cy + radius*float32(math.Sin(angle)),
		}
	}

	return points
}

// Coordinates converts raw points to index.Coordinate items.
func Coordinates(points [][]float32) []index.Coordinate {
	items := make([]index.Coordinate, len(points))
	for i, p := range points {
		items[i] = index.Coordinate(p)
	}

	return items
}
