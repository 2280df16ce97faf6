package dbscango_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/dbscango"
	"github.com/hupe1980/dbscango/distance"
	"github.com/hupe1980/dbscango/index"
	"github.com/hupe1980/dbscango/index/kdtree"
)

// Example_clusterPoints demonstrates clustering raw coordinates with the
// built-in scan index.
func Example_clusterPoints() {
	ctx := context.Background()

	clusterer, err := dbscango.New[index.Coordinate](1.0, 3)
	if err != nil {
		log.Fatal(err)
	}

	items := []index.Coordinate{
		{0, 0}, {0, 1}, {1, 0}, // dense corner
		{10, 10}, {10, 11}, {11, 10}, // dense corner, far away
		{100, 100}, // all alone
	}

	result, err := clusterer.ClusterPoints(ctx, items)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("clusters=%d noise=%d\n", len(result.Clusters), len(result.Noise))
	// Output: clusters=2 noise=1
}

// city shows the minimal surface a caller type needs: Coordinates.
type city struct {
	name string
	pos  []float32
}

func (c city) Coordinates() []float32 { return c.pos }

// Example_customType demonstrates clustering a caller-defined type.
func Example_customType() {
	ctx := context.Background()

	cities := []city{
		{"Berlin", []float32{52.52, 13.40}},
		{"Potsdam", []float32{52.40, 13.07}},
		{"Leipzig", []float32{51.34, 12.37}},
		{"Munich", []float32{48.14, 11.58}},
	}

	clusterer, err := dbscango.New[city](1.5, 2)
	if err != nil {
		log.Fatal(err)
	}

	result, err := clusterer.ClusterPoints(ctx, cities)
	if err != nil {
		log.Fatal(err)
	}

	for _, cluster := range result.Clusters {
		names := make([]string, len(cluster))
		for i, c := range cluster {
			names[i] = c.name
		}
		fmt.Println("cluster:", strings.Join(names, ", "))
	}
	for _, c := range result.Noise {
		fmt.Println("noise:", c.name)
	}
	// Output:
	// cluster: Berlin, Potsdam, Leipzig
	// noise: Munich
}

// Example_kdtree demonstrates clustering through a pre-built KD-tree index.
func Example_kdtree() {
	ctx := context.Background()

	clusterer, err := dbscango.New[index.Coordinate](1.5, 4)
	if err != nil {
		log.Fatal(err)
	}

	var items []index.Coordinate
	for y := range 3 {
		for x := range 3 {
			items = append(items, index.Coordinate{float32(x), float32(y)})
		}
	}

	idx, err := kdtree.New(items)
	if err != nil {
		log.Fatal(err)
	}

	result, err := clusterer.ClusterIndex(ctx, idx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("clusters=%d members=%d noise=%d\n",
		len(result.Clusters), len(result.Clusters[0]), len(result.Noise))
	// Output: clusters=1 members=9 noise=0
}

// Example_cosineMetric demonstrates clustering by direction instead of
// position.
func Example_cosineMetric() {
	ctx := context.Background()

	clusterer, err := dbscango.New[index.Coordinate](0.01, 2,
		dbscango.WithMetric(distance.MetricCosine),
	)
	if err != nil {
		log.Fatal(err)
	}

	items := []index.Coordinate{
		{1, 0}, {2, 0.01}, // near-identical direction
		{0, 1}, {0, 5}, // orthogonal to the first pair
	}

	result, err := clusterer.ClusterPoints(ctx, items)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("clusters=%d noise=%d\n", len(result.Clusters), len(result.Noise))
	// Output: clusters=2 noise=0
}

// Example_metrics demonstrates collecting run statistics.
func Example_metrics() {
	ctx := context.Background()

	metrics := &dbscango.BasicMetricsCollector{}

	clusterer, err := dbscango.New[index.Coordinate](1.0, 2,
		dbscango.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := clusterer.ClusterPoints(ctx, []index.Coordinate{{0, 0}, {0.5, 0}, {5, 5}}); err != nil {
		log.Fatal(err)
	}

	stats := metrics.GetStats()
	fmt.Printf("runs=%d points=%d queries=%d\n", stats.RunCount, stats.PointsSeen, stats.NeighborQueries)
	// Output: runs=1 points=3 queries=3
}
