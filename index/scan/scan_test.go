package scan

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dbscango/distance"
	"github.com/hupe1980/dbscango/index"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s, err := New[index.Coordinate]()
		require.NoError(t, err)

		assert.Equal(t, distance.MetricEuclidean, s.Metric())
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, s.Dimension())
	})

	t.Run("WithMetric", func(t *testing.T) {
		s, err := New[index.Coordinate](func(o *Options) {
			o.Metric = distance.MetricCosine
		})
		require.NoError(t, err)

		assert.Equal(t, distance.MetricCosine, s.Metric())
	})

	t.Run("UnsupportedMetric", func(t *testing.T) {
		_, err := New[index.Coordinate](func(o *Options) {
			o.Metric = distance.Metric(99)
		})
		require.Error(t, err)
	})
}

func TestInsert(t *testing.T) {
	t.Run("SequentialIDs", func(t *testing.T) {
		s, err := New[index.Coordinate]()
		require.NoError(t, err)

		for i := range 3 {
			rec, err := s.Insert(index.Coordinate{float32(i), 0})
			require.NoError(t, err)
			assert.Equal(t, uint32(i), rec.ID())
		}

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 2, s.Dimension())
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		s, err := New[index.Coordinate]()
		require.NoError(t, err)

		_, err = s.Insert(index.Coordinate{1, 2, 3})
		require.NoError(t, err)

		_, err = s.Insert(index.Coordinate{1, 2})
		var dimErr *index.ErrDimensionMismatch
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 3, dimErr.Expected)
		assert.Equal(t, 2, dimErr.Actual)
	})

	t.Run("EmptyCoordinates", func(t *testing.T) {
		s, err := New[index.Coordinate]()
		require.NoError(t, err)

		_, err = s.Insert(index.Coordinate{})
		assert.ErrorIs(t, err, index.ErrEmptyCoordinates)
	})

	t.Run("ZeroPointWithCosine", func(t *testing.T) {
		s, err := New[index.Coordinate](func(o *Options) {
			o.Metric = distance.MetricCosine
		})
		require.NoError(t, err)

		_, err = s.Insert(index.Coordinate{0, 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zero point")
	})
}

func TestFromPoints(t *testing.T) {
	t.Run("KeepsOrder", func(t *testing.T) {
		items := []index.Coordinate{{0, 0}, {1, 0}, {2, 0}}

		s, err := FromPoints(items)
		require.NoError(t, err)

		records := s.All()
		require.Len(t, records, 3)
		for i, rec := range records {
			assert.Equal(t, uint32(i), rec.ID())
			assert.Equal(t, items[i], rec.Item())
		}
	})

	t.Run("PropagatesInsertError", func(t *testing.T) {
		_, err := FromPoints([]index.Coordinate{{0, 0}, {1, 2, 3}})

		var dimErr *index.ErrDimensionMismatch
		assert.True(t, errors.As(err, &dimErr))
	})
}

func TestNeighbors(t *testing.T) {
	s, err := FromPoints([]index.Coordinate{
		{0, 0}, // 0
		{1, 0}, // 1: exactly epsilon away from 0
		{0, 1}, // 2
		{2, 2}, // 3: out of reach
		{1, 1}, // 4
	})
	require.NoError(t, err)

	records := s.All()

	neighborIDs := func(p *index.Record[index.Coordinate], epsilon float32) []uint32 {
		var ids []uint32
		for _, n := range s.Neighbors(p, epsilon) {
			ids = append(ids, n.ID())
		}
		return ids
	}

	t.Run("InsertionOrderAndBoundary", func(t *testing.T) {
		// Distance exactly epsilon counts as a neighbor.
		assert.Equal(t, []uint32{0, 1, 2}, neighborIDs(records[0], 1))
	})

	t.Run("SelfInclusion", func(t *testing.T) {
		for _, rec := range records {
			ids := neighborIDs(rec, 0)
			assert.Contains(t, ids, rec.ID())
		}
	})

	t.Run("ZeroEpsilon", func(t *testing.T) {
		assert.Equal(t, []uint32{3}, neighborIDs(records[3], 0))
	})

	t.Run("NegativeEpsilon", func(t *testing.T) {
		assert.Empty(t, s.Neighbors(records[0], -1))
	})

	t.Run("NaNEpsilon", func(t *testing.T) {
		assert.Empty(t, s.Neighbors(records[0], float32(math.NaN())))
	})

	t.Run("LargeEpsilonFindsAll", func(t *testing.T) {
		assert.Len(t, s.Neighbors(records[0], 100), 5)
	})
}

func TestNeighborsCoincidentPoints(t *testing.T) {
	s, err := FromPoints([]index.Coordinate{{1, 1}, {1, 1}, {5, 5}})
	require.NoError(t, err)

	neighbors := s.Neighbors(s.All()[0], 0)
	require.Len(t, neighbors, 2)
	assert.Equal(t, uint32(0), neighbors[0].ID())
	assert.Equal(t, uint32(1), neighbors[1].ID())
}

func TestNeighborsCosine(t *testing.T) {
	s, err := FromPoints([]index.Coordinate{
		{1, 0},    // 0
		{5, 0},    // 1: same direction as 0, different magnitude
		{0, 1},    // 2: orthogonal
		{-1, 0.1}, // 3: nearly opposite
	}, func(o *Options) {
		o.Metric = distance.MetricCosine
	})
	require.NoError(t, err)

	neighbors := s.Neighbors(s.All()[0], 0.01)
	require.Len(t, neighbors, 2)
	assert.Equal(t, uint32(0), neighbors[0].ID())
	assert.Equal(t, uint32(1), neighbors[1].ID())
}
