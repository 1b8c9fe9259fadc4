package kdtree

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zibellina/statlearn/distance"
	"github.com/zibellina/statlearn/testutil"
)

func neighborDistances(ns []Neighbor) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = n.Distance
	}
	return out
}

func TestNearest(t *testing.T) {
	t.Run("Sample", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		// {7, 2} and {5, 4} are both sqrt(2) away. {5, 4} sits on the
		// near side of the root and is reached first, so it keeps the tie.
		nn, err := tree.Nearest(Point{6, 3})
		require.NoError(t, err)
		require.True(t, nn.Found())
		assert.Contains(t, []int{1, 5}, nn.ID)
		assert.Equal(t, samplePoints()[nn.ID], nn.Point)
		assert.Equal(t, 1, nn.ID)
		assert.InDelta(t, math.Sqrt2, nn.Distance, 1e-12)

		nn, err = tree.Nearest(Point{6, 2.5})
		require.NoError(t, err)
		assert.Equal(t, Point{7, 2}, nn.Point)
		assert.Equal(t, 5, nn.ID)
		assert.InDelta(t, math.Sqrt(1.25), nn.Distance, 1e-12)
	})

	t.Run("ExactMatch", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		for id, p := range samplePoints() {
			nn, err := tree.Nearest(p)
			require.NoError(t, err)
			assert.Equal(t, id, nn.ID)
			assert.Equal(t, 0.0, nn.Distance)
		}
	})

	t.Run("SinglePoint", func(t *testing.T) {
		tree, err := Build([]Point{{1, -2, 3}})
		require.NoError(t, err)

		q := Point{4, 0, 0}
		nn, err := tree.Nearest(q)
		require.NoError(t, err)
		assert.Equal(t, 0, nn.ID)
		assert.Equal(t, distance.Euclidean(q, []float64{1, -2, 3}), nn.Distance)
	})

	t.Run("EmptyTree", func(t *testing.T) {
		tree, err := Build(nil, func(o *BuildOptions) { o.Dimension = 2 })
		require.NoError(t, err)

		nn, err := tree.Nearest(Point{1, 2})
		require.NoError(t, err)
		assert.False(t, nn.Found())
		assert.Equal(t, -1, nn.ID)
		assert.True(t, math.IsInf(nn.Distance, 1))
		assert.Nil(t, nn.Point)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		nn, err := tree.Nearest(Point{1, 2, 3})
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
		assert.False(t, nn.Found())
	})

	t.Run("Filter", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		// Excluding {7, 2} makes {5, 4} the nearest (also sqrt(2) away).
		nn, err := tree.Nearest(Point{6, 3}, func(o *SearchOptions) {
			o.Filter = func(id int) bool { return id != 5 }
		})
		require.NoError(t, err)
		assert.Equal(t, 1, nn.ID)
		assert.InDelta(t, math.Sqrt2, nn.Distance, 1e-12)

		nn, err = tree.Nearest(Point{6, 3}, func(o *SearchOptions) {
			o.Filter = func(int) bool { return false }
		})
		require.NoError(t, err)
		assert.False(t, nn.Found())
	})

	t.Run("ResultIsACopy", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		nn, err := tree.Nearest(Point{6, 3})
		require.NoError(t, err)
		nn.Point[0] = -50

		again, err := tree.Nearest(Point{6, 3})
		require.NoError(t, err)
		assert.Equal(t, samplePoints()[again.ID], again.Point)
	})
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for dim := 1; dim <= 5; dim++ {
		for _, n := range []int{1, 2, 3, 17, 100, 500} {
			raw := rng.UniformPoints(n, dim)
			tree, err := Build(toPoints(raw))
			require.NoError(t, err)

			for _, q := range rng.UniformRangePoints(20, dim, -0.25, 1.25) {
				nn, err := tree.Nearest(q)
				require.NoError(t, err)

				want := testutil.BruteForceSearch(raw, q, 1)
				require.InDelta(t, want[0].Distance, nn.Distance, 1e-12, "dim=%d n=%d", dim, n)
				assert.InDelta(t, distance.Euclidean(q, raw[nn.ID]), nn.Distance, 1e-12)
			}
		}
	}
}

func TestNearestDuplicates(t *testing.T) {
	rng := testutil.NewRNG(5)

	for dim := 1; dim <= 3; dim++ {
		raw := rng.GridPoints(300, dim, 3)
		tree, err := Build(toPoints(raw))
		require.NoError(t, err)

		for _, q := range rng.UniformRangePoints(30, dim, -1, 4) {
			nn, err := tree.Nearest(q)
			require.NoError(t, err)
			want := testutil.BruteForceSearch(raw, q, 1)
			require.InDelta(t, want[0].Distance, nn.Distance, 1e-12)
		}
	}
}

func TestNearestPrunes(t *testing.T) {
	rng := testutil.NewRNG(8)
	raw := rng.UniformPoints(2000, 2)
	tree, err := Build(toPoints(raw))
	require.NoError(t, err)

	var stats SearchStats
	_, err = tree.Nearest(Point{0.5, 0.5}, func(o *SearchOptions) { o.Stats = &stats })
	require.NoError(t, err)

	assert.Greater(t, stats.Visited, 0)
	assert.Equal(t, stats.Visited, stats.Evaluated)
	assert.Less(t, stats.Visited, tree.Len()/4)
}

func TestKNearest(t *testing.T) {
	t.Run("Sample", func(t *testing.T) {
		pts := samplePoints()
		tree, err := Build(pts)
		require.NoError(t, err)

		q := Point{6, 3}
		res, err := tree.KNearest(q, 2)
		require.NoError(t, err)
		require.Len(t, res, 2)

		// {7, 2} and {5, 4} are both sqrt(2) away; compare as a set.
		got := []int{res[0].ID, res[1].ID}
		sort.Ints(got)
		assert.Equal(t, []int{1, 5}, got)
		for _, r := range res {
			assert.InDelta(t, math.Sqrt2, r.Distance, 1e-12)
			assert.Equal(t, pts[r.ID], r.Point)
		}

		raw := make([][]float64, len(pts))
		for i, p := range pts {
			raw[i] = p
		}
		want := testutil.BruteForceSearch(raw, q, 2)
		assert.InDeltaSlice(t, testutil.Distances(want), neighborDistances(res), 1e-12)
	})

	t.Run("Sorted", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		res, err := tree.KNearest(Point{0, 0}, 6)
		require.NoError(t, err)
		assert.True(t, sort.Float64sAreSorted(neighborDistances(res)))
	})

	t.Run("KExceedsLen", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		res, err := tree.KNearest(Point{6, 3}, 100)
		require.NoError(t, err)
		require.Len(t, res, 6)

		ids := make([]int, len(res))
		for i, r := range res {
			ids[i] = r.ID
		}
		sort.Ints(ids)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ids)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		tree, err := Build([]Point{{3}})
		require.NoError(t, err)

		res, err := tree.KNearest(Point{1}, 3)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, 2.0, res[0].Distance)
	})

	t.Run("EmptyTree", func(t *testing.T) {
		tree, err := Build(nil)
		require.NoError(t, err)

		res, err := tree.KNearest(Point{1, 2}, 3)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("InvalidK", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		_, err = tree.KNearest(Point{6, 3}, 0)
		assert.ErrorIs(t, err, ErrInvalidK)
		_, err = tree.KNearest(Point{6, 3}, -2)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		_, err = tree.KNearest(Point{6}, 2)
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("Filter", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		even := func(id int) bool { return id%2 == 0 }
		res, err := tree.KNearest(Point{6, 3}, 10, func(o *SearchOptions) { o.Filter = even })
		require.NoError(t, err)
		require.Len(t, res, 3)
		for _, r := range res {
			assert.True(t, even(r.ID))
		}
	})
}

func TestKNearestMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(99)

	for dim := 1; dim <= 5; dim++ {
		for _, n := range []int{1, 5, 40, 120} {
			raw := rng.UniformPoints(n, dim)
			tree, err := Build(toPoints(raw))
			require.NoError(t, err)

			q := rng.UniformRangePoints(1, dim, -0.5, 1.5)[0]
			for k := 1; k <= n; k++ {
				res, err := tree.KNearest(q, k)
				require.NoError(t, err)
				require.Len(t, res, k)

				want := testutil.BruteForceSearch(raw, q, k)
				require.InDeltaSlice(t, testutil.Distances(want), neighborDistances(res), 1e-12,
					"dim=%d n=%d k=%d", dim, n, k)
			}
		}
	}
}

func TestKNearestDuplicates(t *testing.T) {
	rng := testutil.NewRNG(17)
	raw := rng.GridPoints(250, 2, 4)
	tree, err := Build(toPoints(raw))
	require.NoError(t, err)

	for _, q := range rng.UniformRangePoints(10, 2, -1, 5) {
		for _, k := range []int{1, 3, 10, 50, 250} {
			res, err := tree.KNearest(q, k)
			require.NoError(t, err)

			want := testutil.BruteForceSearch(raw, q, k)
			require.InDeltaSlice(t, testutil.Distances(want), neighborDistances(res), 1e-12)

			seen := make(map[int]bool, len(res))
			for _, r := range res {
				require.False(t, seen[r.ID], "duplicate id %d", r.ID)
				seen[r.ID] = true
			}
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	rng := testutil.NewRNG(3)
	tree, err := Build(toPoints(rng.UniformPoints(300, 3)))
	require.NoError(t, err)

	q := Point{0.3, 0.6, 0.1}

	nn1, err := tree.Nearest(q)
	require.NoError(t, err)
	knn1, err := tree.KNearest(q, 12)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		nn2, err := tree.Nearest(q)
		require.NoError(t, err)
		assert.Equal(t, nn1, nn2)

		knn2, err := tree.KNearest(q, 12)
		require.NoError(t, err)
		assert.Equal(t, knn1, knn2)
	}
}
