package kdtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zibellina/statlearn/distance"
	"github.com/zibellina/statlearn/testutil"
)

func samplePoints() []Point {
	return []Point{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
}

// checkInvariant verifies that every left subtree is strictly below its root
// along the root's split dimension and every right subtree is at or above it.
func checkInvariant(t *testing.T, tree *Tree) {
	t.Helper()

	var collect func(i int32, out *[]Point)
	collect = func(i int32, out *[]Point) {
		if i < 0 {
			return
		}
		*out = append(*out, tree.nodes[i].point)
		collect(tree.nodes[i].left, out)
		collect(tree.nodes[i].right, out)
	}

	var check func(i int32, depth int)
	check = func(i int32, depth int) {
		if i < 0 {
			return
		}
		n := tree.nodes[i]
		require.Equal(t, depth%tree.dim, n.split)

		var left, right []Point
		collect(n.left, &left)
		collect(n.right, &right)
		for _, p := range left {
			require.Less(t, p[n.split], n.point[n.split])
		}
		for _, p := range right {
			require.GreaterOrEqual(t, p[n.split], n.point[n.split])
		}

		check(n.left, depth+1)
		check(n.right, depth+1)
	}
	check(tree.root, 0)
}

func TestBuild(t *testing.T) {
	t.Run("Sample", func(t *testing.T) {
		tree, err := Build(samplePoints())
		require.NoError(t, err)

		assert.Equal(t, 6, tree.Len())
		assert.Equal(t, 2, tree.Dimension())
		assert.Equal(t, 3, tree.Height())

		// The root splits on x at the median.
		root := tree.nodes[tree.root]
		assert.Equal(t, Point{7, 2}, root.point)
		assert.Equal(t, 5, root.id)
		assert.Equal(t, 0, root.split)

		checkInvariant(t, tree)
	})

	t.Run("Empty", func(t *testing.T) {
		tree, err := Build(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, 0, tree.Height())

		tree, err = Build([]Point{}, func(o *BuildOptions) { o.Dimension = 3 })
		require.NoError(t, err)
		assert.Equal(t, 3, tree.Dimension())
	})

	t.Run("SinglePoint", func(t *testing.T) {
		tree, err := Build([]Point{{1, 2, 3}})
		require.NoError(t, err)
		assert.Equal(t, 1, tree.Len())
		assert.Equal(t, 1, tree.Height())
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Build([]Point{{1, 2}, {3}})
		require.Error(t, err)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 1, dm.Actual)

		_, err = Build([]Point{{1, 2}}, func(o *BuildOptions) { o.Dimension = 3 })
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("InvalidDimension", func(t *testing.T) {
		_, err := Build([]Point{{}, {}})
		var id *ErrInvalidDimension
		assert.ErrorAs(t, err, &id)

		_, err = Build(nil, func(o *BuildOptions) { o.Dimension = -1 })
		assert.ErrorAs(t, err, &id)
	})

	t.Run("InvalidMetric", func(t *testing.T) {
		_, err := Build(samplePoints(), func(o *BuildOptions) { o.Metric = distance.Metric(99) })
		assert.Error(t, err)
	})

	t.Run("InputNotModified", func(t *testing.T) {
		pts := samplePoints()
		want := samplePoints()

		tree, err := Build(pts)
		require.NoError(t, err)
		assert.Equal(t, want, pts)

		// Mutating the caller's points afterwards does not affect the tree.
		pts[5][0] = 100
		nn, err := tree.Nearest(Point{6, 3})
		require.NoError(t, err)
		assert.Equal(t, Point{7, 2}, nn.Point)
	})
}

func TestBuildInvariant(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for dim := 1; dim <= 5; dim++ {
		for _, n := range []int{1, 2, 7, 64, 333} {
			tree, err := Build(toPoints(rng.UniformPoints(n, dim)))
			require.NoError(t, err)
			require.Equal(t, n, tree.Len())
			checkInvariant(t, tree)

			// Distinct coordinates split evenly.
			maxHeight := int(math.Floor(math.Log2(float64(n)))) + 1
			assert.LessOrEqual(t, tree.Height(), maxHeight)
		}
	}
}

func TestBuildInvariantDuplicates(t *testing.T) {
	rng := testutil.NewRNG(123)

	for dim := 1; dim <= 3; dim++ {
		for _, levels := range []int{1, 2, 3} {
			tree, err := Build(toPoints(rng.GridPoints(200, dim, levels)))
			require.NoError(t, err)
			require.Equal(t, 200, tree.Len())
			checkInvariant(t, tree)
		}
	}
}

func TestWalk(t *testing.T) {
	tree, err := Build(samplePoints())
	require.NoError(t, err)

	seen := make(map[int]bool)
	tree.Walk(func(p Point, id, depth, split int) bool {
		assert.Equal(t, depth%2, split)
		assert.Equal(t, samplePoints()[id], p)
		seen[id] = true
		return true
	})
	assert.Len(t, seen, 6)

	visits := 0
	tree.Walk(func(Point, int, int, int) bool {
		visits++
		return visits < 2
	})
	assert.Equal(t, 2, visits)
}
