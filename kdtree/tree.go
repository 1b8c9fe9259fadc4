package kdtree

import (
	"github.com/zibellina/statlearn/distance"
)

// Point is an ordered, fixed-length sequence of coordinates.
type Point []float64

// Dims returns the number of coordinates of p.
func (p Point) Dims() int { return len(p) }

// node is one arena slot. Children are arena indices, -1 when absent.
type node struct {
	point Point
	id    int
	split int
	left  int32
	right int32
}

// Tree is an immutable kd-tree over a fixed point set.
// Tree is safe for concurrent read-only use.
type Tree struct {
	nodes []node
	root  int32
	dim   int
	dist  distance.Func
}

// BuildOptions contains configuration options for tree construction.
type BuildOptions struct {
	// Dimension fixes the dimensionality of the tree.
	// If 0, it is taken from the first point.
	Dimension int

	// Metric selects the distance function used by searches.
	Metric distance.Metric
}

// DefaultBuildOptions contains the default configuration options for Build.
var DefaultBuildOptions = BuildOptions{
	Dimension: 0,
	Metric:    distance.MetricEuclidean,
}

type entry struct {
	point Point
	id    int
}

// Build constructs a balanced kd-tree from points. The ID of each point is its
// position in points. The points are copied; the caller's slice and its
// elements are left unmodified.
//
// An empty point set yields an empty tree.
func Build(points []Point, optFns ...func(o *BuildOptions)) (*Tree, error) {
	opts := DefaultBuildOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	dist, err := distance.Provider(opts.Metric)
	if err != nil {
		return nil, err
	}

	dim := opts.Dimension
	if dim == 0 && len(points) > 0 {
		dim = len(points[0])
	}
	if dim < 0 || (dim == 0 && len(points) > 0) {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	t := &Tree{
		root: -1,
		dim:  dim,
		dist: dist,
	}
	if len(points) == 0 {
		return t, nil
	}

	data := make([]float64, len(points)*dim)
	entries := make([]entry, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
		cp := data[i*dim : (i+1)*dim : (i+1)*dim]
		copy(cp, p)
		entries[i] = entry{point: cp, id: i}
	}

	t.nodes = make([]node, 0, len(entries))
	t.root = t.build(entries, 0)
	return t, nil
}

func (t *Tree) build(entries []entry, depth int) int32 {
	if len(entries) == 0 {
		return -1
	}

	d := depth % t.dim
	key := func(e entry) float64 { return e.point[d] }

	mid := len(entries) / 2
	selectNth(entries, 0, len(entries)-1, mid, key)
	// Keep every key equal to the median on the right so the left subtree is
	// strictly smaller along d.
	mid = lowerSplit(entries, mid, key)

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		point: entries[mid].point,
		id:    entries[mid].id,
		split: d,
		left:  -1,
		right: -1,
	})

	left := t.build(entries[:mid], depth+1)
	right := t.build(entries[mid+1:], depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Dimension returns the dimensionality of the tree's points.
func (t *Tree) Dimension() int {
	return t.dim
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(i int32) int {
	if i < 0 {
		return 0
	}
	return 1 + max(t.height(t.nodes[i].left), t.height(t.nodes[i].right))
}

// Walk visits every node in pre-order with its depth and split dimension.
// Returning false from fn stops the walk. The point passed to fn must not be
// modified.
func (t *Tree) Walk(fn func(p Point, id, depth, split int) bool) {
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(i int32, depth int, fn func(p Point, id, depth, split int) bool) bool {
	if i < 0 {
		return true
	}
	n := &t.nodes[i]
	if !fn(n.point, n.id, depth, n.split) {
		return false
	}
	return t.walk(n.left, depth+1, fn) && t.walk(n.right, depth+1, fn)
}
