package statlearn

import (
	"context"
	"time"

	"github.com/zibellina/statlearn/kdtree"
)

// Neighbor is a search result: the point, its insertion index and its
// Euclidean distance to the query.
type Neighbor = kdtree.Neighbor

// Index is an immutable kd-tree over a point set.
type Index struct {
	tree *kdtree.Tree
	opts options
}

// NewIndex builds an Index over points. The slice is copied; later changes
// by the caller do not affect the index. The dimension is taken from the
// first point and every point must match it.
func NewIndex(points [][]float64, optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)

	start := time.Now()
	tree, err := buildTree(points)
	elapsed := time.Since(start)

	o.metricsCollector.RecordBuild(len(points), elapsed, err)
	if err != nil {
		err = translateError(err)
		o.logger.LogBuild(context.Background(), len(points), 0, 0, elapsed, err)
		return nil, err
	}
	o.logger.LogBuild(context.Background(), tree.Len(), tree.Dimension(), tree.Height(), elapsed, nil)

	return &Index{tree: tree, opts: o}, nil
}

func buildTree(points [][]float64) (*kdtree.Tree, error) {
	pts := make([]kdtree.Point, len(points))
	for i, p := range points {
		pts[i] = p
	}
	return kdtree.Build(pts)
}

// Len returns the number of indexed points.
func (idx *Index) Len() int { return idx.tree.Len() }

// Dimension returns the point dimension, or 0 for an empty index.
func (idx *Index) Dimension() int { return idx.tree.Dimension() }

// Tree exposes the underlying kd-tree for filtered searches.
func (idx *Index) Tree() *kdtree.Tree { return idx.tree }

// Nearest returns the indexed point closest to query.
// On an empty index the result reports Found() == false.
func (idx *Index) Nearest(query []float64) (Neighbor, error) {
	var stats kdtree.SearchStats

	start := time.Now()
	nn, err := idx.tree.Nearest(query, func(o *kdtree.SearchOptions) {
		o.Stats = &stats
	})
	elapsed := time.Since(start)

	err = translateError(err)
	idx.opts.metricsCollector.RecordSearch(1, stats.Visited, elapsed, err)

	found := 0
	if nn.Found() {
		found = 1
	}
	idx.opts.logger.LogSearch(context.Background(), 1, found, stats.Visited, err)

	return nn, err
}

// KNearest returns up to k indexed points closest to query in ascending
// distance order. If k exceeds Len, every point is returned.
func (idx *Index) KNearest(query []float64, k int) ([]Neighbor, error) {
	var stats kdtree.SearchStats

	start := time.Now()
	res, err := idx.tree.KNearest(query, k, func(o *kdtree.SearchOptions) {
		o.Stats = &stats
	})
	elapsed := time.Since(start)

	err = translateError(err)
	idx.opts.metricsCollector.RecordSearch(k, stats.Visited, elapsed, err)
	idx.opts.logger.LogSearch(context.Background(), k, len(res), stats.Visited, err)

	return res, err
}
