package kdtree

import (
	"math"
	"slices"

	"github.com/zibellina/statlearn/internal/queue"
)

// Neighbor is a point found by a search together with its distance to the query.
type Neighbor struct {
	// ID is the position of the point in the slice passed to Build,
	// or -1 when no point was found.
	ID       int
	Point    Point
	Distance float64
}

// Found reports whether n refers to a point. Searching an empty tree, or a
// tree whose points are all rejected by the filter, yields a Neighbor with
// ID -1 and infinite distance.
func (n Neighbor) Found() bool {
	return n.ID >= 0
}

func noNeighbor() Neighbor {
	return Neighbor{ID: -1, Distance: math.Inf(1)}
}

// SearchStats reports the work done by one search.
type SearchStats struct {
	// Visited is the number of tree nodes entered.
	Visited int
	// Evaluated is the number of distance computations.
	Evaluated int
}

// SearchOptions contains per-query options.
type SearchOptions struct {
	// Filter, if set, restricts results to points whose ID it accepts.
	// Rejected points are still traversed for routing.
	Filter func(id int) bool

	// Stats, if set, receives the work counters of the search.
	Stats *SearchStats
}

func applySearchOptions(optFns []func(o *SearchOptions)) SearchOptions {
	var opts SearchOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

func (t *Tree) checkQuery(query Point) error {
	if t.dim > 0 && len(query) != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: len(query)}
	}
	return nil
}

func (t *Tree) neighbor(i int32, dist float64) Neighbor {
	n := &t.nodes[i]
	return Neighbor{ID: n.id, Point: slices.Clone(n.point), Distance: dist}
}

type nearestSearch struct {
	t        *Tree
	query    Point
	filter   func(id int) bool
	best     int32
	bestDist float64
	stats    SearchStats
}

// Nearest returns the point closest to query. Ties are resolved in favour of
// the point found first. On an empty tree it returns a Neighbor for which
// Found reports false, and a nil error.
func (t *Tree) Nearest(query Point, optFns ...func(o *SearchOptions)) (Neighbor, error) {
	if err := t.checkQuery(query); err != nil {
		return noNeighbor(), err
	}
	opts := applySearchOptions(optFns)

	s := nearestSearch{
		t:        t,
		query:    query,
		filter:   opts.Filter,
		best:     -1,
		bestDist: math.Inf(1),
	}
	s.search(t.root)

	if opts.Stats != nil {
		*opts.Stats = s.stats
	}
	if s.best < 0 {
		return noNeighbor(), nil
	}
	return t.neighbor(s.best, s.bestDist), nil
}

func (s *nearestSearch) search(i int32) {
	if i < 0 {
		return
	}
	s.stats.Visited++
	n := &s.t.nodes[i]

	diff := s.query[n.split] - n.point[n.split]
	near, far := n.right, n.left
	if diff < 0 {
		near, far = n.left, n.right
	}

	s.search(near)

	if s.filter == nil || s.filter(n.id) {
		s.stats.Evaluated++
		if d := s.t.dist(n.point, s.query); d < s.bestDist {
			s.best, s.bestDist = i, d
		}
	}

	// The far side can only hold a closer point if the ball of radius
	// bestDist around the query crosses the splitting plane.
	if far >= 0 && math.Abs(diff) < s.bestDist {
		s.search(far)
	}
}

type kNearestSearch struct {
	t      *Tree
	query  Point
	k      int
	filter func(id int) bool
	heap   *queue.PriorityQueue
	stats  SearchStats
}

// KNearest returns the k points closest to query, ordered by increasing
// distance. If the tree holds fewer than k points, all of them are returned.
// When several held candidates tie for the largest distance, any of them may
// be the one evicted.
func (t *Tree) KNearest(query Point, k int, optFns ...func(o *SearchOptions)) ([]Neighbor, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if err := t.checkQuery(query); err != nil {
		return nil, err
	}
	opts := applySearchOptions(optFns)

	s := kNearestSearch{
		t:      t,
		query:  query,
		k:      k,
		filter: opts.Filter,
		heap:   queue.NewMax(min(k, t.Len())),
	}
	s.search(t.root)

	if opts.Stats != nil {
		*opts.Stats = s.stats
	}

	out := make([]Neighbor, s.heap.Len())
	for i := len(out) - 1; i >= 0; i-- {
		item, _ := s.heap.PopItem()
		out[i] = t.neighbor(item.Node, item.Distance)
	}
	return out, nil
}

// bound is the distance a point must beat to enter the candidate set.
func (s *kNearestSearch) bound() float64 {
	if s.heap.Len() < s.k {
		return math.Inf(1)
	}
	top, _ := s.heap.TopItem()
	return top.Distance
}

func (s *kNearestSearch) search(i int32) {
	if i < 0 {
		return
	}
	s.stats.Visited++
	n := &s.t.nodes[i]

	diff := s.query[n.split] - n.point[n.split]
	near, far := n.right, n.left
	if diff < 0 {
		near, far = n.left, n.right
	}

	s.search(near)

	if s.filter == nil || s.filter(n.id) {
		s.stats.Evaluated++
		d := s.t.dist(n.point, s.query)
		s.heap.PushItemBounded(queue.PriorityQueueItem{Node: i, Distance: d}, s.k)
	}

	if far >= 0 && math.Abs(diff) < s.bound() {
		s.search(far)
	}
}
