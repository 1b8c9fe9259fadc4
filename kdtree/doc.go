// Package kdtree implements a k-dimensional binary space-partitioning tree with
// exact nearest-neighbor and k-nearest-neighbor search.
//
// The tree is built once from a fixed point set by splitting on the median of
// the range along an axis that cycles with depth (depth mod dim). It is
// immutable afterwards; queries descend into the side of each splitting plane
// that contains the query, then backtrack into the other side only when the
// ball around the query with the current bound crosses the plane.
//
// # Usage
//
//	tree, err := kdtree.Build([]kdtree.Point{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}})
//	nn, err := tree.Nearest(kdtree.Point{6, 3})   // {7 2}, sqrt(2)
//	knn, err := tree.KNearest(kdtree.Point{6, 3}, 2)
//
// Build copies its input; the caller's points are never reordered.
package kdtree
