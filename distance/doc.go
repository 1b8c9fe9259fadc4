// Package distance provides point distance calculations over float64 coordinates.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance (default)
//
// Euclidean distance satisfies the triangle inequality, which the kd-tree
// relies on when it prunes subtrees against the splitting hyperplane.
//
// # Usage
//
//	dist := distance.Euclidean(a, b)
//	sq := distance.SquaredEuclidean(a, b)
//	score := distance.Dot(w, x)
package distance
