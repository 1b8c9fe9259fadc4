// Package knn implements k-nearest-neighbor classification on top of the kd-tree.
package knn

import (
	"errors"
	"fmt"

	"github.com/zibellina/statlearn/kdtree"
)

var (
	// ErrLabelCount is returned when the number of labels differs from the number of samples.
	ErrLabelCount = errors.New("label count does not match sample count")

	// ErrNoNeighbors is returned when a query has no admissible neighbor,
	// e.g. on an empty training set or when the filter rejects every point.
	ErrNoNeighbors = errors.New("no neighbors found")
)

// Classifier predicts the majority label among the k nearest training samples.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	tree   *kdtree.Tree
	labels []int
	k      int
}

// New builds a classifier over samples X with labels Y.
func New(X [][]float64, Y []int, k int) (*Classifier, error) {
	if k <= 0 {
		return nil, kdtree.ErrInvalidK
	}
	if len(X) != len(Y) {
		return nil, fmt.Errorf("%w: %d samples, %d labels", ErrLabelCount, len(X), len(Y))
	}

	points := make([]kdtree.Point, len(X))
	for i, x := range X {
		points[i] = x
	}
	tree, err := kdtree.Build(points)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		tree:   tree,
		labels: append([]int(nil), Y...),
		k:      k,
	}, nil
}

// K returns the number of neighbors consulted per prediction.
func (c *Classifier) K() int { return c.k }

// Tree returns the underlying kd-tree. IDs in search results index the training labels.
func (c *Classifier) Tree() *kdtree.Tree { return c.tree }

// Label returns the training label of sample id.
func (c *Classifier) Label(id int) int { return c.labels[id] }

// Predict returns the majority label among the k nearest training samples.
func (c *Classifier) Predict(x []float64) (int, error) {
	return c.PredictWith(x)
}

// PredictWith is Predict with search options applied to the neighbor query,
// e.g. a Filter restricting which training samples may vote.
func (c *Classifier) PredictWith(x []float64, optFns ...func(o *kdtree.SearchOptions)) (int, error) {
	neighbors, err := c.tree.KNearest(x, c.k, optFns...)
	if err != nil {
		return 0, err
	}
	if len(neighbors) == 0 {
		return 0, ErrNoNeighbors
	}
	return Vote(neighbors, c.labels), nil
}

// Vote returns the most frequent label among neighbors. A tie goes to the
// label whose neighbors have the smaller summed distance, then to the smaller
// label. neighbors must not be empty.
func Vote(neighbors []kdtree.Neighbor, labels []int) int {
	type tally struct {
		count int
		dist  float64
	}
	votes := make(map[int]*tally, len(neighbors))
	for _, n := range neighbors {
		l := labels[n.ID]
		v, ok := votes[l]
		if !ok {
			v = &tally{}
			votes[l] = v
		}
		v.count++
		v.dist += n.Distance
	}

	best, bestVote := 0, (*tally)(nil)
	for l, v := range votes {
		switch {
		case bestVote == nil,
			v.count > bestVote.count,
			v.count == bestVote.count && v.dist < bestVote.dist,
			v.count == bestVote.count && v.dist == bestVote.dist && l < best:
			best, bestVote = l, v
		}
	}
	return best
}
