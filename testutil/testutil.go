package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/zibellina/statlearn/distance"
)

// SearchResult represents a search result.
type SearchResult struct {
	ID       int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float64 {
	return r.UniformRangePoints(num, dimensions, 0, 1)
}

// UniformRangePoints generates random points with coordinates in range [minVal, maxVal).
func (r *RNG) UniformRangePoints(num int, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// GridPoints generates points with integer coordinates in [0, levels).
// Small level counts produce many duplicate coordinates and duplicate points,
// which exercises tie handling in the tree.
func (r *RNG) GridPoints(num int, dimensions int, levels int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = float64(r.rand.Intn(levels))
		}
		points[i] = p
	}

	return points
}

// SeparableDataset generates num labelled samples in [-1, 1)^dimensions that are
// linearly separable by a random hyperplane through the origin. Samples closer
// than margin to the hyperplane are rejected and redrawn. Labels are +1 or -1.
func (r *RNG) SeparableDataset(num int, dimensions int, margin float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := make([]float64, dimensions)
	for j := range w {
		w[j] = r.rand.Float64()*2 - 1
	}
	norm := distance.Euclidean(w, make([]float64, dimensions))
	if norm == 0 {
		w[0], norm = 1, 1
	}

	X := make([][]float64, 0, num)
	Y := make([]int, 0, num)
	for len(X) < num {
		x := make([]float64, dimensions)
		for j := range x {
			x[j] = r.rand.Float64()*2 - 1
		}
		score := distance.Dot(w, x) / norm
		switch {
		case score >= margin:
			Y = append(Y, 1)
		case score <= -margin:
			Y = append(Y, -1)
		default:
			continue
		}
		X = append(X, x)
	}

	return X, Y
}

// BruteForceSearch performs exact search for ground truth.
// Results are sorted by distance, ties by ID.
func BruteForceSearch(points [][]float64, query []float64, k int) []SearchResult {
	results := make([]SearchResult, len(points))
	for i, p := range points {
		results[i] = SearchResult{ID: i, Distance: distance.Euclidean(query, p)}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})

	if k >= 0 && len(results) > k {
		results = results[:k]
	}
	return results
}

// Distances extracts the distances of results, preserving order.
func Distances(results []SearchResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Distance
	}
	return out
}
