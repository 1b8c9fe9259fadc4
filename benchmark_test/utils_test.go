package benchmark_test

import (
	"fmt"

	"github.com/zibellina/statlearn/kdtree"
	"github.com/zibellina/statlearn/testutil"
)

func formatDim(dim int) string {
	return fmt.Sprintf("dim=%d", dim)
}

func formatCount(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return fmt.Sprintf("n=%dM", n/1_000_000)
	case n >= 1000 && n%1000 == 0:
		return fmt.Sprintf("n=%dK", n/1000)
	default:
		return fmt.Sprintf("n=%d", n)
	}
}

func toPoints(vs [][]float64) []kdtree.Point {
	out := make([]kdtree.Point, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// recallAtK is the fraction of exact neighbor distances matched by the result.
// The tree is exact, so anything below 1 is a bug.
func recallAtK(got []kdtree.Neighbor, truth []testutil.SearchResult) float64 {
	if len(truth) == 0 {
		return 1
	}
	hits := 0
	for i := range truth {
		if i < len(got) && got[i].Distance == truth[i].Distance {
			hits++
		}
	}
	return float64(hits) / float64(len(truth))
}
