// Package testutil provides testing utilities for statlearn.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points, computing exact
// nearest neighbors by linear scan, and building separable datasets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(500, 3)       // uniform [0, 1)
//	grid := rng.GridPoints(500, 2, 4)      // integer coordinates in [0, 4), many duplicates
//
// # Exact Search (Ground Truth)
//
//	results := testutil.BruteForceSearch(points, query, k)
//
// # Labelled Data
//
//	X, Y := rng.SeparableDataset(200, 2, 0.1)
package testutil
