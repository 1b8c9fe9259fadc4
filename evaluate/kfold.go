package evaluate

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// KFoldOptions contains configuration options for KFold.
type KFoldOptions struct {
	// Folds is the number of folds. Must be in [2, len(X)].
	Folds int

	// Parallelism bounds the number of folds evaluated at once.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Parallelism int

	// Shuffle permutes the samples before assigning folds.
	// Without it, sample i goes to fold i % Folds.
	Shuffle bool

	// Seed drives the shuffle; equal seeds give equal folds.
	Seed int64
}

// DefaultKFoldOptions contains the default configuration options for KFold.
var DefaultKFoldOptions = KFoldOptions{
	Folds:   5,
	Shuffle: true,
	Seed:    1,
}

// FoldResult is the score of one fold.
type FoldResult struct {
	Fold      int
	TrainSize int
	TestSize  int
	Correct   int
	Accuracy  float64
}

// Report summarizes a cross-validation run.
type Report struct {
	Folds []FoldResult

	// MeanAccuracy is the unweighted mean of the fold accuracies.
	MeanAccuracy float64

	// Correct is the number of held-out samples labelled correctly across all folds.
	Correct int
	// Total is the number of samples.
	Total int
}

// Accuracy returns the fraction of all held-out samples labelled correctly.
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// KFold splits the samples into folds, trains a model on all but one fold
// and scores it on the held-out fold, once per fold.
// The first training or prediction error cancels the remaining folds.
func KFold(ctx context.Context, X [][]float64, Y []int, train Trainer, optFns ...func(o *KFoldOptions)) (*Report, error) {
	opts := DefaultKFoldOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if train == nil {
		return nil, ErrNilTrainer
	}
	if err := checkDataset(X, Y); err != nil {
		return nil, err
	}
	n := len(X)
	if opts.Folds < 2 || opts.Folds > n {
		return nil, fmt.Errorf("%w: %d folds for %d samples", ErrInvalidFolds, opts.Folds, n)
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}

	folds := assignFolds(n, opts)
	results := make([]FoldResult, opts.Folds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for f, test := range folds {
		g.Go(func() error {
			res, err := runFold(ctx, X, Y, test, train)
			if err != nil {
				return fmt.Errorf("fold %d: %w", f, err)
			}
			res.Fold = f
			results[f] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{Folds: results, Total: n}
	for _, res := range results {
		r.Correct += res.Correct
		r.MeanAccuracy += res.Accuracy
	}
	r.MeanAccuracy /= float64(len(results))
	return r, nil
}

// assignFolds returns the held-out sample IDs of every fold. Fold sizes
// differ by at most one.
func assignFolds(n int, opts KFoldOptions) []*roaring.Bitmap {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if opts.Shuffle {
		order = rand.New(rand.NewSource(opts.Seed)).Perm(n) // nolint gosec
	}

	folds := make([]*roaring.Bitmap, opts.Folds)
	for f := range folds {
		folds[f] = roaring.New()
	}
	for pos, id := range order {
		folds[pos%opts.Folds].Add(uint32(id))
	}
	return folds
}

func runFold(ctx context.Context, X [][]float64, Y []int, test *roaring.Bitmap, train Trainer) (FoldResult, error) {
	testSize := int(test.GetCardinality())
	trainX := make([][]float64, 0, len(X)-testSize)
	trainY := make([]int, 0, len(X)-testSize)
	for i := range X {
		if !test.Contains(uint32(i)) {
			trainX = append(trainX, X[i])
			trainY = append(trainY, Y[i])
		}
	}

	testX := make([][]float64, 0, testSize)
	testY := make([]int, 0, testSize)
	it := test.Iterator()
	for it.HasNext() {
		id := it.Next()
		testX = append(testX, X[id])
		testY = append(testY, Y[id])
	}

	if err := ctx.Err(); err != nil {
		return FoldResult{}, err
	}
	model, err := train(ctx, trainX, trainY)
	if err != nil {
		return FoldResult{}, err
	}
	correct, err := countCorrect(model, testX, testY)
	if err != nil {
		return FoldResult{}, err
	}

	return FoldResult{
		TrainSize: len(trainX),
		TestSize:  testSize,
		Correct:   correct,
		Accuracy:  float64(correct) / float64(testSize),
	}, nil
}
