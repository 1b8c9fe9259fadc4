package evaluate

import (
	"context"
	"fmt"

	"github.com/zibellina/statlearn/kdtree"
	"github.com/zibellina/statlearn/knn"
)

// Classifier predicts a label for a sample.
type Classifier interface {
	Predict(x []float64) (int, error)
}

// Trainer fits a Classifier to samples X with labels Y.
type Trainer func(ctx context.Context, X [][]float64, Y []int) (Classifier, error)

func checkDataset(X [][]float64, Y []int) error {
	if len(X) != len(Y) {
		return fmt.Errorf("%w: %d samples, %d labels", ErrLabelCount, len(X), len(Y))
	}
	if len(X) == 0 {
		return ErrEmptyDataset
	}
	return nil
}

// Accuracy returns the fraction of samples in X that c labels as in Y.
func Accuracy(c Classifier, X [][]float64, Y []int) (float64, error) {
	if err := checkDataset(X, Y); err != nil {
		return 0, err
	}
	correct, err := countCorrect(c, X, Y)
	if err != nil {
		return 0, err
	}
	return float64(correct) / float64(len(X)), nil
}

func countCorrect(c Classifier, X [][]float64, Y []int) (int, error) {
	correct := 0
	for i, x := range X {
		got, err := c.Predict(x)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if got == Y[i] {
			correct++
		}
	}
	return correct, nil
}

// LeaveOneOutKNN classifies every sample with a k-NN classifier built over
// all samples, excluding the sample itself from the vote, and returns the
// accuracy. A single tree serves every query. At least two samples are required.
func LeaveOneOutKNN(X [][]float64, Y []int, k int) (float64, error) {
	if err := checkDataset(X, Y); err != nil {
		return 0, err
	}

	c, err := knn.New(X, Y, k)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i, x := range X {
		got, err := c.PredictWith(x, func(o *kdtree.SearchOptions) {
			o.Filter = func(id int) bool { return id != i }
		})
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if got == Y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X)), nil
}
