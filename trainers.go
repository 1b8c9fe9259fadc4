package statlearn

import (
	"context"
	"errors"

	"github.com/zibellina/statlearn/evaluate"
)

// KNNTrainer returns an evaluate.Trainer that fits a KNNClassifier per fold.
func KNNTrainer(k int, optFns ...Option) evaluate.Trainer {
	return func(_ context.Context, X [][]float64, Y []int) (evaluate.Classifier, error) {
		c, err := NewKNNClassifier(X, Y, k, optFns...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// PerceptronTrainer returns an evaluate.Trainer that fits a perceptron per fold.
// A model that ran out of epochs is still scored; the fold accuracy shows
// how far from separable the training split was.
func PerceptronTrainer(form Form, optFns ...Option) evaluate.Trainer {
	return func(ctx context.Context, X [][]float64, Y []int) (evaluate.Classifier, error) {
		m, err := TrainPerceptron(ctx, X, Y, form, optFns...)
		if err != nil && !(errors.Is(err, ErrNotConverged) && m != nil) {
			return nil, err
		}
		return m, nil
	}
}
