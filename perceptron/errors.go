package perceptron

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged is returned when training used up MaxEpochs with
	// samples still misclassified. The last model is returned alongside it.
	ErrNotConverged = errors.New("perceptron did not converge")

	// ErrEmptyDataset is returned when there are no samples to train on.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidLabel is returned when a label is not +1 or -1.
	ErrInvalidLabel = errors.New("labels must be +1 or -1")

	// ErrLabelCount is returned when the number of labels differs from the number of samples.
	ErrLabelCount = errors.New("label count does not match sample count")

	// ErrInvalidLearningRate is returned when the learning rate is not positive.
	ErrInvalidLearningRate = errors.New("learning rate must be positive")
)

// ErrDimensionMismatch is returned when a sample or input does not have the
// model's dimensionality.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
