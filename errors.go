package statlearn

import (
	"errors"
	"fmt"

	"github.com/zibellina/statlearn/kdtree"
	"github.com/zibellina/statlearn/knn"
	"github.com/zibellina/statlearn/perceptron"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidArgument is returned for malformed input such as mismatched
	// label counts, labels outside {+1, -1} or a non-positive learning rate.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConverged is returned when perceptron training exhausted its epoch budget.
	ErrNotConverged = errors.New("training did not converge")
)

// ErrDimensionMismatch indicates a point/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid point dimensionality.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var kdm *kdtree.ErrDimensionMismatch
	if errors.As(err, &kdm) {
		return &ErrDimensionMismatch{Expected: kdm.Expected, Actual: kdm.Actual, cause: err}
	}
	var pdm *perceptron.ErrDimensionMismatch
	if errors.As(err, &pdm) {
		return &ErrDimensionMismatch{Expected: pdm.Expected, Actual: pdm.Actual, cause: err}
	}
	var kid *kdtree.ErrInvalidDimension
	if errors.As(err, &kid) {
		return &ErrInvalidDimension{Dimension: kid.Dimension, cause: err}
	}
	if errors.Is(err, kdtree.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, perceptron.ErrNotConverged) {
		return fmt.Errorf("%w: %w", ErrNotConverged, err)
	}
	if errors.Is(err, perceptron.ErrEmptyDataset) ||
		errors.Is(err, perceptron.ErrInvalidLabel) ||
		errors.Is(err, perceptron.ErrLabelCount) ||
		errors.Is(err, perceptron.ErrInvalidLearningRate) ||
		errors.Is(err, knn.ErrLabelCount) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
