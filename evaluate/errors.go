package evaluate

import "errors"

var (
	// ErrEmptyDataset is returned when there is nothing to evaluate.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrLabelCount is returned when the number of labels differs from the number of samples.
	ErrLabelCount = errors.New("label count does not match sample count")

	// ErrInvalidFolds is returned when the fold count is below 2 or exceeds the sample count.
	ErrInvalidFolds = errors.New("invalid fold count")

	// ErrNilTrainer is returned when KFold is called without a trainer.
	ErrNilTrainer = errors.New("trainer is nil")
)
