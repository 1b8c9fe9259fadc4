package statlearn

import (
	"context"
	"fmt"
	"time"

	"github.com/zibellina/statlearn/perceptron"
)

// Form selects the perceptron training algorithm.
type Form int

const (
	// FormPrimal updates the weight vector directly.
	FormPrimal Form = iota
	// FormDual updates per-sample coefficients over the Gram matrix.
	FormDual
)

// String returns the string representation of the form.
func (f Form) String() string {
	switch f {
	case FormPrimal:
		return "primal"
	case FormDual:
		return "dual"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// ParseForm parses "primal" or "dual".
func ParseForm(s string) (Form, error) {
	switch s {
	case "primal":
		return FormPrimal, nil
	case "dual":
		return FormDual, nil
	default:
		return 0, fmt.Errorf("%w: unknown perceptron form %q", ErrInvalidArgument, s)
	}
}

// PerceptronModel is a trained linear classifier sign(w·x + b).
type PerceptronModel = perceptron.Model

// TrainPerceptron fits a perceptron to samples X with labels Y in {+1, -1}.
//
// When the epoch budget (WithMaxEpochs) runs out before an error-free pass,
// the partially trained model is returned together with ErrNotConverged.
func TrainPerceptron(ctx context.Context, X [][]float64, Y []int, form Form, optFns ...Option) (*PerceptronModel, error) {
	o := applyOptions(optFns)

	train := perceptron.TrainPrimal
	switch form {
	case FormPrimal:
	case FormDual:
		train = perceptron.TrainDual
	default:
		return nil, fmt.Errorf("%w: unknown perceptron form %d", ErrInvalidArgument, int(form))
	}

	start := time.Now()
	m, err := train(ctx, X, Y, func(po *perceptron.Options) {
		po.LearningRate = o.learningRate
		po.MaxEpochs = o.maxEpochs
	})
	elapsed := time.Since(start)

	err = translateError(err)

	epochs, updates := 0, 0
	if m != nil {
		epochs, updates = m.Epochs, m.Updates
	}
	o.metricsCollector.RecordTrain(epochs, elapsed, err)
	o.logger.LogTrain(ctx, form, len(X), epochs, updates, err)

	return m, err
}
