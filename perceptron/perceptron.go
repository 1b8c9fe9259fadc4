package perceptron

import (
	"context"
	"fmt"
	"math"

	"github.com/zibellina/statlearn/distance"
)

// Options contains configuration options for training.
type Options struct {
	// LearningRate is the step size eta. Must be > 0.
	LearningRate float64

	// MaxEpochs bounds the number of passes over the data.
	// Zero or negative means no bound: training runs until an epoch
	// completes without mistakes.
	MaxEpochs int
}

// DefaultOptions contains the default configuration options for training.
var DefaultOptions = Options{
	LearningRate: 1,
	MaxEpochs:    1000,
}

// Model is a trained linear classifier sign(w·x + b).
type Model struct {
	Weights []float64
	Bias    float64

	// Alpha holds the per-sample coefficients of the dual form, nil for the primal form.
	Alpha []float64

	// Epochs is the number of passes over the data that were run.
	Epochs int
	// Updates is the total number of update steps.
	Updates int
}

// Dimension returns the number of features the model expects.
func (m *Model) Dimension() int {
	return len(m.Weights)
}

// Decision returns the raw score w·x + b.
func (m *Model) Decision(x []float64) (float64, error) {
	if len(x) != len(m.Weights) {
		return 0, &ErrDimensionMismatch{Expected: len(m.Weights), Actual: len(x)}
	}
	return distance.Dot(m.Weights, x) + m.Bias, nil
}

// Predict returns +1 if w·x + b > 0 and -1 otherwise.
func (m *Model) Predict(x []float64) (int, error) {
	s, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if s > 0 {
		return 1, nil
	}
	return -1, nil
}

// TrainPrimal trains a perceptron by updating the weight vector directly.
// A misclassified sample (y(w·x+b) <= 0) is updated repeatedly until it is
// classified correctly before moving on to the next sample.
//
// If MaxEpochs is exhausted, the current model is returned with ErrNotConverged.
func TrainPrimal(ctx context.Context, X [][]float64, Y []int, optFns ...func(o *Options)) (*Model, error) {
	opts, dim, err := prepare(X, Y, optFns)
	if err != nil {
		return nil, err
	}
	eta := opts.LearningRate

	m := &Model{Weights: make([]float64, dim)}
	margin := func(i int) float64 {
		return float64(Y[i]) * (distance.Dot(m.Weights, X[i]) + m.Bias)
	}

	for epoch := 1; opts.MaxEpochs <= 0 || epoch <= opts.MaxEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.Epochs = epoch

		clean := true
		for i, x := range X {
			if margin(i) > 0 {
				continue
			}
			clean = false
			y := float64(Y[i])
			for margin(i) <= 0 {
				for j := range m.Weights {
					m.Weights[j] += eta * y * x[j]
				}
				m.Bias += eta * y
				m.Updates++
			}
		}
		if clean {
			return m, nil
		}
	}

	return m, fmt.Errorf("%w after %d epochs", ErrNotConverged, m.Epochs)
}

// TrainDual trains a perceptron in coefficient space. alpha_i accumulates eta
// every time sample i is misclassified and inner products are read from the
// Gram matrix of X. The weights are recovered as w = sum(alpha_i*y_i*x_i).
//
// If MaxEpochs is exhausted, the current model is returned with ErrNotConverged.
func TrainDual(ctx context.Context, X [][]float64, Y []int, optFns ...func(o *Options)) (*Model, error) {
	opts, dim, err := prepare(X, Y, optFns)
	if err != nil {
		return nil, err
	}
	eta := opts.LearningRate

	n := len(X)
	gram := Gram(X)
	alpha := make([]float64, n)
	var bias float64
	var updates, epochs int

	margin := func(i int) float64 {
		var s float64
		for j := 0; j < n; j++ {
			if alpha[j] != 0 {
				s += alpha[j] * float64(Y[j]) * gram[j][i]
			}
		}
		return float64(Y[i]) * (s + bias)
	}

	converged := false
	for epoch := 1; opts.MaxEpochs <= 0 || epoch <= opts.MaxEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		epochs = epoch

		clean := true
		for i := 0; i < n; i++ {
			if margin(i) > 0 {
				continue
			}
			clean = false
			for margin(i) <= 0 {
				alpha[i] += eta
				bias += eta * float64(Y[i])
				updates++
			}
		}
		if clean {
			converged = true
			break
		}
	}

	m := &Model{
		Weights: dualWeights(X, Y, alpha, dim),
		Bias:    bias,
		Alpha:   alpha,
		Epochs:  epochs,
		Updates: updates,
	}
	if !converged {
		return m, fmt.Errorf("%w after %d epochs", ErrNotConverged, epochs)
	}
	return m, nil
}

// Gram returns the matrix of pairwise inner products G[i][j] = x_i·x_j.
func Gram(X [][]float64) [][]float64 {
	n := len(X)
	data := make([]float64, n*n)
	g := make([][]float64, n)
	for i := range g {
		g[i] = data[i*n : (i+1)*n]
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := distance.Dot(X[i], X[j])
			g[i][j] = v
			g[j][i] = v
		}
	}
	return g
}

func dualWeights(X [][]float64, Y []int, alpha []float64, dim int) []float64 {
	w := make([]float64, dim)
	for i, x := range X {
		if alpha[i] == 0 {
			continue
		}
		c := alpha[i] * float64(Y[i])
		for j := range w {
			w[j] += c * x[j]
		}
	}
	return w
}

func prepare(X [][]float64, Y []int, optFns []func(o *Options)) (Options, int, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if !(opts.LearningRate > 0) || math.IsInf(opts.LearningRate, 1) {
		return opts, 0, ErrInvalidLearningRate
	}
	if len(X) == 0 {
		return opts, 0, ErrEmptyDataset
	}
	if len(X) != len(Y) {
		return opts, 0, fmt.Errorf("%w: %d samples, %d labels", ErrLabelCount, len(X), len(Y))
	}

	dim := len(X[0])
	for i, x := range X {
		if len(x) != dim {
			return opts, 0, &ErrDimensionMismatch{Expected: dim, Actual: len(x)}
		}
		if Y[i] != 1 && Y[i] != -1 {
			return opts, 0, fmt.Errorf("%w: got %d at sample %d", ErrInvalidLabel, Y[i], i)
		}
	}
	return opts, dim, nil
}
