// Package perceptron implements binary linear classifiers trained by
// mistake-driven updates, in the primal and the dual formulation.
//
// The primal form updates the weights directly:
//
//	w <- w + eta*y*x
//	b <- b + eta*y
//
// The dual form keeps one coefficient per sample and reads inner products from
// a precomputed Gram matrix; the weights are recovered as w = sum(alpha*y*x).
//
// Training stops after the first epoch without a mistake. It only terminates
// on linearly separable data, so both trainers take an epoch cap and report
// ErrNotConverged when it is exhausted.
package perceptron
