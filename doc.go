// Package statlearn provides exact nearest-neighbor search over a kd-tree,
// k-nearest-neighbor classification and perceptron training.
//
// # Quick Start
//
//	idx, err := statlearn.NewIndex([][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	nn, _ := idx.Nearest([]float64{6, 3})       // [7 2] at sqrt(2)
//	top, _ := idx.KNearest([]float64{6, 3}, 2)  // ascending distance
//
// # Classification
//
// NewKNNClassifier labels a query with the majority label of its k nearest
// training samples. TrainPerceptron fits a linear separator for labels in
// {+1, -1} in either the primal or the dual (Gram matrix) form; both forms
// produce the same separator for the same sample order and learning rate.
//
// # Evaluation
//
// KNNTrainer and PerceptronTrainer adapt the models to evaluate.KFold:
//
//	report, err := evaluate.KFold(ctx, X, Y, statlearn.KNNTrainer(3))
//
// # Observability
//
// Every facade type accepts WithLogger and WithMetricsCollector. The packages
// below the facade (kdtree, knn, perceptron, evaluate) never log.
//
// # Errors
//
// Errors returned by the facade are normalized: ErrInvalidK, ErrInvalidArgument,
// ErrNotConverged, *ErrDimensionMismatch and *ErrInvalidDimension. The
// package-level cause stays reachable through errors.Is and errors.As.
//
// # Thread Safety
//
// An Index or KNNClassifier is read-only after construction; queries may run
// concurrently. A Logger or MetricsCollector passed in must be safe for
// concurrent use if queries are issued concurrently.
package statlearn
