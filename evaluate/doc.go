// Package evaluate scores classifiers on labelled data: plain accuracy,
// leave-one-out k-NN and k-fold cross-validation.
//
// KFold trains one model per fold; folds run concurrently up to
// KFoldOptions.Parallelism, and no model is shared between folds.
package evaluate
