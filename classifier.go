package statlearn

import (
	"context"
	"time"

	"github.com/zibellina/statlearn/kdtree"
	"github.com/zibellina/statlearn/knn"
)

// KNNClassifier labels queries by majority vote among the k nearest
// training samples. Ties go to the label with the smaller summed distance,
// then to the smaller label.
type KNNClassifier struct {
	c    *knn.Classifier
	opts options
}

// NewKNNClassifier builds a classifier over samples X with labels Y.
func NewKNNClassifier(X [][]float64, Y []int, k int, optFns ...Option) (*KNNClassifier, error) {
	o := applyOptions(optFns)

	start := time.Now()
	c, err := knn.New(X, Y, k)
	elapsed := time.Since(start)

	o.metricsCollector.RecordBuild(len(X), elapsed, err)
	if err != nil {
		err = translateError(err)
		o.logger.WithK(k).LogBuild(context.Background(), len(X), 0, 0, elapsed, err)
		return nil, err
	}
	tree := c.Tree()
	o.logger.WithK(k).LogBuild(context.Background(), tree.Len(), tree.Dimension(), tree.Height(), elapsed, nil)

	return &KNNClassifier{c: c, opts: o}, nil
}

// K returns the number of neighbors consulted per prediction.
func (c *KNNClassifier) K() int { return c.c.K() }

// Predict returns the predicted label for x.
func (c *KNNClassifier) Predict(x []float64) (int, error) {
	var stats kdtree.SearchStats

	start := time.Now()
	label, err := c.c.PredictWith(x, func(o *kdtree.SearchOptions) {
		o.Stats = &stats
	})
	elapsed := time.Since(start)

	err = translateError(err)
	c.opts.metricsCollector.RecordSearch(c.c.K(), stats.Visited, elapsed, err)
	if err != nil {
		c.opts.logger.LogSearch(context.Background(), c.c.K(), 0, stats.Visited, err)
		return 0, err
	}
	return label, nil
}
