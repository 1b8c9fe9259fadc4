package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zibellina/statlearn"
	"github.com/zibellina/statlearn/internal/dataset"
)

var knnExample = `  # the two points closest to (6,3) and their majority label
  statlearn knn --data train.csv --query 6,3 --k 2

  # unlabelled points, neighbors only
  statlearn knn --data points.csv --labelled=false --query 6,3`

type knnFlags struct {
	Data     string
	Query    string
	K        int
	Labelled bool
}

func newKNNCmd(g *globalFlags) *cobra.Command {
	flags := &knnFlags{Labelled: true}

	cmd := &cobra.Command{
		Use:     "knn --data FILE --query X1,X2,...",
		Short:   "Find the k nearest neighbors of a query point",
		Example: knnExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.settings()
			if err != nil {
				return err
			}
			override(cmd, "k", &cfg.K, flags.K)
			return runKNN(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Data, "data", "", "CSV file with one point per line")
	cmd.Flags().StringVar(&flags.Query, "query", "", "comma-separated query point")
	cmd.Flags().IntVar(&flags.K, "k", 1, "number of neighbors")
	cmd.Flags().BoolVar(&flags.Labelled, "labelled", flags.Labelled, "last CSV column is an integer label")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runKNN(cmd *cobra.Command, cfg config, flags *knnFlags) error {
	logger, err := cfg.logger(cmd)
	if err != nil {
		return err
	}
	d, err := dataset.LoadFile(flags.Data, flags.Labelled)
	if err != nil {
		return err
	}
	query, err := dataset.ParseVector(flags.Query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	idx, err := statlearn.NewIndex(d.X, statlearn.WithLogger(logger))
	if err != nil {
		return err
	}
	neighbors, err := idx.KNearest(query, cfg.K)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, n := range neighbors {
		fmt.Fprintf(out, "%d\tid=%d\tpoint=%v\tdistance=%.4f", i+1, n.ID, n.Point, n.Distance)
		if d.Labelled() {
			fmt.Fprintf(out, "\tlabel=%d", d.Y[n.ID])
		}
		fmt.Fprintln(out)
	}

	if !d.Labelled() {
		return nil
	}
	c, err := statlearn.NewKNNClassifier(d.X, d.Y, cfg.K, statlearn.WithLogger(logger))
	if err != nil {
		return err
	}
	label, err := c.Predict(query)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "label: %d\n", label)
	return nil
}
