package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zibellina/statlearn"
	"github.com/zibellina/statlearn/evaluate"
	"github.com/zibellina/statlearn/internal/dataset"
)

var perceptronExample = `  # dual form, stop after 100 passes
  statlearn perceptron --data train.csv --form dual --max-epochs 100`

type perceptronFlags struct {
	Data      string
	Form      string
	Eta       float64
	MaxEpochs int
}

func newPerceptronCmd(g *globalFlags) *cobra.Command {
	flags := &perceptronFlags{}

	cmd := &cobra.Command{
		Use:     "perceptron --data FILE",
		Short:   "Train a perceptron on labels in {+1, -1}",
		Example: perceptronExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.settings()
			if err != nil {
				return err
			}
			override(cmd, "eta", &cfg.Eta, flags.Eta)
			override(cmd, "max-epochs", &cfg.MaxEpochs, flags.MaxEpochs)
			return runPerceptron(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Data, "data", "", "labelled CSV file")
	cmd.Flags().StringVar(&flags.Form, "form", statlearn.FormPrimal.String(), "training form: primal or dual")
	cmd.Flags().Float64Var(&flags.Eta, "eta", 1, "learning rate")
	cmd.Flags().IntVar(&flags.MaxEpochs, "max-epochs", 1000, "maximum passes over the data, 0 for no limit")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func runPerceptron(cmd *cobra.Command, cfg config, flags *perceptronFlags) error {
	form, err := statlearn.ParseForm(flags.Form)
	if err != nil {
		return err
	}
	logger, err := cfg.logger(cmd)
	if err != nil {
		return err
	}
	d, err := dataset.LoadFile(flags.Data, true)
	if err != nil {
		return err
	}

	m, err := statlearn.TrainPerceptron(cmd.Context(), d.X, d.Y, form,
		statlearn.WithLearningRate(cfg.Eta),
		statlearn.WithMaxEpochs(cfg.MaxEpochs),
		statlearn.WithLogger(logger),
	)
	if err != nil && !errors.Is(err, statlearn.ErrNotConverged) {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "form: %s\n", form)
	fmt.Fprintf(out, "weights: %v\n", m.Weights)
	fmt.Fprintf(out, "bias: %v\n", m.Bias)
	fmt.Fprintf(out, "epochs: %d\n", m.Epochs)
	fmt.Fprintf(out, "updates: %d\n", m.Updates)

	acc, accErr := evaluate.Accuracy(m, d.X, d.Y)
	if accErr != nil {
		return accErr
	}
	fmt.Fprintf(out, "training accuracy: %.4f\n", acc)

	return err
}
