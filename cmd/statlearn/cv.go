package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zibellina/statlearn"
	"github.com/zibellina/statlearn/evaluate"
	"github.com/zibellina/statlearn/internal/dataset"
)

var cvExample = `  # 5-fold cross-validation of 3-NN
  statlearn cv --data train.csv --model knn --k 3

  # leave-one-out 3-NN
  statlearn cv --data train.csv --model knn --k 3 --leave-one-out

  # 10-fold cross-validation of the dual perceptron
  statlearn cv --data train.csv --model perceptron --form dual --folds 10`

type cvFlags struct {
	Data        string
	Model       string
	Form        string
	K           int
	Eta         float64
	MaxEpochs   int
	Folds       int
	Seed        int64
	Parallelism int
	LeaveOneOut bool
}

func newCVCmd(g *globalFlags) *cobra.Command {
	flags := &cvFlags{}

	cmd := &cobra.Command{
		Use:     "cv --data FILE --model knn|perceptron",
		Short:   "Cross-validate a classifier",
		Example: cvExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.settings()
			if err != nil {
				return err
			}
			override(cmd, "k", &cfg.K, flags.K)
			override(cmd, "eta", &cfg.Eta, flags.Eta)
			override(cmd, "max-epochs", &cfg.MaxEpochs, flags.MaxEpochs)
			override(cmd, "folds", &cfg.Folds, flags.Folds)
			override(cmd, "seed", &cfg.Seed, flags.Seed)
			override(cmd, "parallelism", &cfg.Parallelism, flags.Parallelism)
			return runCV(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Data, "data", "", "labelled CSV file")
	cmd.Flags().StringVar(&flags.Model, "model", "knn", "model to evaluate: knn or perceptron")
	cmd.Flags().StringVar(&flags.Form, "form", statlearn.FormPrimal.String(), "perceptron form: primal or dual")
	cmd.Flags().IntVar(&flags.K, "k", 1, "number of neighbors for knn")
	cmd.Flags().Float64Var(&flags.Eta, "eta", 1, "perceptron learning rate")
	cmd.Flags().IntVar(&flags.MaxEpochs, "max-epochs", 1000, "perceptron epoch limit, 0 for no limit")
	cmd.Flags().IntVar(&flags.Folds, "folds", 5, "number of folds")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 1, "shuffle seed")
	cmd.Flags().IntVar(&flags.Parallelism, "parallelism", 0, "folds evaluated at once, 0 for GOMAXPROCS")
	cmd.Flags().BoolVar(&flags.LeaveOneOut, "leave-one-out", false, "knn only: classify every sample against all others")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func runCV(cmd *cobra.Command, cfg config, flags *cvFlags) error {
	logger, err := cfg.logger(cmd)
	if err != nil {
		return err
	}
	d, err := dataset.LoadFile(flags.Data, true)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var trainer evaluate.Trainer
	switch flags.Model {
	case "knn":
		if flags.LeaveOneOut {
			acc, err := evaluate.LeaveOneOutKNN(d.X, d.Y, cfg.K)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "leave-one-out accuracy: %.4f\n", acc)
			return nil
		}
		trainer = statlearn.KNNTrainer(cfg.K, statlearn.WithLogger(logger))
	case "perceptron":
		if flags.LeaveOneOut {
			return errors.New("--leave-one-out requires --model knn")
		}
		form, err := statlearn.ParseForm(flags.Form)
		if err != nil {
			return err
		}
		trainer = statlearn.PerceptronTrainer(form,
			statlearn.WithLearningRate(cfg.Eta),
			statlearn.WithMaxEpochs(cfg.MaxEpochs),
			statlearn.WithLogger(logger),
		)
	default:
		return fmt.Errorf("unknown model %q, want knn or perceptron", flags.Model)
	}

	report, err := evaluate.KFold(cmd.Context(), d.X, d.Y, trainer, func(o *evaluate.KFoldOptions) {
		o.Folds = cfg.Folds
		o.Seed = cfg.Seed
		o.Parallelism = cfg.Parallelism
	})
	if err != nil {
		return err
	}

	for _, f := range report.Folds {
		fmt.Fprintf(out, "fold %d\ttrain=%d\ttest=%d\taccuracy=%.4f\n", f.Fold+1, f.TrainSize, f.TestSize, f.Accuracy)
	}
	fmt.Fprintf(out, "mean accuracy: %.4f\n", report.MeanAccuracy)
	fmt.Fprintf(out, "overall accuracy: %.4f\n", report.Accuracy())
	return nil
}
