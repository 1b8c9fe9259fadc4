// Command statlearn runs nearest-neighbor queries, perceptron training and
// cross-validation over labelled CSV data.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	ConfigPath string
	LogLevel   string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "statlearn",
		Short:         "Nearest-neighbor search and perceptron training on CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "YAML file with default settings (k, eta, maxEpochs, folds, seed, logLevel)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newKNNCmd(flags))
	cmd.AddCommand(newPerceptronCmd(flags))
	cmd.AddCommand(newCVCmd(flags))
	return cmd
}
