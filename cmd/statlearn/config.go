package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zibellina/statlearn"
	"gopkg.in/yaml.v3"
)

// config holds settings shared by the subcommands. Values come from the
// built-in defaults, then the --config file, then explicitly set flags.
type config struct {
	K           int     `yaml:"k"`
	Eta         float64 `yaml:"eta"`
	MaxEpochs   int     `yaml:"maxEpochs"`
	Folds       int     `yaml:"folds"`
	Seed        int64   `yaml:"seed"`
	Parallelism int     `yaml:"parallelism"`
	LogLevel    string  `yaml:"logLevel"`
}

func defaultConfig() config {
	return config{
		K:         1,
		Eta:       1,
		MaxEpochs: 1000,
		Folds:     5,
		Seed:      1,
		LogLevel:  "warn",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// settings resolves the config for a subcommand run.
func (g *globalFlags) settings() (config, error) {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, nil
}

func (c config) logger(cmd *cobra.Command) (*statlearn.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return statlearn.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

// override copies a flag value into dst when the flag was set on the command line.
func override[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}
