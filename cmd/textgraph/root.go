package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/internal/config"
	"github.com/katalvlaran/textgraph/internal/telemetry"
	"github.com/katalvlaran/textgraph/rng"
	"github.com/katalvlaran/textgraph/tokenize"
)

// app carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	seed       int64
	trace      bool

	cfg      config.Config
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "textgraph",
		Short:         "Word-adjacency graph queries over a text file",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text|json (overrides config)")
	pf.Int64Var(&a.seed, "seed", 0, "random seed for generate/walk/serve; 0 picks a fresh seed")
	pf.BoolVar(&a.trace, "trace", false, "export OpenTelemetry spans to stderr")

	root.AddCommand(
		a.showCmd(),
		a.statsCmd(),
		a.bridgeCmd(),
		a.generateCmd(),
		a.pathCmd(),
		a.rankCmd(),
		a.walkCmd(),
		a.reachCmd(),
		a.exportCmd(),
		a.serveCmd(),
	)

	return root
}

// setup loads the config file, applies flag overrides, installs the logger
// and, when asked, the tracer provider.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = a.seed
	}
	if flags.Changed("trace") {
		cfg.Tracing.Enabled = a.trace
	}
	if cfg.Random.Seed == 0 {
		cfg.Random.Seed = rng.TimeSeed()
	}

	logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	shutdown, err := telemetry.SetupTracing(cmd.Context(), cfg.Tracing.Enabled, cmd.ErrOrStderr(), version)
	if err != nil {
		return err
	}
	a.cfg, a.shutdown = cfg, shutdown
	slog.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.Int64("seed", cfg.Random.Seed),
		slog.Bool("tracing", cfg.Tracing.Enabled),
	)

	return nil
}

// random returns the run's random stream.
func (a *app) random() *rand.Rand { return rng.FromSeed(a.cfg.Random.Seed) }

// load builds the graph of the text file at path.
func load(path string) (*core.Graph, error) {
	g, err := tokenize.BuildFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	slog.Debug("graph loaded",
		slog.String("path", path),
		slog.Int("words", g.Len()),
		slog.Int("edges", g.EdgeCount()),
	)

	return g, nil
}
