package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"booklibrary/internal/config"
	"booklibrary/internal/library"
	"booklibrary/internal/logging"
	"booklibrary/internal/simulation"

	"github.com/spf13/cobra"
)

type options struct {
	steps          int
	seed           int64
	logFile        string
	logLevel       string
	stepsPerSecond float64
	fixtures       string
	quiet          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "simulate",
		Short:        "Run a random-event simulation against an in-memory book catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			applyFlags(cmd, &cfg, opts)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, opts.quiet, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.steps, "steps", 0, "Number of simulation steps")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed for the random number generator")
	flags.StringVar(&opts.logFile, "log-file", config.DefaultLogFile, "Log file path (empty disables file logging)")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.Float64Var(&opts.stepsPerSecond, "rate", 0, "Maximum steps per second (0 means unlimited)")
	flags.StringVar(&opts.fixtures, "fixtures", "", "YAML fixtures file (defaults to the built-in set)")
	flags.BoolVar(&opts.quiet, "quiet", false, "Do not log to the console")

	return cmd
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Steps, cfg.StepsSet = opts.steps, true
	}
	if flags.Changed("seed") {
		cfg.Seed, cfg.SeedSet = opts.seed, true
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("rate") {
		cfg.StepsPerSecond = opts.stepsPerSecond
	}
	if flags.Changed("fixtures") {
		cfg.Fixtures = opts.fixtures
	}
}

func run(ctx context.Context, cfg config.Config, quiet bool, in io.Reader, out io.Writer) error {
	if !cfg.StepsSet || !cfg.SeedSet {
		fmt.Fprintln(out, "Starting the library simulation")
		p := newPrompter(in, out)
		if !cfg.StepsSet {
			steps, err := p.steps()
			if err != nil {
				return err
			}
			cfg.Steps, cfg.StepsSet = steps, true
		}
		if !cfg.SeedSet {
			seed, err := p.seed()
			if err != nil {
				return err
			}
			cfg.Seed, cfg.SeedSet = seed, true
		}
	}

	if cfg.StepsPerSecond < 0 {
		return fmt.Errorf("rate must not be negative, got %v", cfg.StepsPerSecond)
	}

	fixtures, err := simulation.LoadFixtures(cfg.Fixtures)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Quiet:  quiet,
		Output: out,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	sim, err := simulation.New(library.New(), simulation.Config{
		Steps:          cfg.Steps,
		Seed:           cfg.Seed,
		StepsPerSecond: cfg.StepsPerSecond,
		Fixtures:       fixtures,
	}, logger.Logger)
	if err != nil {
		return err
	}

	report, err := sim.Run(ctx)
	if err != nil {
		logger.Error("simulation stopped", "error", err)
		return err
	}

	for _, key := range slices.Sorted(maps.Keys(report.Events)) {
		logger.Debug("event count", "event", key, "count", report.Events[key])
	}
	return nil
}
