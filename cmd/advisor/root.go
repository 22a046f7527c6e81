package main

import (
	"fmt"
	"os"

	"StakeAdvisor/internal/collector"
	"StakeAdvisor/internal/config"
	"StakeAdvisor/internal/strategy"
	"StakeAdvisor/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// runFlags are the flags shared by every command that runs the engine.
type runFlags struct {
	amount     float64
	source     string
	pools      string
	alpha      float64
	iterations int
	format     string
}

func newRootCmd() *cobra.Command {
	configPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	root := &cobra.Command{
		Use:   "advisor",
		Short: "Recommend how to split ZRX across staking pools",
		Long: `advisor splits an amount of ZRX across staking pools, favoring pools that
earn more protocol fees per unit of stake and keep less for their operator,
while spreading stake away from pools that are already crowded.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to YAML config file")

	root.AddCommand(
		newRecommendCmd(&configPath, false),
		newRecommendCmd(&configPath, true),
		newWatchCmd(&configPath),
		newImportCmd(&configPath),
	)
	return root
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "Amount of ZRX to allocate")
	cmd.Flags().StringVar(&f.source, "source", "", "Pool source: file or sqlite")
	cmd.Flags().StringVar(&f.pools, "pools", "", "Path to the pool snapshot file or database")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "Reward weight exponent in (0,1)")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "Number of allocation rounds")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: table or json")
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, path string, f *runFlags) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("amount") {
		cfg.Amount = f.amount
	}
	if flags.Changed("source") {
		cfg.Source.Kind = f.source
	}
	if flags.Changed("pools") {
		cfg.Source.Path = f.pools
	}
	if flags.Changed("alpha") {
		cfg.Tuning.Alpha = f.alpha
	}
	if flags.Changed("iterations") {
		cfg.Tuning.Iterations = f.iterations
	}
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("config validation: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Out: cmd.ErrOrStderr()})
	return cfg, log, nil
}

func tuningOptions(cfg *config.Config) []strategy.Option {
	return []strategy.Option{
		strategy.WithAlpha(cfg.Tuning.Alpha),
		strategy.WithIterations(cfg.Tuning.Iterations),
	}
}

// openSource builds the configured pool source. The returned close func is never nil.
func openSource(cfg *config.Config, log zerolog.Logger) (collector.Source, func() error, error) {
	switch cfg.Source.Kind {
	case config.SourceSQLite:
		src, err := collector.NewSQLiteSource(cfg.Source.Path, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite source: %w", err)
		}
		return src, src.Close, nil
	default:
		return collector.NewFileSource(cfg.Source.Path), func() error { return nil }, nil
	}
}
