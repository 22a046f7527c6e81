package main

import (
	"fmt"
	"io"

	"StakeAdvisor/internal/collector"
	"StakeAdvisor/internal/config"
	"StakeAdvisor/internal/model"
	"StakeAdvisor/internal/report"
	"StakeAdvisor/internal/strategy"

	"github.com/spf13/cobra"
)

func newRecommendCmd(configPath *string, explain bool) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print a staking recommendation for the current pool snapshot",
		Example: `  advisor recommend --amount 1000 --pools data/pools.json
  advisor recommend --amount 25000 --source sqlite --pools data/pools.db --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd, *configPath, f)
			if err != nil {
				return err
			}

			src, closeSrc, err := openSource(cfg, log)
			if err != nil {
				return err
			}
			defer closeSrc()

			pools, err := collector.NewCollector(src, log).Collect(cmd.Context())
			if err != nil {
				return err
			}
			if cfg.Amount == 0 {
				log.Warn().Msg("amount is zero, nothing to allocate")
			}

			alloc := strategy.Explain(cfg.Amount, pools, tuningOptions(cfg)...)
			if !explain {
				alloc.Steps = nil
			}
			return writeAllocation(cmd.OutOrStdout(), cfg.Output.Format, alloc)
		},
	}
	if explain {
		cmd.Use = "explain"
		cmd.Short = "Print a recommendation together with every allocation round"
		cmd.Example = "  advisor explain --amount 1000 --pools data/pools.json --iterations 20"
	}
	addRunFlags(cmd, f)
	return cmd
}

func writeAllocation(w io.Writer, format string, alloc *model.Allocation) error {
	switch format {
	case config.FormatJSON:
		data, err := report.FormatJSON(alloc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		out := report.FormatTable(alloc)
		if len(alloc.Steps) > 0 {
			out += "\n" + report.FormatSteps(alloc)
		}
		_, err := io.WriteString(w, out)
		return err
	}
}
