package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"StakeAdvisor/internal/collector"
	"StakeAdvisor/internal/model"
	"StakeAdvisor/internal/scheduler"

	"github.com/spf13/cobra"
)

func newWatchCmd(configPath *string) *cobra.Command {
	f := &runFlags{}
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompute the recommendation on the configured cron schedule",
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

			// Cancelled on SIGINT/SIGTERM or when the caller's context ends.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched := scheduler.NewScheduler(ctx, collector.NewCollector(src, log), cfg.Amount, log, tuningOptions(cfg)...)
			out := cmd.OutOrStdout()
			sched.OnRun(func(alloc *model.Allocation) {
				alloc.Steps = nil
				if err := writeAllocation(out, cfg.Output.Format, alloc); err != nil {
					log.Error().Err(err).Msg("write allocation")
				}
			})
			if err := sched.Register(cfg.Schedule.Cron); err != nil {
				return err
			}
			sched.Start()

			// The source stays open until every in-flight run has returned.
			var wg sync.WaitGroup
			defer func() {
				stop()
				wg.Wait()
				sched.Stop()
			}()

			if runOnStart || os.Getenv("RUN_ON_START") == "true" {
				log.Info().Msg("running recommendation on start")
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _ = sched.RunNow()
				}()
			}

			log.Info().Str("cron", cfg.Schedule.Cron).Msg("watching pools, press Ctrl+C to stop")
			<-ctx.Done()

			log.Info().Msg("shutdown signal received, stopping")
			return nil
		},
	}
	addRunFlags(cmd, f)
	cmd.Flags().BoolVar(&runOnStart, "now", false, "Also run once immediately")
	return cmd
}
