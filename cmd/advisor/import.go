package main

import (
	"fmt"
	"time"

	"StakeAdvisor/internal/collector"

	"github.com/spf13/cobra"
)

func newImportCmd(configPath *string) *cobra.Command {
	f := &runFlags{}
	var dbPath string
	cmd := &cobra.Command{
		Use:     "import",
		Short:   "Load a pool snapshot file into the local SQLite pool database",
		Example: "  advisor import --pools data/pools.json --db data/pools.db",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd, *configPath, f)
			if err != nil {
				return err
			}

			pools, err := collector.NewCollector(collector.NewFileSource(cfg.Source.Path), log).Collect(cmd.Context())
			if err != nil {
				return err
			}

			db, err := collector.NewSQLiteSource(dbPath, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.UpsertPools(cmd.Context(), pools, time.Now().Unix()); err != nil {
				return fmt.Errorf("import pools: %w", err)
			}
			log.Info().Int("pools", len(pools)).Str("db", dbPath).Msg("pools imported")
			return nil
		},
	}
	cmd.Flags().StringVar(&f.pools, "pools", "", "Path to the pool snapshot file")
	cmd.Flags().StringVar(&dbPath, "db", "data/pools.db", "Path to the SQLite pool database")
	_ = cmd.MarkFlagRequired("pools")
	return cmd
}
