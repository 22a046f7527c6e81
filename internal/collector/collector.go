package collector

import (
	"context"
	"fmt"

	"StakeAdvisor/internal/model"

	"github.com/rs/zerolog"
)

// MockSource returns fixed pools for development and testing.
type MockSource struct {
	Pools []model.PoolStats
	Err   error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchPools(_ context.Context) ([]model.PoolStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pools, nil
}

// Collector fetches pool snapshots from a Source and cleans them up for the engine.
type Collector struct {
	Source Source
	log    zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(src Source, log zerolog.Logger) *Collector {
	return &Collector{
		Source: src,
		log:    log.With().Str("component", "collector").Str("source", src.Name()).Logger(),
	}
}

// Collect fetches pools and drops repeated pool IDs, keeping the first occurrence.
func (c *Collector) Collect(ctx context.Context) ([]model.PoolStats, error) {
	pools, err := c.Source.FetchPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pools from %s: %w", c.Source.Name(), err)
	}

	seen := make(map[string]struct{}, len(pools))
	out := make([]model.PoolStats, 0, len(pools))
	for _, p := range pools {
		if _, ok := seen[p.PoolID]; ok {
			c.log.Warn().Str("pool_id", p.PoolID).Msg("duplicate pool in snapshot, keeping first")
			continue
		}
		seen[p.PoolID] = struct{}{}
		out = append(out, p)
	}

	c.log.Info().Int("pools", len(out)).Int("dropped", len(pools)-len(out)).Msg("pools collected")
	return out, nil
}
