package collector

import (
	"context"

	"StakeAdvisor/internal/model"
)

// Source supplies a snapshot of candidate pools.
type Source interface {
	FetchPools(ctx context.Context) ([]model.PoolStats, error)
	Name() string
}
