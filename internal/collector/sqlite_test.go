package collector

import (
	"context"
	"path/filepath"
	"testing"

	"StakeAdvisor/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSource_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src, err := NewSQLiteSource(filepath.Join(t.TempDir(), "indexer.db"), zerolog.Nop())
	require.NoError(t, err)
	defer src.Close()

	pools, err := src.FetchPools(ctx)
	require.NoError(t, err)
	assert.Empty(t, pools)

	require.NoError(t, src.UpsertPools(ctx, []model.PoolStats{
		{PoolID: "b", NextEpochStats: model.EpochStats{OperatorShare: 0.2, ZrxStaked: 200}},
		{PoolID: "a", NextEpochStats: model.EpochStats{OperatorShare: 0.1, ZrxStaked: 100},
			CurrentEpochStats: model.CurrentEpochStats{SevenDayProtocolFeesGeneratedInEth: 0.3}},
	}, 1700000000))

	pools, err = src.FetchPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "b", pools[0].PoolID)
	assert.Equal(t, "a", pools[1].PoolID)
	assert.Equal(t, 0.3, pools[1].CurrentEpochStats.SevenDayProtocolFeesGeneratedInEth)

	// Updating a pool keeps its place in the order.
	require.NoError(t, src.UpsertPools(ctx, []model.PoolStats{
		{PoolID: "b", NextEpochStats: model.EpochStats{OperatorShare: 0.3, ZrxStaked: 999}},
	}, 1700000100))

	pools, err = src.FetchPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "b", pools[0].PoolID)
	assert.Equal(t, 999.0, pools[0].NextEpochStats.ZrxStaked)
	assert.Equal(t, 0.3, pools[0].NextEpochStats.OperatorShare)
}

func TestSQLiteSource_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "indexer.db")

	src, err := NewSQLiteSource(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, src.UpsertPools(ctx, []model.PoolStats{{PoolID: "x"}}, 1))
	require.NoError(t, src.Close())

	src, err = NewSQLiteSource(path, zerolog.Nop())
	require.NoError(t, err)
	defer src.Close()

	pools, err := src.FetchPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, "x", pools[0].PoolID)
	assert.Equal(t, "sqlite", src.Name())
}
