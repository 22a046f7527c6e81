package collector

import (
	"context"
	"errors"
	"testing"

	"StakeAdvisor/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_DropsDuplicates(t *testing.T) {
	src := &MockSource{Pools: []model.PoolStats{
		{PoolID: "1", NextEpochStats: model.EpochStats{ZrxStaked: 10}},
		{PoolID: "2", NextEpochStats: model.EpochStats{ZrxStaked: 20}},
		{PoolID: "1", NextEpochStats: model.EpochStats{ZrxStaked: 30}},
	}}
	c := NewCollector(src, zerolog.Nop())

	pools, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "1", pools[0].PoolID)
	assert.Equal(t, 10.0, pools[0].NextEpochStats.ZrxStaked)
	assert.Equal(t, "2", pools[1].PoolID)
}

func TestCollect_WrapsSourceError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCollector(&MockSource{Err: boom}, zerolog.Nop())

	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mock")
}

func TestCollect_EmptySnapshot(t *testing.T) {
	c := NewCollector(&MockSource{}, zerolog.Nop())
	pools, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pools)
}
