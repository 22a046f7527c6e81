package report

import (
	"encoding/json"
	"math"
	"testing"

	"StakeAdvisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAllocation() *model.Allocation {
	pools := []model.PoolStats{
		{PoolID: "12", NextEpochStats: model.EpochStats{OperatorShare: 0.1, ZrxStaked: 250000},
			CurrentEpochStats: model.CurrentEpochStats{SevenDayProtocolFeesGeneratedInEth: 1.5}},
		{PoolID: "40", NextEpochStats: model.EpochStats{OperatorShare: 0.25, ZrxStaked: 90000}},
	}
	return &model.Allocation{
		Amount:     1000,
		Alpha:      2.0 / 3.0,
		Iterations: 2,
		Recommendations: []model.Recommendation{
			{Pool: &pools[0], ZrxAmount: 500},
			{Pool: &pools[1], ZrxAmount: 500},
		},
		Steps: []model.IterationStep{
			{Iteration: 1, TotalStake: 340000, TotalFees: 1.5, AdjustedRatios: []float64{0.2, math.Inf(1)}, Selected: 0, PoolID: "12", Increment: 500},
			{Iteration: 2, TotalStake: 340500, TotalFees: 1.5, AdjustedRatios: []float64{math.NaN(), 0.4}, Selected: 1, PoolID: "40", Increment: 500},
		},
	}
}

func TestFormatTable(t *testing.T) {
	out := FormatTable(sampleAllocation())

	assert.Contains(t, out, "1,000 ZRX")
	assert.Contains(t, out, "POOL")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "250,000")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "TOTAL")
}

func TestFormatTable_Empty(t *testing.T) {
	out := FormatTable(&model.Allocation{Amount: 0, Alpha: 0.5, Iterations: 10})
	assert.Contains(t, out, "No recommendations.")
}

func TestFormatSteps(t *testing.T) {
	out := FormatSteps(sampleAllocation())
	assert.Contains(t, out, "#1 -> pool 12 +500")
	assert.Contains(t, out, "ratio 0.200000")
	assert.Contains(t, out, "#2 -> pool 40")

	assert.Contains(t, FormatSteps(&model.Allocation{}), "(none)")
}

func TestFormatJSON(t *testing.T) {
	data, err := FormatJSON(sampleAllocation())
	require.NoError(t, err)

	var decoded struct {
		Amount          float64 `json:"amount"`
		Total           float64 `json:"total"`
		Recommendations []struct {
			Pool      model.PoolStats `json:"pool"`
			ZrxAmount float64         `json:"zrxAmount"`
		} `json:"recommendations"`
		Steps []struct {
			AdjustedRatios []*float64 `json:"adjustedRatios"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 1000.0, decoded.Total)
	require.Len(t, decoded.Recommendations, 2)
	assert.Equal(t, "12", decoded.Recommendations[0].Pool.PoolID)
	assert.Equal(t, 500.0, decoded.Recommendations[0].ZrxAmount)
	require.Len(t, decoded.Steps, 2)
	assert.Nil(t, decoded.Steps[0].AdjustedRatios[1])
	assert.Nil(t, decoded.Steps[1].AdjustedRatios[0])
	require.NotNil(t, decoded.Steps[1].AdjustedRatios[1])
	assert.Equal(t, 0.4, *decoded.Steps[1].AdjustedRatios[1])
}

func TestFormatJSON_EmptyRecommendationsIsArray(t *testing.T) {
	data, err := FormatJSON(&model.Allocation{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recommendations": []`)
	assert.NotContains(t, string(data), `"steps"`)
}
