package model

// EpochStats holds the forward-looking stats of a pool for the next epoch.
type EpochStats struct {
	OperatorShare float64 `json:"operatorShare" yaml:"operatorShare"` // 0.0 ~ 1.0
	ZrxStaked     float64 `json:"zrxStaked" yaml:"zrxStaked"`
}

// CurrentEpochStats holds the trailing-window stats of a pool.
type CurrentEpochStats struct {
	SevenDayProtocolFeesGeneratedInEth float64 `json:"sevenDayProtocolFeesGeneratedInEth" yaml:"sevenDayProtocolFeesGeneratedInEth"`
}

// PoolStats is a staking pool as supplied by the caller. Never mutated.
type PoolStats struct {
	PoolID            string            `json:"poolId" yaml:"poolId"`
	NextEpochStats    EpochStats        `json:"nextEpochStats" yaml:"nextEpochStats"`
	CurrentEpochStats CurrentEpochStats `json:"currentEpochStats" yaml:"currentEpochStats"`
}
