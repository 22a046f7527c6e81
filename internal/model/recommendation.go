package model

// Recommendation is the amount of ZRX suggested for a single pool.
type Recommendation struct {
	Pool      *PoolStats `json:"pool"`
	ZrxAmount float64    `json:"zrxAmount"`
}

// IterationStep records one round of the greedy allocation loop.
type IterationStep struct {
	Iteration      int       `json:"iteration"`
	TotalStake     float64   `json:"totalStake"`
	TotalFees      float64   `json:"totalFees"`
	AdjustedRatios []float64 `json:"adjustedRatios"`
	Selected       int       `json:"selected"` // index into the input pools
	PoolID         string    `json:"poolId"`
	Increment      float64   `json:"increment"`
}

// Allocation is the full output of one engine run.
type Allocation struct {
	Amount          float64          `json:"amount"`
	Alpha           float64          `json:"alpha"`
	Iterations      int              `json:"iterations"`
	Recommendations []Recommendation `json:"recommendations"`
	Steps           []IterationStep  `json:"steps,omitempty"`
}

// Total returns the sum of all recommended amounts.
func (a *Allocation) Total() float64 {
	var sum float64
	for _, r := range a.Recommendations {
		sum += r.ZrxAmount
	}
	return sum
}
