package strategy

import (
	"StakeAdvisor/internal/calculator"
	"StakeAdvisor/internal/model"
)

// workingSummary is the engine's private, mutable copy of a pool.
type workingSummary struct {
	poolID        string
	operatorShare float64
	zrxStaked     float64
	sevenDayFees  float64
}

// Recommend splits amount across pools, favoring pools that earn more fees per
// unit of stake and keep less for the operator. Each round gives amount/Iterations
// to the pool with the lowest adjusted stake ratio and adds it to that pool's
// stake, so later rounds see the pool as more crowded.
//
// The result lists each selected pool once, in the order it was first selected;
// Pool points into the given slice. A nil or empty pools slice, or a zero amount,
// yields no recommendations.
func Recommend(amount float64, pools []model.PoolStats, opts ...Option) []model.Recommendation {
	return run(amount, pools, NewTuning(opts...), false).Recommendations
}

// Explain is Recommend plus the per-round trace and the effective tuning.
func Explain(amount float64, pools []model.PoolStats, opts ...Option) *model.Allocation {
	return run(amount, pools, NewTuning(opts...), true)
}

func run(amount float64, pools []model.PoolStats, t Tuning, trace bool) *model.Allocation {
	alloc := &model.Allocation{
		Amount:     amount,
		Alpha:      t.Alpha,
		Iterations: t.Iterations,
	}
	if len(pools) == 0 || amount == 0 || t.Iterations <= 0 {
		return alloc
	}

	// Step a: snapshot pool stats
	n := len(pools)
	summaries := make([]workingSummary, n)
	fees := make([]float64, n)
	for i, p := range pools {
		summaries[i] = workingSummary{
			poolID:        p.PoolID,
			operatorShare: p.NextEpochStats.OperatorShare,
			zrxStaked:     p.NextEpochStats.ZrxStaked,
			sevenDayFees:  p.CurrentEpochStats.SevenDayProtocolFeesGeneratedInEth,
		}
		fees[i] = summaries[i].sevenDayFees
	}
	totalFees := calculator.Total(fees)

	// Step b: greedy rounds
	increment := amount / float64(t.Iterations)
	staked := make([]float64, n)
	ratios := make([]float64, n)
	dec := newDecisions()
	for iter := 0; iter < t.Iterations; iter++ {
		for i := range summaries {
			staked[i] = summaries[i].zrxStaked
		}
		totalStake := calculator.Total(staked)

		for i, s := range summaries {
			feeShare := calculator.FeeShare(s.sevenDayFees, totalFees)
			stakeRatio := calculator.StakeRatio(s.zrxStaked, totalStake, feeShare, n)
			ratios[i] = calculator.AdjustedRatio(t.Alpha, s.operatorShare, stakeRatio)
		}

		best := calculator.MinRatioIndex(ratios)
		dec.add(summaries[best].poolID, increment)
		summaries[best].zrxStaked += increment

		if trace {
			alloc.Steps = append(alloc.Steps, model.IterationStep{
				Iteration:      iter + 1,
				TotalStake:     totalStake,
				TotalFees:      totalFees,
				AdjustedRatios: append([]float64(nil), ratios...),
				Selected:       best,
				PoolID:         summaries[best].poolID,
				Increment:      increment,
			})
		}
	}

	// Step c: aggregate and join back
	alloc.Recommendations = dec.recommendations(pools)
	return alloc
}
