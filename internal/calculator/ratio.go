package calculator

import "math"

// FeeShare returns the pool's share of total recent protocol fees.
// Falls back to 1 when no pool generated fees in the window.
func FeeShare(poolFees, totalFees float64) float64 {
	if totalFees > 0 {
		return poolFees / totalFees
	}
	return 1
}

// StakeRatio returns the pool's share of total stake normalized by its fee share.
// Lower is more attractive. When total stake is exactly zero every pool is given
// an equal stake share of 1/n.
func StakeRatio(staked, totalStake, feeShare float64, n int) float64 {
	stakeShare := 1 / float64(n)
	if totalStake != 0 {
		stakeShare = staked / totalStake
	}
	return stakeShare / feeShare
}

// OperatorPenalty returns ((1-alpha)/(1-operatorShare))^(1/alpha).
// It grows without bound as operatorShare approaches 1.
func OperatorPenalty(alpha, operatorShare float64) float64 {
	return math.Pow((1-alpha)/(1-operatorShare), 1/alpha)
}

// AdjustedRatio applies the operator-share penalty to a stake ratio.
func AdjustedRatio(alpha, operatorShare, stakeRatio float64) float64 {
	return OperatorPenalty(alpha, operatorShare) * stakeRatio
}
