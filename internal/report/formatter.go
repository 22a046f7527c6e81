package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"StakeAdvisor/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatTable renders the recommendations as an aligned text table.
func FormatTable(alloc *model.Allocation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Staking recommendation for %s ZRX (alpha=%.4f, iterations=%d)\n\n",
		formatAmount(alloc.Amount), alloc.Alpha, alloc.Iterations))

	if len(alloc.Recommendations) == 0 {
		b.WriteString("No recommendations.\n")
		return b.String()
	}

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "POOL\tZRX\tSHARE\tOPERATOR\tSTAKED\tFEES (ETH, 7D)\t")
	for _, r := range alloc.Recommendations {
		share := 0.0
		if alloc.Amount != 0 {
			share = r.ZrxAmount / alloc.Amount * 100
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%.1f%%\t%s\t%.4f\t\n",
			r.Pool.PoolID,
			formatAmount(r.ZrxAmount),
			share,
			r.Pool.NextEpochStats.OperatorShare*100,
			formatAmount(r.Pool.NextEpochStats.ZrxStaked),
			r.Pool.CurrentEpochStats.SevenDayProtocolFeesGeneratedInEth,
		)
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t\t\t\t\t\n", formatAmount(alloc.Total()))
	tw.Flush()

	return b.String()
}

// FormatSteps renders the per-round trace of an Explain run.
func FormatSteps(alloc *model.Allocation) string {
	var b strings.Builder
	b.WriteString("Allocation rounds:\n")
	if len(alloc.Steps) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}
	for _, s := range alloc.Steps {
		b.WriteString(fmt.Sprintf("  #%d -> pool %s +%s (total stake %s, ratio %s)\n",
			s.Iteration, s.PoolID, formatAmount(s.Increment), formatAmount(s.TotalStake),
			formatRatio(s.AdjustedRatios[s.Selected])))
	}
	return b.String()
}

type jsonStep struct {
	Iteration      int        `json:"iteration"`
	TotalStake     float64    `json:"totalStake"`
	TotalFees      float64    `json:"totalFees"`
	AdjustedRatios []*float64 `json:"adjustedRatios"` // null where not finite
	Selected       int        `json:"selected"`
	PoolID         string     `json:"poolId"`
	Increment      float64    `json:"increment"`
}

type jsonAllocation struct {
	Amount          float64                `json:"amount"`
	Alpha           float64                `json:"alpha"`
	Iterations      int                    `json:"iterations"`
	Total           float64                `json:"total"`
	Recommendations []model.Recommendation `json:"recommendations"`
	Steps           []jsonStep             `json:"steps,omitempty"`
}

// FormatJSON renders the allocation as indented JSON. Recommendations keep the
// caller's pool record shape.
func FormatJSON(alloc *model.Allocation) ([]byte, error) {
	out := jsonAllocation{
		Amount:          alloc.Amount,
		Alpha:           alloc.Alpha,
		Iterations:      alloc.Iterations,
		Total:           alloc.Total(),
		Recommendations: alloc.Recommendations,
	}
	if out.Recommendations == nil {
		out.Recommendations = []model.Recommendation{}
	}
	for _, s := range alloc.Steps {
		ratios := make([]*float64, len(s.AdjustedRatios))
		for i, r := range s.AdjustedRatios {
			if math.IsNaN(r) || math.IsInf(r, 0) {
				continue
			}
			r := r
			ratios[i] = &r
		}
		out.Steps = append(out.Steps, jsonStep{
			Iteration:      s.Iteration,
			TotalStake:     s.TotalStake,
			TotalFees:      s.TotalFees,
			AdjustedRatios: ratios,
			Selected:       s.Selected,
			PoolID:         s.PoolID,
			Increment:      s.Increment,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal allocation: %w", err)
	}
	return data, nil
}

func formatAmount(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

func formatRatio(v float64) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 1):
		return "inf"
	default:
		return fmt.Sprintf("%.6f", v)
	}
}
