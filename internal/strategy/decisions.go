package strategy

import "StakeAdvisor/internal/model"

// decisions accumulates allocated amounts per pool ID, remembering the order in
// which each pool was first selected.
type decisions struct {
	order   []string
	amounts map[string]float64
}

func newDecisions() *decisions {
	return &decisions{amounts: make(map[string]float64)}
}

func (d *decisions) add(poolID string, amount float64) {
	if _, ok := d.amounts[poolID]; !ok {
		d.order = append(d.order, poolID)
	}
	d.amounts[poolID] += amount
}

// recommendations joins the totals back to the caller's pools. A pool ID that
// appears more than once in pools resolves to its first occurrence.
func (d *decisions) recommendations(pools []model.PoolStats) []model.Recommendation {
	first := make(map[string]int, len(pools))
	for i := range pools {
		if _, ok := first[pools[i].PoolID]; !ok {
			first[pools[i].PoolID] = i
		}
	}

	recs := make([]model.Recommendation, 0, len(d.order))
	for _, id := range d.order {
		amount := d.amounts[id]
		if amount == 0 {
			continue
		}
		recs = append(recs, model.Recommendation{
			Pool:      &pools[first[id]],
			ZrxAmount: amount,
		})
	}
	return recs
}
