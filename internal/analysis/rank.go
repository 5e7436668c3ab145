package analysis

import (
	"sort"

	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"
)

type RankedPotential struct {
	SavingsPotential
}

// RankBySavings computes potentials per item and sorts descending by Savings.
// Items whose instance fails to solve (e.g. infeasible under the item's
// capacity) are skipped.
func RankBySavings(byItem map[string][]model.DemandRecord, params model.ItemParams, opts solver.Options) []RankedPotential {
	out := make([]RankedPotential, 0, len(byItem))
	for _, records := range byItem {
		p, err := ComputePotential(records, params, opts)
		if err != nil {
			continue
		}
		out = append(out, RankedPotential{SavingsPotential: p})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Savings > out[j].Savings
	})
	return out
}
