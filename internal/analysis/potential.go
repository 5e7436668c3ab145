package analysis

import (
	"math"
	"time"

	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"
)

// SavingsPotential is an item-level summary you can use for ranking.
// It compares the optimal lot-sizing cost against a lot-for-lot baseline
// (produce exactly each period's net demand, carry nothing forward), which is
// what a planner without batching would do.
type SavingsPotential struct {
	Item     string
	Location string

	Start time.Time
	End   time.Time

	Periods int

	TotalDemand float64
	MinDemand   float64
	MaxDemand   float64
	MeanDemand  float64

	// LotForLotCost is the baseline cost: one setup per net-demand period.
	LotForLotCost float64
	// OptimalCost is the solver's objective for the same instance.
	OptimalCost float64
	// Savings = LotForLotCost - OptimalCost (>= 0 for an exact solver).
	Savings float64

	SetupCount int
}

// ComputePotential builds an instance from the item's params and demand
// series, solves it, and summarizes the savings over lot-for-lot.
func ComputePotential(records []model.DemandRecord, params model.ItemParams, opts solver.Options) (SavingsPotential, error) {
	p := SavingsPotential{}
	if len(records) == 0 {
		return p, nil
	}
	p.Item = records[0].Item
	p.Location = records[0].Location
	p.Periods = len(records)
	p.Start = records[0].PeriodStart
	p.End = records[len(records)-1].PeriodEnd

	demand := model.DemandVector(records)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, d := range demand {
		sum += d
		if d < minv {
			minv = d
		}
		if d > maxv {
			maxv = d
		}
	}
	p.TotalDemand = sum
	p.MinDemand = minv
	p.MaxDemand = maxv
	p.MeanDemand = sum / float64(len(demand))

	item := model.Item{Name: p.Item, Params: params}
	in, err := item.Instance(demand)
	if err != nil {
		return p, err
	}

	p.LotForLotCost = LotForLotCost(in)

	sol, err := solver.Solve(in, opts)
	if err != nil {
		return p, err
	}
	p.OptimalCost = sol.TotalCost
	p.SetupCount = sol.SetupCount()
	p.Savings = p.LotForLotCost - p.OptimalCost
	return p, nil
}

// LotForLotCost prices the naive policy: draw down opening stock first, then
// produce each period's residual demand in that period. Only the leftover
// opening stock ever carries, so holding cost applies to it alone.
func LotForLotCost(in *model.Instance) float64 {
	inv := in.InitialInventory
	cost := 0.0
	for i, d := range in.Demand {
		use := math.Min(inv, d)
		inv -= use
		prod := d - use
		if prod > 0 {
			cost += in.SetupCost[i] + in.UnitCost[i]*prod
		}
		cost += in.HoldingCost[i] * inv
	}
	return cost
}
